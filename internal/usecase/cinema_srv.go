package usecase

import (
	"context"
	"fmt"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CinemaService interface {
	ListCinemas(ctx context.Context) ([]response.CinemaResponse, error)
	GetCinema(ctx context.Context, cinemaID string) (*response.CinemaResponse, error)

	// Admin venue management
	CreateCinema(ctx context.Context, req *request.CreateCinemaRequest) (*response.CinemaResponse, error)
	AddRoom(ctx context.Context, cinemaID string, req *request.AddRoomRequest) (*response.RoomResponse, error)
	AddSeat(ctx context.Context, roomID string, req *request.AddSeatRequest) (*response.SeatResponse, error)
	UpdateSeatStatus(ctx context.Context, seatID string, req *request.UpdateSeatStatusRequest) (*response.SeatResponse, error)
	AddStaff(ctx context.Context, cinemaID string, req *request.AddStaffRequest) (*response.StaffResponse, error)
	RemoveStaff(ctx context.Context, cinemaID, staffID string) error
}

type cinemaService struct {
	store *store.Store
	log   *zap.Logger
}

func NewCinemaService(st *store.Store, log *zap.Logger) CinemaService {
	return &cinemaService{
		store: st,
		log:   log.With(zap.String("service", "cinema")),
	}
}

func (s *cinemaService) ListCinemas(ctx context.Context) ([]response.CinemaResponse, error) {
	cinemas, err := s.store.Cinema.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cinemas: %w", err)
	}

	responses := make([]response.CinemaResponse, len(cinemas))
	for i, cinema := range cinemas {
		responses[i] = response.CinemaToResponse(cinema, false)
	}
	return responses, nil
}

func (s *cinemaService) GetCinema(ctx context.Context, cinemaID string) (*response.CinemaResponse, error) {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}
	resp := response.CinemaToResponse(cinema, true)
	return &resp, nil
}

// ==================== ADMIN METHODS ====================

func (s *cinemaService) CreateCinema(ctx context.Context, req *request.CreateCinemaRequest) (*response.CinemaResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	cinema, err := entity.NewCinema(req.Name, req.Address)
	if err != nil {
		return nil, err
	}
	if err := s.store.Cinema.Create(ctx, cinema); err != nil {
		return nil, fmt.Errorf("create cinema: %w", err)
	}

	s.log.Info("Cinema created", zap.String("cinema_id", cinema.ID.String()), zap.String("name", cinema.Name))

	resp := response.CinemaToResponse(cinema, false)
	return &resp, nil
}

func (s *cinemaService) AddRoom(ctx context.Context, cinemaID string, req *request.AddRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	room, err := entity.NewMovieRoom(req.Name, cinema.ID)
	if err != nil {
		return nil, err
	}
	cinema.AddRoom(room)

	s.log.Info("Room added",
		zap.String("cinema_id", cinema.ID.String()),
		zap.String("room_id", room.ID.String()),
		zap.String("name", room.Name),
	)

	resp := response.RoomToResponse(room, false)
	return &resp, nil
}

func (s *cinemaService) AddSeat(ctx context.Context, roomID string, req *request.AddSeatRequest) (*response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", entity.ErrValidation, roomID)
	}
	room, err := s.store.Cinema.FindRoom(ctx, id)
	if err != nil || room == nil {
		return nil, fmt.Errorf("%w: room %s", entity.ErrNotFound, roomID)
	}

	seat, err := entity.NewSeat(req.Row, req.Number, entity.SeatZone(req.Zone), req.Price)
	if err != nil {
		return nil, err
	}
	room.AddSeat(seat)

	s.log.Info("Seat added",
		zap.String("room_id", room.ID.String()),
		zap.String("seat", seat.Label()),
		zap.String("zone", string(seat.Zone)),
	)

	resp := response.SeatToResponse(seat, nil)
	return &resp, nil
}

// UpdateSeatStatus is the maintenance override. RESERVED blocks a seat from
// booking without the booking lifecycle touching it.
func (s *cinemaService) UpdateSeatStatus(ctx context.Context, seatID string, req *request.UpdateSeatStatusRequest) (*response.SeatResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(seatID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid seat ID %s", entity.ErrValidation, seatID)
	}
	seat, err := s.store.Cinema.FindSeat(ctx, id)
	if err != nil || seat == nil {
		return nil, fmt.Errorf("%w: seat %s", entity.ErrNotFound, seatID)
	}

	if err := seat.SetStatus(entity.SeatStatus(req.Status)); err != nil {
		return nil, err
	}

	s.log.Info("Seat status updated",
		zap.String("seat_id", seat.ID.String()),
		zap.String("status", string(seat.Status)),
	)

	resp := response.SeatToResponse(seat, nil)
	return &resp, nil
}

func (s *cinemaService) AddStaff(ctx context.Context, cinemaID string, req *request.AddStaffRequest) (*response.StaffResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return nil, err
	}

	contact, err := entity.NewContact(req.Name, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	staff, err := entity.NewCinemaStaff(contact, req.Position, cinema.ID)
	if err != nil {
		return nil, err
	}
	cinema.AddStaff(staff)

	s.log.Info("Staff added",
		zap.String("cinema_id", cinema.ID.String()),
		zap.String("staff_id", staff.ID.String()),
		zap.String("position", staff.Position),
	)

	resp := response.StaffToResponse(staff)
	return &resp, nil
}

func (s *cinemaService) RemoveStaff(ctx context.Context, cinemaID, staffID string) error {
	cinema, err := s.findCinema(ctx, cinemaID)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(staffID)
	if err != nil {
		return fmt.Errorf("%w: invalid staff ID %s", entity.ErrValidation, staffID)
	}
	if err := cinema.RemoveStaff(id); err != nil {
		return err
	}

	s.log.Info("Staff removed", zap.String("cinema_id", cinema.ID.String()), zap.String("staff_id", staffID))
	return nil
}

func (s *cinemaService) findCinema(ctx context.Context, cinemaID string) (*entity.Cinema, error) {
	id, err := uuid.Parse(cinemaID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid cinema ID %s", entity.ErrValidation, cinemaID)
	}
	cinema, err := s.store.Cinema.FindByID(ctx, id)
	if err != nil || cinema == nil {
		return nil, fmt.Errorf("%w: cinema %s", entity.ErrNotFound, cinemaID)
	}
	return cinema, nil
}
