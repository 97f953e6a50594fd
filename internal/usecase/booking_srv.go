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

type BookingService interface {
	// Public endpoints (require auth)
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetHistory(ctx context.Context, userID string) (*response.HistoryResponse, error)
	GetBookingByID(ctx context.Context, userID, bookingID string, admin bool) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID, reason string, admin bool) (*response.BookingResponse, error)
	GenerateTicket(ctx context.Context, userID, bookingID string, req *request.GenerateTicketRequest) (*response.TicketResponse, error)
	RemoveTicket(ctx context.Context, userID, bookingID, ticketID string) error

	// Admin endpoints
	UpdateBookingStatus(ctx context.Context, bookingID, status string) error
	UpdatePaymentStatus(ctx context.Context, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.PaymentResponse, error)
}

type bookingService struct {
	store    *store.Store
	notifier NotificationSender
	log      *zap.Logger
}

func NewBookingService(st *store.Store, notifier NotificationSender, log *zap.Logger) BookingService {
	return &bookingService{
		store:    st,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the whole reservation protocol: availability check, seat
// filter, payment, history append, ticket generation and confirmation. The
// sequence holds the showtime lock end to end so that two concurrent attempts
// cannot both observe the same seat as available; any failure aborts the
// operation without leaving seats booked.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	showtimeID, err := uuid.Parse(req.ShowTimeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid showtime ID %s", entity.ErrValidation, req.ShowTimeID)
	}
	showtime, err := s.store.ShowTime.FindByID(ctx, showtimeID)
	if err != nil || showtime == nil {
		return nil, fmt.Errorf("%w: showtime %s", entity.ErrNotFound, req.ShowTimeID)
	}

	seatIDs := make([]uuid.UUID, len(req.SeatIDs))
	for i, seatIDStr := range req.SeatIDs {
		seatID, err := uuid.Parse(seatIDStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid seat ID %s", entity.ErrValidation, seatIDStr)
		}
		seatIDs[i] = seatID
	}

	var promo *entity.Promotion
	if req.PromoCode != "" {
		promo, err = s.store.Promotion.FindByCode(ctx, req.PromoCode)
		if err != nil || promo == nil || !promo.ValidateCode(req.PromoCode) {
			return nil, fmt.Errorf("%w: promo code %q is not valid", entity.ErrValidation, req.PromoCode)
		}
	}

	// Everything from the availability check to the confirmation runs under
	// the showtime lock: check-then-act on seat state must be atomic.
	lock := s.store.ShowTime.Lock(showtime.ID)
	lock.Lock()
	defer lock.Unlock()

	if !showtime.HasSeatsAvailable() {
		return nil, fmt.Errorf("%w: showtime %s", entity.ErrNoSeatsAvailable, showtime.ID)
	}

	seats := make([]*entity.Seat, 0, len(seatIDs))
	for _, seatID := range seatIDs {
		seat := showtime.Room.FindSeat(seatID)
		if seat == nil {
			return nil, fmt.Errorf("%w: seat %s is not in the showtime room", entity.ErrNotFound, seatID)
		}
		if !showtime.IsSeatAvailable(seat) {
			// Fail fast; no partial booking of the remaining seats.
			return nil, fmt.Errorf("%w: seat %s", entity.ErrSeatUnavailable, seat.Label())
		}
		seats = append(seats, seat)
	}

	var subtotal float64
	for _, seat := range seats {
		subtotal += showtime.CalculatePrice(seat)
	}
	if promo != nil {
		subtotal = promo.ApplyDiscount(subtotal)
	}

	booking, err := entity.NewBooking(utils.GenerateOrderID(), user.ID, showtime, seats, user.History)
	if err != nil {
		return nil, err
	}
	booking.Promotion = promo

	payment, err := entity.NewPayment(booking, subtotal)
	if err != nil {
		return nil, err
	}
	if err := payment.Process(subtotal, entity.PaymentMethod(req.PaymentMethod)); err != nil {
		return nil, fmt.Errorf("process payment: %w", err)
	}
	booking.Payment = payment

	for _, seat := range seats {
		if _, err := booking.GenerateTicket(seat); err != nil {
			return nil, fmt.Errorf("generate ticket: %w", err)
		}
	}

	if err := booking.Confirm(); err != nil {
		return nil, err
	}

	// Only confirmed bookings are recorded; a failure above leaves no trace
	// in the history or the store.
	if err := user.History.AddBooking(booking); err != nil {
		return nil, err
	}
	if err := s.store.Booking.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}

	s.notifier.SendBookingConfirmation(user, booking)

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("user_id", userID),
		zap.Int("seat_count", len(seats)),
		zap.Float64("total", payment.Total),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.store.Booking.FindByUserID(ctx, user.ID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user bookings: %w", err)
	}

	total, err := s.store.Booking.CountByUserID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("count user bookings: %w", err)
	}

	bookingResponses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		bookingResponses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(bookingResponses, req.Page, req.PerPage, total), nil
}

// GetHistory returns the user's full history with the upcoming/past
// partition. The partition is recomputed on every call; "now" and booking
// status both move independently of the history.
func (s *bookingService) GetHistory(ctx context.Context, userID string) (*response.HistoryResponse, error) {
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := response.HistoryToResponse(user.History)
	return &resp, nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, userID, bookingID string, admin bool) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !admin && booking.UserID.String() != userID {
		return nil, fmt.Errorf("%w: booking belongs to another user", entity.ErrUnauthorized)
	}
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

// CancelBooking reverses a confirmed booking: seats released, payment
// refunded, one cancellation record attached.
func (s *bookingService) CancelBooking(ctx context.Context, userID, bookingID, reason string, admin bool) (*response.BookingResponse, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !admin && booking.UserID.String() != userID {
		return nil, fmt.Errorf("%w: booking belongs to another user", entity.ErrUnauthorized)
	}

	lock := s.store.ShowTime.Lock(booking.ShowTime.ID)
	lock.Lock()
	defer lock.Unlock()

	cancellation, err := booking.Cancel(reason)
	if err != nil {
		return nil, err
	}

	if user, _ := s.store.User.FindByID(ctx, booking.UserID); user != nil {
		s.notifier.SendCancellationNotice(user, booking)
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
		zap.String("reason", cancellation.Reason),
	)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GenerateTicket(ctx context.Context, userID, bookingID string, req *request.GenerateTicketRequest) (*response.TicketResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID.String() != userID {
		return nil, fmt.Errorf("%w: booking belongs to another user", entity.ErrUnauthorized)
	}

	seatID, err := uuid.Parse(req.SeatID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid seat ID %s", entity.ErrValidation, req.SeatID)
	}

	var seat *entity.Seat
	for _, cand := range booking.Seats {
		if cand.ID == seatID {
			seat = cand
			break
		}
	}
	ticket, err := booking.GenerateTicket(seat)
	if err != nil {
		return nil, err
	}

	s.log.Info("Ticket generated",
		zap.String("booking_id", booking.ID.String()),
		zap.String("ticket_id", ticket.ID.String()),
	)

	resp := response.TicketToResponse(ticket)
	return &resp, nil
}

func (s *bookingService) RemoveTicket(ctx context.Context, userID, bookingID, ticketID string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID.String() != userID {
		return fmt.Errorf("%w: booking belongs to another user", entity.ErrUnauthorized)
	}

	id, err := uuid.Parse(ticketID)
	if err != nil {
		return fmt.Errorf("%w: invalid ticket ID %s", entity.ErrValidation, ticketID)
	}
	return booking.RemoveTicket(id)
}

// ==================== ADMIN METHODS ====================

func (s *bookingService) UpdateBookingStatus(ctx context.Context, bookingID, status string) error {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	user, err := s.store.User.FindByID(ctx, booking.UserID)
	if err != nil || user == nil {
		return fmt.Errorf("%w: user %s", entity.ErrNotFound, booking.UserID)
	}

	if err := user.History.UpdateBookingStatus(booking.ID, entity.BookingStatus(status)); err != nil {
		return err
	}

	s.log.Info("Booking status overridden",
		zap.String("booking_id", bookingID),
		zap.String("status", status),
	)
	return nil
}

func (s *bookingService) UpdatePaymentStatus(ctx context.Context, bookingID string, req *request.UpdatePaymentStatusRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Payment == nil {
		return nil, fmt.Errorf("%w: booking %s has no payment", entity.ErrNotFound, bookingID)
	}

	if err := booking.Payment.SetStatus(entity.PaymentStatus(req.Status)); err != nil {
		return nil, err
	}

	s.log.Warn("Payment status overridden",
		zap.String("booking_id", bookingID),
		zap.String("status", req.Status),
	)

	resp := response.PaymentToResponse(booking.Payment)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *bookingService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", entity.ErrValidation, userID)
	}
	user, err := s.store.User.FindByID(ctx, id)
	if err != nil || user == nil {
		return nil, fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}
	return user, nil
}

func (s *bookingService) findBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid booking ID %s", entity.ErrValidation, bookingID)
	}
	booking, err := s.store.Booking.FindByID(ctx, id)
	if err != nil || booking == nil {
		return nil, fmt.Errorf("%w: booking %s", entity.ErrNotFound, bookingID)
	}
	return booking, nil
}
