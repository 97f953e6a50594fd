package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-tickets/internal/data/entity"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/dto/response"
	"cinema-tickets/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	// Public catalog browsing
	ListMovies(ctx context.Context, filter store.MovieFilter, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error)
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	ListShowTimes(ctx context.Context, movieID string) ([]response.ShowTimeResponse, error)
	GetShowTimeSeats(ctx context.Context, showtimeID string) ([]response.SeatResponse, error)

	// Admin catalog management
	CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error)
	CreateShowTime(ctx context.Context, req *request.CreateShowTimeRequest) (*response.ShowTimeResponse, error)
}

type movieService struct {
	store    *store.Store
	notifier NotificationSender
	log      *zap.Logger
}

func NewMovieService(st *store.Store, notifier NotificationSender, log *zap.Logger) MovieService {
	return &movieService{
		store:    st,
		notifier: notifier,
		log:      log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) ListMovies(ctx context.Context, filter store.MovieFilter, req *request.PaginatedRequest) (*response.PaginatedResponse[response.MovieResponse], error) {
	movies, total, err := s.store.Movie.List(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list movies", zap.Error(err))
		return nil, fmt.Errorf("list movies: %w", err)
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return response.NewPaginatedResponse(movieResponses, req.Page, req.PerPage, total), nil
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}
	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) ListShowTimes(ctx context.Context, movieID string) ([]response.ShowTimeResponse, error) {
	movie, err := s.findMovie(ctx, movieID)
	if err != nil {
		return nil, err
	}

	showtimes, err := s.store.ShowTime.ListByMovie(ctx, movie.ID)
	if err != nil {
		return nil, fmt.Errorf("list showtimes: %w", err)
	}

	responses := make([]response.ShowTimeResponse, len(showtimes))
	for i, showtime := range showtimes {
		responses[i] = response.ShowTimeToResponse(showtime)
	}
	return responses, nil
}

// GetShowTimeSeats returns every seat in the showtime's room with its status
// and the zone-scaled price for this screening.
func (s *movieService) GetShowTimeSeats(ctx context.Context, showtimeID string) ([]response.SeatResponse, error) {
	id, err := uuid.Parse(showtimeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid showtime ID %s", entity.ErrValidation, showtimeID)
	}
	showtime, err := s.store.ShowTime.FindByID(ctx, id)
	if err != nil || showtime == nil {
		return nil, fmt.Errorf("%w: showtime %s", entity.ErrNotFound, showtimeID)
	}

	seats := make([]response.SeatResponse, len(showtime.Room.Seats))
	for i, seat := range showtime.Room.Seats {
		seats[i] = response.SeatToResponse(seat, showtime)
	}
	return seats, nil
}

// ==================== ADMIN METHODS ====================

func (s *movieService) CreateMovie(ctx context.Context, req *request.CreateMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := entity.NewMovie(req.Title, req.Description, req.Genres, req.DurationInMinutes)
	if err != nil {
		return nil, err
	}
	if err := s.store.Movie.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("create movie: %w", err)
	}

	s.log.Info("Movie created", zap.String("movie_id", movie.ID.String()), zap.String("title", movie.Title))

	if users, err := s.store.User.List(ctx); err == nil {
		for _, user := range users {
			s.notifier.SendNewMovieAlert(user, movie)
		}
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

func (s *movieService) CreateShowTime(ctx context.Context, req *request.CreateShowTimeRequest) (*response.ShowTimeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create showtime validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := s.findMovie(ctx, req.MovieID)
	if err != nil {
		return nil, err
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", entity.ErrValidation, req.RoomID)
	}
	room, err := s.store.Cinema.FindRoom(ctx, roomID)
	if err != nil || room == nil {
		return nil, fmt.Errorf("%w: room %s", entity.ErrNotFound, req.RoomID)
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start time %q", entity.ErrValidation, req.StartTime)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end time %q", entity.ErrValidation, req.EndTime)
	}

	showtime, err := entity.NewShowTime(start, end, req.BasePrice, room, movie)
	if err != nil {
		return nil, err
	}
	if err := s.store.ShowTime.Create(ctx, showtime); err != nil {
		return nil, fmt.Errorf("create showtime: %w", err)
	}

	s.log.Info("Showtime created",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie", movie.Title),
		zap.Time("start", start),
	)

	resp := response.ShowTimeToResponse(showtime)
	return &resp, nil
}

func (s *movieService) findMovie(ctx context.Context, movieID string) (*entity.Movie, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid movie ID %s", entity.ErrValidation, movieID)
	}
	movie, err := s.store.Movie.FindByID(ctx, id)
	if err != nil || movie == nil {
		return nil, fmt.Errorf("%w: movie %s", entity.ErrNotFound, movieID)
	}
	return movie, nil
}
