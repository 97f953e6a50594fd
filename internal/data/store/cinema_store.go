package store

import (
	"context"
	"sync"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CinemaStore interface {
	Create(ctx context.Context, cinema *entity.Cinema) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error)
	List(ctx context.Context) ([]*entity.Cinema, error)
	FindRoom(ctx context.Context, roomID uuid.UUID) (*entity.MovieRoom, error)
	FindSeat(ctx context.Context, seatID uuid.UUID) (*entity.Seat, error)
}

type cinemaStore struct {
	mu      sync.RWMutex
	cinemas map[uuid.UUID]*entity.Cinema
	order   []uuid.UUID
	log     *zap.Logger
}

func NewCinemaStore(log *zap.Logger) CinemaStore {
	return &cinemaStore{
		cinemas: make(map[uuid.UUID]*entity.Cinema),
		log:     log.With(zap.String("store", "cinema")),
	}
}

func (s *cinemaStore) Create(ctx context.Context, cinema *entity.Cinema) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cinemas[cinema.ID] = cinema
	s.order = append(s.order, cinema.ID)
	s.log.Debug("Cinema stored", zap.String("name", cinema.Name))
	return nil
}

func (s *cinemaStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cinema, ok := s.cinemas[id]
	if !ok {
		return nil, nil
	}
	return cinema, nil
}

func (s *cinemaStore) List(ctx context.Context) ([]*entity.Cinema, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cinemas := make([]*entity.Cinema, 0, len(s.order))
	for _, id := range s.order {
		cinemas = append(cinemas, s.cinemas[id])
	}
	return cinemas, nil
}

func (s *cinemaStore) FindRoom(ctx context.Context, roomID uuid.UUID) (*entity.MovieRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cinema := range s.cinemas {
		if room := cinema.FindRoom(roomID); room != nil {
			return room, nil
		}
	}
	return nil, nil
}

func (s *cinemaStore) FindSeat(ctx context.Context, seatID uuid.UUID) (*entity.Seat, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, cinema := range s.cinemas {
		for _, room := range cinema.Rooms {
			if seat := room.FindSeat(seatID); seat != nil {
				return seat, nil
			}
		}
	}
	return nil, nil
}
