package store

import (
	"context"
	"sort"
	"sync"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingStore interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

type bookingStore struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]*entity.Booking
	log      *zap.Logger
}

func NewBookingStore(log *zap.Logger) BookingStore {
	return &bookingStore{
		bookings: make(map[uuid.UUID]*entity.Booking),
		log:      log.With(zap.String("store", "booking")),
	}
}

func (s *bookingStore) Create(ctx context.Context, booking *entity.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings[booking.ID] = booking
	s.log.Debug("Booking stored",
		zap.String("booking_id", booking.ID.String()),
		zap.String("order_id", booking.OrderID),
	)
	return nil
}

func (s *bookingStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, nil
	}
	return booking, nil
}

func (s *bookingStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.Booking, 0)
	for _, booking := range s.bookings {
		if booking.UserID == userID {
			matched = append(matched, booking)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), nil
}

func (s *bookingStore) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, booking := range s.bookings {
		if booking.UserID == userID {
			total++
		}
	}
	return total, nil
}
