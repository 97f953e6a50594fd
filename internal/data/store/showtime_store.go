package store

import (
	"context"
	"sort"
	"sync"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ShowTimeStore interface {
	Create(ctx context.Context, showtime *entity.ShowTime) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowTime, error)
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.ShowTime, error)
	List(ctx context.Context) ([]*entity.ShowTime, error)

	// Lock returns the mutex guarding the seat state of one showtime. The
	// whole availability-check-through-confirmation sequence must run while
	// holding it so that check-then-act is atomic across bookings.
	Lock(id uuid.UUID) *sync.Mutex
}

type showTimeStore struct {
	mu        sync.RWMutex
	showtimes map[uuid.UUID]*entity.ShowTime

	lockMu sync.Mutex
	locks  map[uuid.UUID]*sync.Mutex

	log *zap.Logger
}

func NewShowTimeStore(log *zap.Logger) ShowTimeStore {
	return &showTimeStore{
		showtimes: make(map[uuid.UUID]*entity.ShowTime),
		locks:     make(map[uuid.UUID]*sync.Mutex),
		log:       log.With(zap.String("store", "showtime")),
	}
}

func (s *showTimeStore) Create(ctx context.Context, showtime *entity.ShowTime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.showtimes[showtime.ID] = showtime
	s.log.Debug("Showtime stored",
		zap.String("showtime_id", showtime.ID.String()),
		zap.String("movie", showtime.Movie.Title),
		zap.Time("start", showtime.StartTime),
	)
	return nil
}

func (s *showTimeStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.ShowTime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	showtime, ok := s.showtimes[id]
	if !ok {
		return nil, nil
	}
	return showtime, nil
}

func (s *showTimeStore) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.ShowTime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.ShowTime, 0)
	for _, showtime := range s.showtimes {
		if showtime.Movie.ID == movieID {
			matched = append(matched, showtime)
		}
	}
	sortByStart(matched)
	return matched, nil
}

func (s *showTimeStore) List(ctx context.Context) ([]*entity.ShowTime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*entity.ShowTime, 0, len(s.showtimes))
	for _, showtime := range s.showtimes {
		all = append(all, showtime)
	}
	sortByStart(all)
	return all, nil
}

func (s *showTimeStore) Lock(id uuid.UUID) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()

	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}

func sortByStart(showtimes []*entity.ShowTime) {
	sort.SliceStable(showtimes, func(i, j int) bool {
		return showtimes[i].StartTime.Before(showtimes[j].StartTime)
	})
}
