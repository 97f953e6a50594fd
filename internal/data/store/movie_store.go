package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovieFilter narrows List results. Zero values match everything.
type MovieFilter struct {
	Title string
	Genre string
}

type MovieStore interface {
	Create(ctx context.Context, movie *entity.Movie) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	List(ctx context.Context, filter MovieFilter, limit, offset int) ([]*entity.Movie, int64, error)
}

type movieStore struct {
	mu     sync.RWMutex
	movies map[uuid.UUID]*entity.Movie
	order  []uuid.UUID
	log    *zap.Logger
}

func NewMovieStore(log *zap.Logger) MovieStore {
	return &movieStore{
		movies: make(map[uuid.UUID]*entity.Movie),
		log:    log.With(zap.String("store", "movie")),
	}
}

func (s *movieStore) Create(ctx context.Context, movie *entity.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.movies[movie.ID] = movie
	s.order = append(s.order, movie.ID)
	s.log.Debug("Movie stored", zap.String("title", movie.Title))
	return nil
}

func (s *movieStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	movie, ok := s.movies[id]
	if !ok {
		return nil, nil
	}
	return movie, nil
}

func (s *movieStore) List(ctx context.Context, filter MovieFilter, limit, offset int) ([]*entity.Movie, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.Movie, 0, len(s.order))
	for _, id := range s.order {
		movie := s.movies[id]
		if filter.Title != "" && !strings.Contains(strings.ToLower(movie.Title), strings.ToLower(filter.Title)) {
			continue
		}
		if filter.Genre != "" && !movie.HasGenre(filter.Genre) {
			continue
		}
		matched = append(matched, movie)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Title < matched[j].Title
	})

	total := int64(len(matched))
	return paginate(matched, limit, offset), total, nil
}

// paginate slices the result window out of an already-filtered list.
func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return items[offset:end]
}
