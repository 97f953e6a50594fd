package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReviewStore interface {
	Create(ctx context.Context, review *entity.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error)
	FindByMovie(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.Review, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reviewStore struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]*entity.Review
	log     *zap.Logger
}

func NewReviewStore(log *zap.Logger) ReviewStore {
	return &reviewStore{
		reviews: make(map[uuid.UUID]*entity.Review),
		log:     log.With(zap.String("store", "review")),
	}
}

func (s *reviewStore) Create(ctx context.Context, review *entity.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.reviews {
		if existing.UserID == review.UserID && existing.MovieID == review.MovieID {
			return fmt.Errorf("%w: review for this movie", entity.ErrDuplicate)
		}
	}
	s.reviews[review.ID] = review
	return nil
}

func (s *reviewStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return nil, nil
	}
	return review, nil
}

func (s *reviewStore) FindByUserAndMovie(ctx context.Context, userID, movieID uuid.UUID) (*entity.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, review := range s.reviews {
		if review.UserID == userID && review.MovieID == movieID {
			return review, nil
		}
	}
	return nil, nil
}

func (s *reviewStore) FindByMovie(ctx context.Context, movieID uuid.UUID, limit, offset int) ([]*entity.Review, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*entity.Review, 0)
	for _, review := range s.reviews {
		if review.MovieID == movieID {
			matched = append(matched, review)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	return paginate(matched, limit, offset), total, nil
}

func (s *reviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return fmt.Errorf("%w: review %s", entity.ErrNotFound, id)
	}
	delete(s.reviews, id)
	return nil
}
