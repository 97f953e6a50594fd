package store

import (
	"context"
	"fmt"
	"sync"

	"cinema-tickets/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PromotionStore interface {
	Create(ctx context.Context, promo *entity.Promotion) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error)
	FindByCode(ctx context.Context, code string) (*entity.Promotion, error)
	List(ctx context.Context) ([]*entity.Promotion, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type promotionStore struct {
	mu     sync.RWMutex
	promos map[uuid.UUID]*entity.Promotion
	order  []uuid.UUID
	log    *zap.Logger
}

func NewPromotionStore(log *zap.Logger) PromotionStore {
	return &promotionStore{
		promos: make(map[uuid.UUID]*entity.Promotion),
		log:    log.With(zap.String("store", "promotion")),
	}
}

func (s *promotionStore) Create(ctx context.Context, promo *entity.Promotion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.promos {
		if existing.Code == promo.Code {
			return fmt.Errorf("%w: promotion code %s", entity.ErrDuplicate, promo.Code)
		}
	}
	s.promos[promo.ID] = promo
	s.order = append(s.order, promo.ID)
	s.log.Debug("Promotion stored", zap.String("code", promo.Code))
	return nil
}

func (s *promotionStore) FindByID(ctx context.Context, id uuid.UUID) (*entity.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	promo, ok := s.promos[id]
	if !ok {
		return nil, nil
	}
	return promo, nil
}

func (s *promotionStore) FindByCode(ctx context.Context, code string) (*entity.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, promo := range s.promos {
		if promo.Code == code {
			return promo, nil
		}
	}
	return nil, nil
}

func (s *promotionStore) List(ctx context.Context) ([]*entity.Promotion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	promos := make([]*entity.Promotion, 0, len(s.order))
	for _, id := range s.order {
		if promo, ok := s.promos[id]; ok {
			promos = append(promos, promo)
		}
	}
	return promos, nil
}

func (s *promotionStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.promos[id]; !ok {
		return fmt.Errorf("%w: promotion %s", entity.ErrNotFound, id)
	}
	delete(s.promos, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
