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

// PromotionService is admin-only management of discount codes. Codes are
// resolved during booking creation, not here.
type PromotionService interface {
	ListPromotions(ctx context.Context) ([]response.PromotionResponse, error)
	GetPromotion(ctx context.Context, promoID string) (*response.PromotionResponse, error)
	CreatePromotion(ctx context.Context, req *request.CreatePromotionRequest) (*response.PromotionResponse, error)
	UpdatePromotion(ctx context.Context, promoID string, req *request.UpdatePromotionRequest) (*response.PromotionResponse, error)
	DeletePromotion(ctx context.Context, promoID string) error
}

type promotionService struct {
	promotions store.PromotionStore
	log        *zap.Logger
}

func NewPromotionService(promotions store.PromotionStore, log *zap.Logger) PromotionService {
	return &promotionService{
		promotions: promotions,
		log:        log.With(zap.String("service", "promotion")),
	}
}

func (s *promotionService) ListPromotions(ctx context.Context) ([]response.PromotionResponse, error) {
	promos, err := s.promotions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list promotions: %w", err)
	}

	responses := make([]response.PromotionResponse, len(promos))
	for i, promo := range promos {
		responses[i] = response.PromotionToResponse(promo)
	}
	return responses, nil
}

func (s *promotionService) GetPromotion(ctx context.Context, promoID string) (*response.PromotionResponse, error) {
	promo, err := s.findPromotion(ctx, promoID)
	if err != nil {
		return nil, err
	}
	resp := response.PromotionToResponse(promo)
	return &resp, nil
}

func (s *promotionService) CreatePromotion(ctx context.Context, req *request.CreatePromotionRequest) (*response.PromotionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create promotion validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	promo, err := entity.NewPromotion(req.Code, req.Discount, req.Description, req.Active)
	if err != nil {
		return nil, err
	}
	if err := s.promotions.Create(ctx, promo); err != nil {
		return nil, fmt.Errorf("create promotion: %w", err)
	}

	s.log.Info("Promotion created", zap.String("promo_id", promo.ID.String()), zap.String("code", promo.Code))

	resp := response.PromotionToResponse(promo)
	return &resp, nil
}

func (s *promotionService) UpdatePromotion(ctx context.Context, promoID string, req *request.UpdatePromotionRequest) (*response.PromotionResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	promo, err := s.findPromotion(ctx, promoID)
	if err != nil {
		return nil, err
	}

	if err := promo.Update(req.Code, req.Discount, req.Description, req.Active); err != nil {
		return nil, err
	}

	s.log.Info("Promotion updated", zap.String("promo_id", promo.ID.String()), zap.String("code", promo.Code))

	resp := response.PromotionToResponse(promo)
	return &resp, nil
}

func (s *promotionService) DeletePromotion(ctx context.Context, promoID string) error {
	promo, err := s.findPromotion(ctx, promoID)
	if err != nil {
		return err
	}
	if err := s.promotions.Delete(ctx, promo.ID); err != nil {
		return fmt.Errorf("delete promotion: %w", err)
	}

	s.log.Info("Promotion deleted", zap.String("promo_id", promo.ID.String()))
	return nil
}

func (s *promotionService) findPromotion(ctx context.Context, promoID string) (*entity.Promotion, error) {
	id, err := uuid.Parse(promoID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid promotion ID %s", entity.ErrValidation, promoID)
	}
	promo, err := s.promotions.FindByID(ctx, id)
	if err != nil || promo == nil {
		return nil, fmt.Errorf("%w: promotion %s", entity.ErrNotFound, promoID)
	}
	return promo, nil
}
