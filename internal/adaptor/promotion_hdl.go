package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PromotionHandler struct {
	service usecase.PromotionService
	log     *zap.Logger
}

func NewPromotionHandler(service usecase.PromotionService, log *zap.Logger) *PromotionHandler {
	return &PromotionHandler{
		service: service,
		log:     log,
	}
}

// ListPromotions handles GET /api/admin/promotions (admin)
func (h *PromotionHandler) ListPromotions(w http.ResponseWriter, r *http.Request) {
	promos, err := h.service.ListPromotions(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list promotions")
		return
	}

	utils.ResponseSuccess(w, "success", promos)
}

// GetPromotion handles GET /api/admin/promotions/{promoID} (admin)
func (h *PromotionHandler) GetPromotion(w http.ResponseWriter, r *http.Request) {
	promo, err := h.service.GetPromotion(r.Context(), chi.URLParam(r, "promoID"))
	if err != nil {
		writeServiceError(w, h.log, err, "get promotion")
		return
	}

	utils.ResponseSuccess(w, "success", promo)
}

// CreatePromotion handles POST /api/admin/promotions (admin)
func (h *PromotionHandler) CreatePromotion(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	promo, err := h.service.CreatePromotion(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create promotion")
		return
	}

	utils.ResponseCreated(w, "Promotion created", promo)
}

// UpdatePromotion handles PUT /api/admin/promotions/{promoID} (admin)
func (h *PromotionHandler) UpdatePromotion(w http.ResponseWriter, r *http.Request) {
	var req request.UpdatePromotionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	promo, err := h.service.UpdatePromotion(r.Context(), chi.URLParam(r, "promoID"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update promotion")
		return
	}

	utils.ResponseSuccess(w, "Promotion updated", promo)
}

// DeletePromotion handles DELETE /api/admin/promotions/{promoID} (admin)
func (h *PromotionHandler) DeletePromotion(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeletePromotion(r.Context(), chi.URLParam(r, "promoID")); err != nil {
		writeServiceError(w, h.log, err, "delete promotion")
		return
	}

	utils.ResponseSuccess(w, "Promotion deleted", nil)
}
