package wire

import (
	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePromotion(
	r chi.Router,
	promotionHandler *adaptor.PromotionHandler,
	st *store.Store,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/promotions", func(r chi.Router) {
		r.Use(middleware.AuthSession(st.Session, st.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/", promotionHandler.ListPromotions)
		r.Post("/", promotionHandler.CreatePromotion)
		r.Get("/{promoID}", promotionHandler.GetPromotion)
		r.Put("/{promoID}", promotionHandler.UpdatePromotion)
		r.Delete("/{promoID}", promotionHandler.DeletePromotion)
	})
}
