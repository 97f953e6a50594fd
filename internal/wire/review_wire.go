package wire

import (
	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	st *store.Store,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies/{movieID}/reviews", reviewHandler.ListMovieReviews)
	r.Get("/api/movies/{movieID}/reviews/stats", reviewHandler.GetMovieStats)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(st.Session, st.User, log))

		r.Post("/api/reviews", reviewHandler.CreateReview)
		r.Put("/api/reviews/{reviewID}", reviewHandler.UpdateReview)
		r.Delete("/api/reviews/{reviewID}", reviewHandler.DeleteReview)
	})
}
