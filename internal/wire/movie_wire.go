package wire

import (
	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	st *store.Store,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/movies", movieHandler.ListMovies)
	r.Get("/api/movies/{movieID}", movieHandler.GetMovie)
	r.Get("/api/movies/{movieID}/showtimes", movieHandler.ListShowTimes)
	r.Get("/api/showtimes/{showtimeID}/seats", movieHandler.GetShowTimeSeats)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(st.Session, st.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/movies", movieHandler.CreateMovie)
		r.Post("/api/admin/showtimes", movieHandler.CreateShowTime)
	})
}
