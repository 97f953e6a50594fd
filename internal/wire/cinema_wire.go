package wire

import (
	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCinema(
	r chi.Router,
	cinemaHandler *adaptor.CinemaHandler,
	st *store.Store,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/cinemas", cinemaHandler.ListCinemas)
	r.Get("/api/cinemas/{cinemaID}", cinemaHandler.GetCinema)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(st.Session, st.User, log))
		r.Use(middleware.Admin(log))

		r.Post("/api/admin/cinemas", cinemaHandler.CreateCinema)
		r.Post("/api/admin/cinemas/{cinemaID}/rooms", cinemaHandler.AddRoom)
		r.Post("/api/admin/rooms/{roomID}/seats", cinemaHandler.AddSeat)
		r.Put("/api/admin/seats/{seatID}/status", cinemaHandler.UpdateSeatStatus)
		r.Post("/api/admin/cinemas/{cinemaID}/staff", cinemaHandler.AddStaff)
		r.Delete("/api/admin/cinemas/{cinemaID}/staff/{staffID}", cinemaHandler.RemoveStaff)
	})
}
