package wire

import (
	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	st *store.Store,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(st.Session, st.User, log))

		r.Post("/api/bookings", bookingHandler.CreateBooking)
		r.Get("/api/bookings", bookingHandler.GetUserBookings)
		r.Get("/api/bookings/{bookingID}", bookingHandler.GetBooking)
		r.Post("/api/bookings/{bookingID}/cancel", bookingHandler.CancelBooking)
		r.Post("/api/bookings/{bookingID}/tickets", bookingHandler.GenerateTicket)
		r.Delete("/api/bookings/{bookingID}/tickets/{ticketID}", bookingHandler.RemoveTicket)
		r.Get("/api/history", bookingHandler.GetHistory)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(st.Session, st.User, log))
		r.Use(middleware.Admin(log))

		r.Get("/{bookingID}", bookingHandler.GetBooking)
		r.Post("/{bookingID}/cancel", bookingHandler.CancelBooking)
		r.Put("/{bookingID}/status", bookingHandler.UpdateBookingStatus)
		r.Put("/{bookingID}/payment", bookingHandler.UpdatePaymentStatus)
	})
}
