package wire

import (
	"net/http"

	"cinema-tickets/internal/adaptor"
	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/middleware"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the full dependency graph: stores into services into
// handlers into routes.
func Wiring(st *store.Store, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(st, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, st, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	st *store.Store,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	wireAuth(r, handler.Auth, st, logger)
	wireUser(r, handler.User, st, logger)
	wireMovie(r, handler.Movie, st, logger)
	wireCinema(r, handler.Cinema, st, logger)
	wireBooking(r, handler.Booking, st, logger)
	wirePromotion(r, handler.Promotion, st, logger)
	wireReview(r, handler.Review, st, logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
