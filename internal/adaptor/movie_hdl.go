package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-tickets/internal/data/store"
	"cinema-tickets/internal/dto/request"
	"cinema-tickets/internal/usecase"
	"cinema-tickets/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log,
	}
}

// ListMovies handles GET /api/movies?title=&genre=&page=&per_page=
func (h *MovieHandler) ListMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.MovieFilter{
		Title: query.Get("title"),
		Genre: query.Get("genre"),
	}
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	movies, err := h.service.ListMovies(r.Context(), filter, req)
	if err != nil {
		writeServiceError(w, h.log, err, "list movies")
		return
	}

	utils.ResponseSuccess(w, "success", movies)
}

// GetMovie handles GET /api/movies/{movieID}
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movie, err := h.service.GetMovie(r.Context(), chi.URLParam(r, "movieID"))
	if err != nil {
		writeServiceError(w, h.log, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// ListShowTimes handles GET /api/movies/{movieID}/showtimes
func (h *MovieHandler) ListShowTimes(w http.ResponseWriter, r *http.Request) {
	showtimes, err := h.service.ListShowTimes(r.Context(), chi.URLParam(r, "movieID"))
	if err != nil {
		writeServiceError(w, h.log, err, "list showtimes")
		return
	}

	utils.ResponseSuccess(w, "success", showtimes)
}

// GetShowTimeSeats handles GET /api/showtimes/{showtimeID}/seats
func (h *MovieHandler) GetShowTimeSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.GetShowTimeSeats(r.Context(), chi.URLParam(r, "showtimeID"))
	if err != nil {
		writeServiceError(w, h.log, err, "get showtime seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// CreateMovie handles POST /api/admin/movies (admin)
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.CreateMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	movie, err := h.service.CreateMovie(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create movie")
		return
	}

	utils.ResponseCreated(w, "Movie created", movie)
}

// CreateShowTime handles POST /api/admin/showtimes (admin)
func (h *MovieHandler) CreateShowTime(w http.ResponseWriter, r *http.Request) {
	var req request.CreateShowTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	showtime, err := h.service.CreateShowTime(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create showtime")
		return
	}

	utils.ResponseCreated(w, "Showtime created", showtime)
}
