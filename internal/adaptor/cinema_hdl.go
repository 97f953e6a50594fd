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

type CinemaHandler struct {
	service usecase.CinemaService
	log     *zap.Logger
}

func NewCinemaHandler(service usecase.CinemaService, log *zap.Logger) *CinemaHandler {
	return &CinemaHandler{
		service: service,
		log:     log,
	}
}

// ListCinemas handles GET /api/cinemas
func (h *CinemaHandler) ListCinemas(w http.ResponseWriter, r *http.Request) {
	cinemas, err := h.service.ListCinemas(r.Context())
	if err != nil {
		writeServiceError(w, h.log, err, "list cinemas")
		return
	}

	utils.ResponseSuccess(w, "success", cinemas)
}

// GetCinema handles GET /api/cinemas/{cinemaID}
func (h *CinemaHandler) GetCinema(w http.ResponseWriter, r *http.Request) {
	cinema, err := h.service.GetCinema(r.Context(), chi.URLParam(r, "cinemaID"))
	if err != nil {
		writeServiceError(w, h.log, err, "get cinema")
		return
	}

	utils.ResponseSuccess(w, "success", cinema)
}

// CreateCinema handles POST /api/admin/cinemas (admin)
func (h *CinemaHandler) CreateCinema(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCinemaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	cinema, err := h.service.CreateCinema(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create cinema")
		return
	}

	utils.ResponseCreated(w, "Cinema created", cinema)
}

// AddRoom handles POST /api/admin/cinemas/{cinemaID}/rooms (admin)
func (h *CinemaHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	var req request.AddRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.AddRoom(r.Context(), chi.URLParam(r, "cinemaID"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add room")
		return
	}

	utils.ResponseCreated(w, "Room added", room)
}

// AddSeat handles POST /api/admin/rooms/{roomID}/seats (admin)
func (h *CinemaHandler) AddSeat(w http.ResponseWriter, r *http.Request) {
	var req request.AddSeatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.AddSeat(r.Context(), chi.URLParam(r, "roomID"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add seat")
		return
	}

	utils.ResponseCreated(w, "Seat added", seat)
}

// UpdateSeatStatus handles PUT /api/admin/seats/{seatID}/status (admin)
func (h *CinemaHandler) UpdateSeatStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSeatStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	seat, err := h.service.UpdateSeatStatus(r.Context(), chi.URLParam(r, "seatID"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update seat status")
		return
	}

	utils.ResponseSuccess(w, "Seat status updated", seat)
}

// AddStaff handles POST /api/admin/cinemas/{cinemaID}/staff (admin)
func (h *CinemaHandler) AddStaff(w http.ResponseWriter, r *http.Request) {
	var req request.AddStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	staff, err := h.service.AddStaff(r.Context(), chi.URLParam(r, "cinemaID"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "add staff")
		return
	}

	utils.ResponseCreated(w, "Staff added", staff)
}

// RemoveStaff handles DELETE /api/admin/cinemas/{cinemaID}/staff/{staffID} (admin)
func (h *CinemaHandler) RemoveStaff(w http.ResponseWriter, r *http.Request) {
	err := h.service.RemoveStaff(r.Context(), chi.URLParam(r, "cinemaID"), chi.URLParam(r, "staffID"))
	if err != nil {
		writeServiceError(w, h.log, err, "remove staff")
		return
	}

	utils.ResponseSuccess(w, "Staff removed", nil)
}
