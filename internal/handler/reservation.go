package handler

import (
	"net/http"

	"github.com/forgo/frontdesk/api/internal/model"
	"github.com/forgo/frontdesk/api/internal/service"
)

// ReservationHandler handles reservation endpoints
type ReservationHandler struct {
	reservationService *service.ReservationService
}

// NewReservationHandler creates a new reservation handler
func NewReservationHandler(reservationService *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationService}
}

// ListGrouped handles GET /v1/reservations - the dashboard board, every
// status present as a key even when its group is empty
func (h *ReservationHandler) ListGrouped(w http.ResponseWriter, r *http.Request) {
	groups, err := h.reservationService.ListGroupedByStatus(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, groups, nil)
}

// Get handles GET /v1/reservations/{reservationId} - a single reservation
func (h *ReservationHandler) Get(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationId")
	if reservationID == "" {
		WriteError(w, model.NewBadRequestError("reservation ID required"))
		return
	}

	reservation, err := h.reservationService.Get(r.Context(), reservationID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, reservation, map[string]string{
		"self": "/v1/reservations/" + reservation.ID,
	})
}

// Create handles POST /v1/reservations - create a reservation
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReservationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	reservation, err := h.reservationService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, reservation, map[string]string{
		"self": "/v1/reservations/" + reservation.ID,
	})
}

// Update handles PATCH /v1/reservations/{reservationId} - edit name, room,
// notes or email; dates and status are not editable through this endpoint
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationId")
	if reservationID == "" {
		WriteError(w, model.NewBadRequestError("reservation ID required"))
		return
	}

	var req model.UpdateReservationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	reservation, err := h.reservationService.Update(r.Context(), reservationID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, reservation, map[string]string{
		"self": "/v1/reservations/" + reservation.ID,
	})
}

// Delete handles DELETE /v1/reservations/{reservationId} - remove a
// reservation; allowed in every status
func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationId")
	if reservationID == "" {
		WriteError(w, model.NewBadRequestError("reservation ID required"))
		return
	}

	if err := h.reservationService.Delete(r.Context(), reservationID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
