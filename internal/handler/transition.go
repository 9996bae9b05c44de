package handler

import (
	"net/http"

	"github.com/forgo/frontdesk/api/internal/model"
	"github.com/forgo/frontdesk/api/internal/service"
)

// TransitionHandler handles the two-phase status change endpoints
type TransitionHandler struct {
	transitionService  *service.TransitionService
	reservationService *service.ReservationService
}

// NewTransitionHandler creates a new transition handler
func NewTransitionHandler(
	transitionService *service.TransitionService,
	reservationService *service.ReservationService,
) *TransitionHandler {
	return &TransitionHandler{
		transitionService:  transitionService,
		reservationService: reservationService,
	}
}

// ProposeTransitionRequest represents a request to propose a status change
type ProposeTransitionRequest struct {
	Target model.Status `json:"target"`
}

// TransitionOptionsResponse lists what the actions modal may offer for a
// reservation: the legal next statuses and whether the edit action applies.
type TransitionOptionsResponse struct {
	Statuses []model.Status `json:"statuses"`
	Editable bool           `json:"editable"`
}

// Options handles GET /v1/reservations/{reservationId}/transitions - the
// legal next statuses and the editability gate for a reservation
func (h *TransitionHandler) Options(w http.ResponseWriter, r *http.Request) {
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

	WriteData(w, http.StatusOK, TransitionOptionsResponse{
		Statuses: service.LegalNextStatuses(reservation.Status),
		Editable: service.ReservationIsEditable(reservation.Status),
	}, nil)
}

// Propose handles POST /v1/reservations/{reservationId}/transition - first
// phase of a status change; nothing is applied until the proposal is
// confirmed
func (h *TransitionHandler) Propose(w http.ResponseWriter, r *http.Request) {
	reservationID := r.PathValue("reservationId")
	if reservationID == "" {
		WriteError(w, model.NewBadRequestError("reservation ID required"))
		return
	}

	var req ProposeTransitionRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.Target == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "target", Message: "target is required"},
		}))
		return
	}

	proposal, err := h.transitionService.Propose(r.Context(), reservationID, req.Target)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, proposal, map[string]string{
		"confirm": "/v1/transitions/" + proposal.ID + "/confirm",
		"cancel":  "/v1/transitions/" + proposal.ID,
	})
}

// Confirm handles POST /v1/transitions/{proposalId}/confirm - second phase;
// applies the proposed status change atomically
func (h *TransitionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	proposalID := r.PathValue("proposalId")
	if proposalID == "" {
		WriteError(w, model.NewBadRequestError("proposal ID required"))
		return
	}

	reservation, err := h.transitionService.Confirm(r.Context(), proposalID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, reservation, map[string]string{
		"self": "/v1/reservations/" + reservation.ID,
	})
}

// Cancel handles DELETE /v1/transitions/{proposalId} - discard a pending
// proposal without applying it
func (h *TransitionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	proposalID := r.PathValue("proposalId")
	if proposalID == "" {
		WriteError(w, model.NewBadRequestError("proposal ID required"))
		return
	}

	if err := h.transitionService.Cancel(proposalID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
