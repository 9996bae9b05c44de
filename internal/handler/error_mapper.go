package handler

import (
	"errors"

	"github.com/forgo/frontdesk/api/internal/model"
	"github.com/forgo/frontdesk/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// ===== Validation Errors → 422 =====
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return model.NewValidationError(validationErr.Fields)
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrReservationNotFound):
		return model.NewNotFoundError("reservation")
	case errors.Is(err, service.ErrProposalNotFound):
		return model.NewNotFoundError("transition proposal")

	// ===== Conflict Errors → 409 =====
	case errors.Is(err, service.ErrRoomOccupied),
		errors.Is(err, service.ErrIllegalTransition):
		return model.NewConflictError(err.Error())

	// ===== Store Lifecycle → 503 =====
	case errors.Is(err, service.ErrStoreLoading):
		return model.NewUnavailableError("reservation data is still loading")
	case errors.Is(err, service.ErrSeedFailed):
		return model.NewUnavailableError("reservation data failed to load")
	}

	// ===== Default → 500 =====
	return model.NewInternalError("")
}
