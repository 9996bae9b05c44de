package service

import (
	"errors"
	"fmt"

	"github.com/forgo/frontdesk/api/internal/model"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Reservation Errors =====
var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomOccupied        = errors.New("room with this number is already reserved")
)

// ===== Transition Errors =====
var (
	ErrIllegalTransition = errors.New("status transition is not allowed")
	ErrProposalNotFound  = errors.New("no matching pending transition proposal")
)

// ===== Store Lifecycle Errors =====
var (
	ErrStoreLoading = errors.New("reservation data is still loading")
	ErrSeedFailed   = errors.New("reservation data failed to load")
)

// ValidationError carries per-field failures from a create or update request.
type ValidationError struct {
	Fields []model.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return fmt.Sprintf("validation failed: %s: %s", e.Fields[0].Field, e.Fields[0].Message)
}

// InvalidStatusError reports a seed record whose status is outside the fixed
// enumeration. The offending value is preserved for diagnostics.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	return fmt.Sprintf("invalid reservation status: %q", e.Value)
}
