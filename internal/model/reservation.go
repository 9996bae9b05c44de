package model

import (
	"regexp"
	"time"
)

// DateLayout is the calendar-date format used for check-in and check-out
// dates throughout the API.
const DateLayout = "2006-01-02"

// Status is the lifecycle stage of a reservation.
type Status string

// Reservation status constants
const (
	StatusReserved   Status = "Reserved"
	StatusDueIn      Status = "Due In"
	StatusInHouse    Status = "In House"
	StatusDueOut     Status = "Due Out"
	StatusCheckedOut Status = "Checked Out"
	StatusCanceled   Status = "Canceled"
	StatusNoShow     Status = "No Show"
)

// AllStatuses lists every reservation status in board column order. The
// grouped listing emits one group per entry, empty or not.
var AllStatuses = []Status{
	StatusReserved,
	StatusDueIn,
	StatusInHouse,
	StatusDueOut,
	StatusCheckedOut,
	StatusCanceled,
	StatusNoShow,
}

// Valid reports whether s is one of the fixed status enumeration values.
func (s Status) Valid() bool {
	switch s {
	case StatusReserved, StatusDueIn, StatusInHouse, StatusDueOut,
		StatusCheckedOut, StatusCanceled, StatusNoShow:
		return true
	}
	return false
}

// ActiveHold reports whether the status represents a room being reserved or
// occupied for room-conflict purposes.
func (s Status) ActiveHold() bool {
	switch s {
	case StatusReserved, StatusDueIn, StatusInHouse:
		return true
	}
	return false
}

// Reservation represents a guest's booked stay
type Reservation struct {
	ID           string `json:"id"`
	GuestName    string `json:"guestName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Status       Status `json:"status"`
	RoomNumber   string `json:"roomNumber,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Email        string `json:"email,omitempty"`
}

// RawReservation is the untrusted record shape of the seed dataset. The
// status arrives as a bare string and must be validated before the record
// becomes a Reservation.
type RawReservation struct {
	ID           string `json:"id"`
	GuestName    string `json:"guestName"`
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Status       string `json:"status"`
	RoomNumber   string `json:"roomNumber,omitempty"`
	Notes        string `json:"notes,omitempty"`
	Email        string `json:"email,omitempty"`
}

/// emailRegex matches the local@domain.tld shape. Kept deliberately loose:
// presence of an @ and a dotted domain, no whitespace.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s matches the accepted email shape.
func ValidEmail(s string) bool {
	return emailRegex.MatchString(s)
}

// CreateReservationRequest represents a request to create a reservation.
// Guest name is composed from first and last name; the initial status is
// derived from the arrival date and is not part of the request.
type CreateReservationRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	ArrivalDate   string `json:"arrivalDate"`
	DepartureDate string `json:"departureDate"`
	RoomNumber    string `json:"roomNumber,omitempty"`
	Notes         string `json:"notes,omitempty"`
	Email         string `json:"email,omitempty"`
}

// Validate checks required fields and formats. It returns one FieldError
// per failing field, or an empty slice when the request is valid.
func (r *CreateReservationRequest) Validate() []FieldError {
	var errs []FieldError

	if r.FirstName == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "firstName is required"})
	}
	if r.LastName == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "lastName is required"})
	}

	var arrival, departure time.Time
	if r.ArrivalDate == "" {
		errs = append(errs, FieldError{Field: "arrivalDate", Message: "arrivalDate is required"})
	} else {
		var err error
		arrival, err = time.Parse(DateLayout, r.ArrivalDate)
		if err != nil {
			errs = append(errs, FieldError{Field: "arrivalDate", Message: "arrivalDate must be a YYYY-MM-DD date"})
		}
	}
	if r.DepartureDate == "" {
		errs = append(errs, FieldError{Field: "departureDate", Message: "departureDate is required"})
	} else {
		var err error
		departure, err = time.Parse(DateLayout, r.DepartureDate)
		if err != nil {
			errs = append(errs, FieldError{Field: "departureDate", Message: "departureDate must be a YYYY-MM-DD date"})
		}
	}
	if !arrival.IsZero() && !departure.IsZero() && departure.Before(arrival) {
		errs = append(errs, FieldError{Field: "departureDate", Message: "departureDate must not precede arrivalDate"})
	}

	if r.Email != "" && !ValidEmail(r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid address"})
	}

	return errs
}

// UpdateReservationRequest represents an edit of an existing reservation.
// Dates and status are intentionally absent: the edit flow only changes
// name, room, notes and email.
type UpdateReservationRequest struct {
	FirstName  *string `json:"firstName,omitempty"`
	LastName   *string `json:"lastName,omitempty"`
	RoomNumber *string `json:"roomNumber,omitempty"`
	Notes      *string `json:"notes,omitempty"`
	Email      *string `json:"email,omitempty"`
}

// Validate checks the fields that are present.
func (r *UpdateReservationRequest) Validate() []FieldError {
	var errs []FieldError

	if r.FirstName != nil && *r.FirstName == "" {
		errs = append(errs, FieldError{Field: "firstName", Message: "firstName must not be empty"})
	}
	if r.LastName != nil && *r.LastName == "" {
		errs = append(errs, FieldError{Field: "lastName", Message: "lastName must not be empty"})
	}
	if r.Email != nil && *r.Email != "" && !ValidEmail(*r.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "email must be a valid address"})
	}

	return errs
}
