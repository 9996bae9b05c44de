package service

import (
	"github.com/forgo/frontdesk/api/internal/model"
)

// MapRawReservation converts an untrusted seed record into a Reservation.
// The status must be one of the fixed enumeration; any other value fails
// with *InvalidStatusError naming the offending value. All other fields pass
// through unchanged, there is no deeper validation at ingestion.
func MapRawReservation(raw model.RawReservation) (model.Reservation, error) {
	status := model.Status(raw.Status)
	if !status.Valid() {
		return model.Reservation{}, &InvalidStatusError{Value: raw.Status}
	}

	return model.Reservation{
		ID:           raw.ID,
		GuestName:    raw.GuestName,
		CheckInDate:  raw.CheckInDate,
		CheckOutDate: raw.CheckOutDate,
		Status:       status,
		RoomNumber:   raw.RoomNumber,
		Notes:        raw.Notes,
		Email:        raw.Email,
	}, nil
}

// IngestAll maps a batch of raw seed records. The first invalid record aborts
// the whole batch: the seed is all-or-nothing, a partial dataset never
// reaches the store.
func IngestAll(raws []model.RawReservation) ([]model.Reservation, error) {
	reservations := make([]model.Reservation, 0, len(raws))
	for _, raw := range raws {
		reservation, err := MapRawReservation(raw)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}
