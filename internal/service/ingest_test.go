package service

import (
	"errors"
	"testing"

	"github.com/forgo/frontdesk/api/internal/model"
)

func rawRecord(id, status string) model.RawReservation {
	return model.RawReservation{
		ID:           id,
		GuestName:    "Jan Kowalski",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Status:       status,
		RoomNumber:   "101",
		Notes:        "sea view",
		Email:        "jan@example.com",
	}
}

func TestMapRawReservation_PassesFieldsThrough(t *testing.T) {
	t.Parallel()

	raw := rawRecord("res-1", "In House")
	got, err := MapRawReservation(raw)
	if err != nil {
		t.Fatalf("map failed: %v", err)
	}

	want := model.Reservation{
		ID:           "res-1",
		GuestName:    "Jan Kowalski",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Status:       model.StatusInHouse,
		RoomNumber:   "101",
		Notes:        "sea view",
		Email:        "jan@example.com",
	}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestMapRawReservation_EveryStatusAccepted(t *testing.T) {
	t.Parallel()

	for _, status := range model.AllStatuses {
		if _, err := MapRawReservation(rawRecord("res-1", string(status))); err != nil {
			t.Errorf("expected %q to be accepted, got %v", status, err)
		}
	}
}

func TestMapRawReservation_InvalidStatus(t *testing.T) {
	t.Parallel()

	_, err := MapRawReservation(rawRecord("res-1", "Standby"))

	var statusErr *InvalidStatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *InvalidStatusError, got %v", err)
	}
	if statusErr.Value != "Standby" {
		t.Errorf("expected offending value preserved, got %q", statusErr.Value)
	}
}

func TestIngestAll_AllOrNothing(t *testing.T) {
	t.Parallel()

	raws := []model.RawReservation{
		rawRecord("res-1", "Reserved"),
		rawRecord("res-2", "checked out"), // wrong casing, outside the enumeration
		rawRecord("res-3", "Due In"),
	}

	reservations, err := IngestAll(raws)
	if err == nil {
		t.Fatal("expected the batch to fail")
	}
	if reservations != nil {
		t.Errorf("expected no partial result, got %d reservations", len(reservations))
	}

	var statusErr *InvalidStatusError
	if !errors.As(err, &statusErr) || statusErr.Value != "checked out" {
		t.Errorf("expected the first offending value, got %v", err)
	}
}

func TestIngestAll_ValidBatch(t *testing.T) {
	t.Parallel()

	raws := []model.RawReservation{
		rawRecord("res-1", "Reserved"),
		rawRecord("res-2", "Due Out"),
	}

	reservations, err := IngestAll(raws)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if len(reservations) != 2 {
		t.Fatalf("expected 2 reservations, got %d", len(reservations))
	}
	if reservations[1].Status != model.StatusDueOut {
		t.Errorf("expected Due Out, got %q", reservations[1].Status)
	}
}

func TestIngestAll_EmptyBatch(t *testing.T) {
	t.Parallel()

	reservations, err := IngestAll(nil)
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if len(reservations) != 0 {
		t.Errorf("expected empty result, got %d", len(reservations))
	}
}
