package store

import (
	"context"
	"errors"
	"testing"

	"github.com/forgo/frontdesk/api/internal/model"
)

func seeded(t *testing.T, reservations ...model.Reservation) *MemStore {
	t.Helper()
	s := NewMemStore()
	if err := s.Seed(context.Background(), reservations); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	return s
}

func res(id string, status model.Status) model.Reservation {
	return model.Reservation{
		ID:           id,
		GuestName:    "Test Guest",
		CheckInDate:  "2024-01-01",
		CheckOutDate: "2024-01-03",
		Status:       status,
	}
}

// ============================================================================
// Readiness
// ============================================================================

func TestMemStore_NotReadyBeforeSeed(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	ready, err := s.Ready(context.Background())
	if ready || err != nil {
		t.Errorf("expected pending state, got ready=%v err=%v", ready, err)
	}
}

func TestMemStore_ReadyAfterSeed(t *testing.T) {
	t.Parallel()

	s := seeded(t, res("res-1", model.StatusReserved))
	ready, err := s.Ready(context.Background())
	if !ready || err != nil {
		t.Errorf("expected ready state, got ready=%v err=%v", ready, err)
	}
}

func TestMemStore_MarkFailed(t *testing.T) {
	t.Parallel()

	s := NewMemStore()
	loadErr := errors.New("bad seed data")
	s.MarkFailed(loadErr)

	ready, err := s.Ready(context.Background())
	if ready {
		t.Error("expected store to stay not-ready after a failed load")
	}
	if !errors.Is(err, loadErr) {
		t.Errorf("expected recorded load error, got %v", err)
	}
	if got := s.Count(context.Background()); got != 0 {
		t.Errorf("expected empty store after failed load, got %d entries", got)
	}
}

// ============================================================================
// CRUD
// ============================================================================

func TestMemStore_PutAndGet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t)

	r := res("res-1", model.StatusReserved)
	if err := s.Put(ctx, r); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, ok := s.Get(ctx, "res-1")
	if !ok {
		t.Fatal("expected reservation to exist")
	}
	if got != r {
		t.Errorf("got %+v, want %+v", got, r)
	}
}

func TestMemStore_PutReplacesExisting(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t, res("res-1", model.StatusReserved), res("res-2", model.StatusDueIn))

	updated := res("res-1", model.StatusCanceled)
	if err := s.Put(ctx, updated); err != nil {
		t.Fatalf("put failed: %v", err)
	}

	got, _ := s.Get(ctx, "res-1")
	if got.Status != model.StatusCanceled {
		t.Errorf("expected replaced record, got status %q", got.Status)
	}

	// Replacement keeps the original listing position.
	list := s.List(ctx)
	if len(list) != 2 || list[0].ID != "res-1" || list[1].ID != "res-2" {
		t.Errorf("unexpected order after replace: %+v", list)
	}
}

func TestMemStore_DeleteRemovesExactlyOne(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t,
		res("res-1", model.StatusReserved),
		res("res-2", model.StatusDueIn),
		res("res-3", model.StatusInHouse),
	)

	if !s.Delete(ctx, "res-2") {
		t.Fatal("expected delete to report removal")
	}
	if _, ok := s.Get(ctx, "res-2"); ok {
		t.Error("expected res-2 to be gone")
	}

	list := s.List(ctx)
	if len(list) != 2 || list[0].ID != "res-1" || list[1].ID != "res-3" {
		t.Errorf("unexpected survivors: %+v", list)
	}
}

func TestMemStore_DeleteAbsentIsNoop(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t, res("res-1", model.StatusReserved))

	if s.Delete(ctx, "res-99") {
		t.Error("expected delete of absent id to report false")
	}
	if got := s.Count(ctx); got != 1 {
		t.Errorf("expected 1 entry, got %d", got)
	}
}

func TestMemStore_ListInsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := seeded(t)
	for _, id := range []string{"res-3", "res-1", "res-2"} {
		if err := s.Put(ctx, res(id, model.StatusReserved)); err != nil {
			t.Fatalf("put failed: %v", err)
		}
	}

	list := s.List(ctx)
	want := []string{"res-3", "res-1", "res-2"}
	for i, id := range want {
		if list[i].ID != id {
			t.Errorf("list[%d] = %q, want %q", i, list[i].ID, id)
		}
	}
}
