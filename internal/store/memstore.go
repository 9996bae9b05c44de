// Package store provides the in-memory reservation store backing the Front
// Desk API. The store is plain keyed storage guarded by a mutex; all business
// rules live in the service layer. Nothing is persisted: contents are seeded
// once at startup and live for the process lifetime.
package store

import (
	"context"
	"sync"

	"github.com/forgo/frontdesk/api/internal/model"
)

// MemStore is a mutex-guarded map of reservation id to reservation, plus the
// insertion-order key list so listings are deterministic.
//
// Until Seed or MarkFailed is called the store reports not-ready and the API
// serves a loading placeholder instead of data.
type MemStore struct {
	mu      sync.RWMutex
	byID    map[string]model.Reservation
	order   []string
	ready   bool
	loadErr error
}

// NewMemStore creates an empty, not-yet-seeded store.
func NewMemStore() *MemStore {
	return &MemStore{
		byID: make(map[string]model.Reservation),
	}
}

// Seed replaces the store contents with the given reservations and marks the
// store ready. It is called once, after the seed dataset has been ingested.
func (s *MemStore) Seed(ctx context.Context, reservations []model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID = make(map[string]model.Reservation, len(reservations))
	s.order = make([]string, 0, len(reservations))
	for _, r := range reservations {
		if _, exists := s.byID[r.ID]; !exists {
			s.order = append(s.order, r.ID)
		}
		s.byID[r.ID] = r
	}
	s.ready = true
	s.loadErr = nil
	return nil
}

// MarkFailed records a seed failure. The store stays empty and not-ready;
// reads surface the recorded error until the process restarts (the seed load
// is never retried).
func (s *MemStore) MarkFailed(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadErr = err
}

// Ready reports the seed state: (false, nil) while the load is pending,
// (false, err) after a failed load, (true, nil) once seeded.
func (s *MemStore) Ready(ctx context.Context) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.loadErr != nil {
		return false, s.loadErr
	}
	return s.ready, nil
}

// Put inserts or replaces the reservation under its id. An existing id keeps
// its position in the listing order; a new id is appended. Replacement is a
// last-write-wins overwrite of the whole record.
func (s *MemStore) Put(ctx context.Context, r model.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[r.ID]; !exists {
		s.order = append(s.order, r.ID)
	}
	s.byID[r.ID] = r
	return nil
}

// Get returns the reservation with the given id.
func (s *MemStore) Get(ctx context.Context, id string) (model.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.byID[id]
	return r, ok
}

// Delete removes the reservation with the given id. Deleting an absent id is
// a no-op; the return value reports whether an entry was removed.
func (s *MemStore) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	for i, key := range s.order {
		if key == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// List returns all reservations in insertion order.
func (s *MemStore) List(ctx context.Context) []model.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Reservation, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Count returns the number of reservations currently held.
func (s *MemStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
