package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/forgo/frontdesk/api/internal/model"
)

// ReservationRepository defines the interface for reservation storage
type ReservationRepository interface {
	Seed(ctx context.Context, reservations []model.Reservation) error
	MarkFailed(err error)
	Ready(ctx context.Context) (bool, error)
	Put(ctx context.Context, r model.Reservation) error
	Get(ctx context.Context, id string) (model.Reservation, bool)
	Delete(ctx context.Context, id string) bool
	List(ctx context.Context) []model.Reservation
	Count(ctx context.Context) int
}

// repoReady translates the store's seed state into a service error: nil once
// seeded, ErrStoreLoading while pending, ErrSeedFailed after a failed load.
func repoReady(ctx context.Context, repo ReservationRepository) error {
	ready, err := repo.Ready(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSeedFailed, err)
	}
	if !ready {
		return ErrStoreLoading
	}
	return nil
}

// ReservationService handles reservation business logic
type ReservationService struct {
	repo  ReservationRepository
	rooms *RoomService
	now   func() time.Time
}

// ReservationServiceConfig holds configuration for the reservation service
type ReservationServiceConfig struct {
	Repo  ReservationRepository
	Rooms *RoomService
	// Now overrides the clock used to decide whether an arrival is "today".
	// Defaults to time.Now.
	Now func() time.Time
}

// NewReservationService creates a new reservation service
func NewReservationService(cfg ReservationServiceConfig) *ReservationService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &ReservationService{
		repo:  cfg.Repo,
		rooms: cfg.Rooms,
		now:   now,
	}
}

// Create validates the request and inserts a new reservation.
//
// The id is sequential from the current count ("res-<count+1>"). After a
// delete the count shrinks, so a later create can mint an id that is already
// taken; the insert then replaces the older record. That collision hazard is
// inherited behavior, kept on purpose.
//
// The initial status is Due In when the arrival date is today's calendar
// date, Reserved otherwise.
func (s *ReservationService) Create(ctx context.Context, req *model.CreateReservationRequest) (*model.Reservation, error) {
	if err := repoReady(ctx, s.repo); err != nil {
		return nil, err
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if req.RoomNumber != "" {
		occupied, err := s.rooms.OccupiedRooms(ctx)
		if err != nil {
			return nil, err
		}
		if _, taken := occupied[req.RoomNumber]; taken {
			return nil, ErrRoomOccupied
		}
	}

	status := model.StatusReserved
	if req.ArrivalDate == s.now().Format(model.DateLayout) {
		status = model.StatusDueIn
	}

	reservation := model.Reservation{
		ID:           fmt.Sprintf("res-%d", s.repo.Count(ctx)+1),
		GuestName:    req.FirstName + " " + req.LastName,
		CheckInDate:  req.ArrivalDate,
		CheckOutDate: req.DepartureDate,
		Status:       status,
		RoomNumber:   req.RoomNumber,
		Notes:        req.Notes,
		Email:        req.Email,
	}

	if err := s.repo.Put(ctx, reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Update merges the present fields into an existing reservation. Status and
// dates are never touched by an edit; status only changes through the
// transition service, dates are immutable after creation. The room number is
// not re-checked for conflicts (that check guards creation only).
func (s *ReservationService) Update(ctx context.Context, id string, req *model.UpdateReservationRequest) (*model.Reservation, error) {
	if err := repoReady(ctx, s.repo); err != nil {
		return nil, err
	}

	if fieldErrs := req.Validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	reservation, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, ErrReservationNotFound
	}

	first, last := splitGuestName(reservation.GuestName)
	if req.FirstName != nil {
		first = *req.FirstName
	}
	if req.LastName != nil {
		last = *req.LastName
	}
	reservation.GuestName = strings.TrimSpace(first + " " + last)

	if req.RoomNumber != nil {
		reservation.RoomNumber = *req.RoomNumber
	}
	if req.Notes != nil {
		reservation.Notes = *req.Notes
	}
	if req.Email != nil {
		reservation.Email = *req.Email
	}

	if err := s.repo.Put(ctx, reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Delete removes the reservation with the given id. Deletion is permitted in
// every status.
func (s *ReservationService) Delete(ctx context.Context, id string) error {
	if err := repoReady(ctx, s.repo); err != nil {
		return err
	}
	if !s.repo.Delete(ctx, id) {
		return ErrReservationNotFound
	}
	return nil
}

// Get returns the reservation with the given id.
func (s *ReservationService) Get(ctx context.Context, id string) (*model.Reservation, error) {
	if err := repoReady(ctx, s.repo); err != nil {
		return nil, err
	}
	reservation, ok := s.repo.Get(ctx, id)
	if !ok {
		return nil, ErrReservationNotFound
	}
	return &reservation, nil
}

// ListGroupedByStatus returns every reservation bucketed by status. Every
// enumeration value is present as a key even when its group is empty, so the
// board always renders all seven columns. Within a group reservations keep
// the store's insertion order.
func (s *ReservationService) ListGroupedByStatus(ctx context.Context) (map[model.Status][]model.Reservation, error) {
	if err := repoReady(ctx, s.repo); err != nil {
		return nil, err
	}

	groups := make(map[model.Status][]model.Reservation, len(model.AllStatuses))
	for _, status := range model.AllStatuses {
		groups[status] = []model.Reservation{}
	}
	for _, r := range s.repo.List(ctx) {
		groups[r.Status] = append(groups[r.Status], r)
	}
	return groups, nil
}

// splitGuestName splits a display name back into first and last name the way
// the edit form does: first word, rest.
func splitGuestName(name string) (first, last string) {
	parts := strings.SplitN(name, " ", 2)
	first = parts[0]
	if len(parts) > 1 {
		last = parts[1]
	}
	return first, last
}
