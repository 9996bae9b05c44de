package service

import (
	"context"
	"sort"
)

// RoomService derives the occupied-room view used to block double-booking at
// creation time.
type RoomService struct {
	repo ReservationRepository
}

// RoomServiceConfig holds configuration for the room service
type RoomServiceConfig struct {
	Repo ReservationRepository
}

// NewRoomService creates a new room service
func NewRoomService(cfg RoomServiceConfig) *RoomService {
	return &RoomService{repo: cfg.Repo}
}

// OccupiedRooms returns every non-empty room number across the full
// reservation collection, regardless of status. A room freed by cancellation
// or checkout therefore stays in the set for as long as its reservation
// exists -- a known limitation carried over from the original board. The set
// is recomputed on every call; the collection is small enough that caching
// would buy nothing.
func (s *RoomService) OccupiedRooms(ctx context.Context) (map[string]struct{}, error) {
	if err := repoReady(ctx, s.repo); err != nil {
		return nil, err
	}

	occupied := make(map[string]struct{})
	for _, r := range s.repo.List(ctx) {
		if r.RoomNumber != "" {
			occupied[r.RoomNumber] = struct{}{}
		}
	}
	return occupied, nil
}

// OccupiedRoomsSorted returns the occupied set as a sorted slice for stable
// API responses.
func (s *RoomService) OccupiedRoomsSorted(ctx context.Context) ([]string, error) {
	occupied, err := s.OccupiedRooms(ctx)
	if err != nil {
		return nil, err
	}
	rooms := make([]string, 0, len(occupied))
	for room := range occupied {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms, nil
}
