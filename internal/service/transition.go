package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/forgo/frontdesk/api/internal/model"
)

// transitionTable maps each status to the statuses a reservation may move to.
// Due Out has no producing transition anywhere in the table; it only ever
// appears via seed data. No Show is terminal.
var transitionTable = map[model.Status][]model.Status{
	model.StatusReserved:   {model.StatusCanceled, model.StatusDueIn},
	model.StatusDueIn:      {model.StatusCanceled, model.StatusNoShow, model.StatusInHouse},
	model.StatusInHouse:    {model.StatusCheckedOut},
	model.StatusCheckedOut: {model.StatusInHouse},
	model.StatusCanceled:   {model.StatusReserved},
	model.StatusDueOut:     {},
	model.StatusNoShow:     {},
}

// LegalNextStatuses returns the statuses a reservation with the given current
// status may transition to. The result is empty (never nil) for terminal
// statuses and for values outside the enumeration.
func LegalNextStatuses(current model.Status) []model.Status {
	next, ok := transitionTable[current]
	if !ok {
		return []model.Status{}
	}
	out := make([]model.Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether current → target is in the transition table.
func CanTransition(current, target model.Status) bool {
	for _, s := range transitionTable[current] {
		if s == target {
			return true
		}
	}
	return false
}

// ReservationIsEditable reports whether the edit action is offered for a
// reservation in the given status. Only Reserved and Due In reservations are
// editable; deletion is permitted in every status.
func ReservationIsEditable(status model.Status) bool {
	return status == model.StatusReserved || status == model.StatusDueIn
}

// Proposal is a pending status change awaiting confirmation. Its ID is the
// handle the confirm and cancel calls must present.
type Proposal struct {
	ID            string       `json:"id"`
	ReservationID string       `json:"reservationId"`
	Target        model.Status `json:"target"`
	ProposedAt    time.Time    `json:"proposedAt"`
}

// TransitionService gates every status change behind the transition table and
// a two-phase propose/confirm protocol. The service is a small state machine:
// idle, or holding exactly one pending proposal (the dashboard is driven by a
// single operator). Proposing while a proposal is pending replaces it, which
// matches reopening the status picker in the UI.
type TransitionService struct {
	repo ReservationRepository

	mu      sync.Mutex
	pending *Proposal
}

// TransitionServiceConfig holds configuration for the transition service
type TransitionServiceConfig struct {
	Repo ReservationRepository
}

// NewTransitionService creates a new transition service
func NewTransitionService(cfg TransitionServiceConfig) *TransitionService {
	return &TransitionService{repo: cfg.Repo}
}

// Propose validates the requested status change and records it as the
// pending proposal. Nothing is written to the store until Confirm.
func (s *TransitionService) Propose(ctx context.Context, reservationID string, target model.Status) (*Proposal, error) {
	if err := repoReady(ctx, s.repo); err != nil {
		return nil, err
	}

	reservation, ok := s.repo.Get(ctx, reservationID)
	if !ok {
		return nil, ErrReservationNotFound
	}
	if !CanTransition(reservation.Status, target) {
		return nil, ErrIllegalTransition
	}

	proposal := &Proposal{
		ID:            uuid.New().String(),
		ReservationID: reservationID,
		Target:        target,
		ProposedAt:    time.Now(),
	}

	s.mu.Lock()
	s.pending = proposal
	s.mu.Unlock()

	copied := *proposal
	return &copied, nil
}

// Confirm applies the pending proposal with the given id. Legality is
// re-checked against the reservation's current status before the single
// atomic overwrite: the store may have changed between propose and confirm,
// and a stale proposal must not slip an illegal transition through. The
// proposal is consumed whether the confirm succeeds or not.
func (s *TransitionService) Confirm(ctx context.Context, proposalID string) (*model.Reservation, error) {
	if err := repoReady(ctx, s.repo); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil || s.pending.ID != proposalID {
		return nil, ErrProposalNotFound
	}
	proposal := s.pending
	s.pending = nil

	reservation, ok := s.repo.Get(ctx, proposal.ReservationID)
	if !ok {
		return nil, ErrReservationNotFound
	}
	if !CanTransition(reservation.Status, proposal.Target) {
		return nil, ErrIllegalTransition
	}

	reservation.Status = proposal.Target
	if err := s.repo.Put(ctx, reservation); err != nil {
		return nil, err
	}
	return &reservation, nil
}

// Cancel discards the pending proposal with the given id and returns the
// state machine to idle.
func (s *TransitionService) Cancel(proposalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil || s.pending.ID != proposalID {
		return ErrProposalNotFound
	}
	s.pending = nil
	return nil
}

// Pending returns a copy of the live proposal, or nil when idle.
func (s *TransitionService) Pending() *Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return nil
	}
	copied := *s.pending
	return &copied
}
