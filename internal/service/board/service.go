package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-go/internal/pkg/sheetdb"
)

// State is the explicit session state, one tagged value with defined
// transitions:
//
//	Unauthenticated -> Loading -> Ready          (successful login)
//	Loading         -> Unauthenticated           (incorrect passcode)
//	Ready           -> Submitting -> Ready       (mutation, success or failure)
//	Ready           -> Loading -> Ready          (refresh)
//
// There is no logout; the session lives until the process does.
type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateLoading         State = "loading"
	StateReady           State = "ready"
	StateSubmitting      State = "submitting"
)

// Service owns the one dashboard session: the memoized passcode, the record
// snapshot last observed from the collaborator, and the session state. The
// collaborator is the sole source of truth; every mutation is followed by an
// unconditional full reload instead of a local patch.
type Service struct {
	backend sheetdb.Backend
	now     func() time.Time

	mu       sync.RWMutex
	state    State
	passcode string
	records  []leave.Record
}

func NewService(backend sheetdb.Backend) *Service {
	return &Service{
		backend: backend,
		now:     time.Now,
		state:   StateUnauthenticated,
	}
}

// State returns the current session state.
func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Service) authenticated() bool {
	return s.passcode != ""
}

// Authenticated reports whether a login has succeeded this session.
func (s *Service) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated()
}

// Records returns a copy of the last observed record set.
func (s *Service) Records() []leave.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]leave.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Login authenticates the session by fetching the full record set with the
// given passcode. On success the passcode is memoized and reused on every
// subsequent call. An incorrect passcode leaves the session unauthenticated;
// a transport failure leaves the authentication state unchanged.
func (s *Service) Login(ctx context.Context, passcode string) error {
	s.mu.Lock()
	prev := s.state
	s.state = StateLoading
	s.mu.Unlock()

	records, err := s.backend.List(ctx, passcode)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		if errors.Is(err, leave.ErrIncorrectPasscode) {
			s.state = StateUnauthenticated
			s.passcode = ""
			return leave.ErrIncorrectPasscode
		}
		slog.Error("leave board load failed", "error", err)
		s.state = prev
		return fmt.Errorf("%w: %v", leave.ErrConnectionFailed, err)
	}

	s.passcode = passcode
	s.records = records
	s.state = StateReady
	return nil
}

// Refresh re-fetches the record set with the memoized passcode.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.RLock()
	passcode := s.passcode
	s.mu.RUnlock()

	if passcode == "" {
		return leave.ErrNotAuthenticated
	}
	return s.Login(ctx, passcode)
}

// Add validates the draft locally and, only if valid, submits it and reloads.
// Invalid drafts fail with zero collaborator calls.
func (s *Service) Add(ctx context.Context, req leave.CreateRecordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	typ := req.Type
	if typ == "" {
		typ = leave.DefaultType
	}

	return s.mutate(ctx, sheetdb.Mutation{
		Action:      sheetdb.ActionAdd,
		Name:        req.Name,
		Username:    req.Username,
		Type:        typ,
		Start:       req.Start,
		End:         req.End,
		Status:      leave.StatusPending,
		Notes:       req.Notes,
		SubmittedAt: s.now().Format(time.RFC3339),
	})
}

// Remove deletes a record. The confirmed flag is the explicit affirmative
// confirmation step; without it no delete request is sent.
func (s *Service) Remove(ctx context.Context, id leave.RowID, confirmed bool) error {
	if !confirmed {
		return leave.ErrDeleteNotConfirmed
	}
	return s.mutate(ctx, sheetdb.Mutation{
		Action: sheetdb.ActionDelete,
		ID:     id,
	})
}

// SetStatus changes a record's status. There is no precondition on the
// current status; the collaborator is trusted.
func (s *Service) SetStatus(ctx context.Context, id leave.RowID, status leave.Status) error {
	req := leave.UpdateStatusRequest{Status: status}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, sheetdb.Mutation{
		Action: sheetdb.ActionUpdateStatus,
		ID:     id,
		Status: status,
	})
}

// SetType changes a record's leave type, the remediation path for records
// tagged with the ineligible bereavement sentinel. Works regardless of the
// record's status.
func (s *Service) SetType(ctx context.Context, id leave.RowID, typeLabel string) error {
	req := leave.UpdateTypeRequest{Type: typeLabel}
	if err := req.Validate(); err != nil {
		return err
	}
	return s.mutate(ctx, sheetdb.Mutation{
		Action: sheetdb.ActionUpdateType,
		ID:     id,
		Type:   typeLabel,
	})
}

// mutate submits one write and reloads. The Submitting state is always left
// behind, on success and on every failure path.
func (s *Service) mutate(ctx context.Context, m sheetdb.Mutation) error {
	s.mu.Lock()
	if !s.authenticated() {
		s.mu.Unlock()
		return leave.ErrNotAuthenticated
	}
	passcode := s.passcode
	s.state = StateSubmitting
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if s.authenticated() {
			s.state = StateReady
		}
		s.mu.Unlock()
	}()

	if err := s.backend.Mutate(ctx, passcode, m); err != nil {
		if errors.Is(err, leave.ErrIncorrectPasscode) || errors.Is(err, leave.ErrRecordNotFound) {
			return err
		}
		slog.Error("leave board mutation failed", "action", m.Action, "error", err)
		return fmt.Errorf("%w: %v", leave.ErrMutationFailed, err)
	}

	// Re-observe whatever state the collaborator (and any concurrent
	// writer) left behind. A failed reload does not fail the mutation;
	// the stale snapshot stays visible until the next refresh.
	if err := s.Refresh(ctx); err != nil {
		slog.Error("reload after mutation failed", "action", m.Action, "error", err)
	}
	return nil
}
