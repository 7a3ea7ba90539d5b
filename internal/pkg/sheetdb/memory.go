package sheetdb

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
)

// Memory is an in-process Backend with the same contract as the web app:
// every call is checked against the shared passcode and ids are assigned on
// add. It backs demo mode and the test suites.
type Memory struct {
	mu       sync.Mutex
	passcode string
	records  []leave.Record
}

// NewMemory creates a Memory backend gated by passcode and seeded with the
// given records. Seed records without an id get one assigned.
func NewMemory(passcode string, seed []leave.Record) *Memory {
	m := &Memory{passcode: passcode}
	for _, rec := range seed {
		if rec.ID == "" {
			rec.ID = leave.RowID(uuid.NewString())
		}
		m.records = append(m.records, rec)
	}
	return m
}

func (m *Memory) authorize(passcode string) error {
	if passcode != m.passcode {
		return leave.ErrIncorrectPasscode
	}
	return nil
}

// List implements Backend.
func (m *Memory) List(ctx context.Context, passcode string) ([]leave.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.authorize(passcode); err != nil {
		return nil, err
	}

	out := make([]leave.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Mutate implements Backend.
func (m *Memory) Mutate(ctx context.Context, passcode string, mut Mutation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.authorize(passcode); err != nil {
		return err
	}

	switch mut.Action {
	case ActionAdd:
		status := mut.Status
		if status == "" {
			status = leave.StatusPending
		}
		m.records = append(m.records, leave.Record{
			ID:          leave.RowID(uuid.NewString()),
			Name:        mut.Name,
			Username:    mut.Username,
			Type:        mut.Type,
			Start:       mut.Start,
			End:         mut.End,
			Status:      status,
			Notes:       mut.Notes,
			SubmittedAt: mut.SubmittedAt,
		})
		return nil

	case ActionDelete:
		for i, rec := range m.records {
			if rec.ID == mut.ID {
				m.records = append(m.records[:i], m.records[i+1:]...)
				return nil
			}
		}
		return leave.ErrRecordNotFound

	case ActionUpdateStatus:
		for i, rec := range m.records {
			if rec.ID == mut.ID {
				m.records[i].Status = mut.Status
				return nil
			}
		}
		return leave.ErrRecordNotFound

	case ActionUpdateType:
		for i, rec := range m.records {
			if rec.ID == mut.ID {
				m.records[i].Type = mut.Type
				return nil
			}
		}
		return leave.ErrRecordNotFound
	}

	// Unknown actions are ignored, as the web app does.
	return nil
}
