package sheetdb

import (
	"context"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
)

// Action is the mutation verb understood by the sheet web app.
type Action string

const (
	ActionAdd          Action = "add"
	ActionDelete       Action = "delete"
	ActionUpdateStatus Action = "updateStatus"
	ActionUpdateType   Action = "updateType"
)

// Mutation is a single write request. Fields beyond Action are populated per
// verb; the wire body is flat JSON with the passcode merged in by the backend.
type Mutation struct {
	Action      Action       `json:"action"`
	ID          leave.RowID  `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	Username    string       `json:"username,omitempty"`
	Type        string       `json:"type,omitempty"`
	Start       string       `json:"start,omitempty"`
	End         string       `json:"end,omitempty"`
	Status      leave.Status `json:"status,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	SubmittedAt string       `json:"submittedAt,omitempty"`
}

// Backend is the persistence collaborator. Every call is independently
// authenticated with the shared passcode; there is no session concept.
//
// Implementations:
//   - Client: the deployed spreadsheet web-app endpoint over HTTP
//   - Memory: in-memory store for demo mode and tests
type Backend interface {
	// List fetches the full record set. Returns leave.ErrIncorrectPasscode
	// when the collaborator reports an authentication failure.
	List(ctx context.Context, passcode string) ([]leave.Record, error)

	// Mutate submits one write. The response content is not interpreted;
	// callers re-observe state with a follow-up List.
	Mutate(ctx context.Context, passcode string, m Mutation) error
}
