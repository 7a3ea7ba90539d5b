package leave

import (
	"bytes"
	"encoding/json"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ValidStatus reports whether s is one of the three known statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// RowID is the collaborator-assigned record identifier. The sheet returns it
// as a JSON number for script-generated rows and as a string for imported
// ones, so it is normalized to a string on decode.
type RowID string

func (id *RowID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RowID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = RowID(n.String())
	return nil
}

// Record is one leave request row as stored in the sheet. Dates stay in their
// raw wire form; they are parsed at the point of comparison and unparseable
// values degrade to zero-duration / never-matching.
type Record struct {
	ID          RowID  `json:"id"`
	Name        string `json:"name"`
	Username    string `json:"username,omitempty"`
	Type        string `json:"type"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Status      Status `json:"status"`
	Notes       string `json:"notes,omitempty"`
	SubmittedAt string `json:"submittedAt,omitempty"`
}
