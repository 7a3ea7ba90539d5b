package leave

import "github.com/leavedesk/leavedesk-go/internal/pkg/dates"

// NewRecordResponse enriches a record with the derived fields the table view
// renders.
func NewRecordResponse(rec Record) RecordResponse {
	return RecordResponse{
		Record:       rec,
		DurationDays: dates.Duration(rec.Start, rec.End),
		DateRange:    dates.FormatRange(rec.Start, rec.End),
		Category:     Classify(rec.Type),
	}
}

// NewRecordResponses maps a record slice to its view form, preserving order.
func NewRecordResponses(records []Record) []RecordResponse {
	out := make([]RecordResponse, len(records))
	for i, rec := range records {
		out[i] = NewRecordResponse(rec)
	}
	return out
}
