package query

import (
	"time"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-go/internal/pkg/dates"
)

// Stats computes the aggregate counters over the entire record set, never the
// filtered view. Each card carries the filter a click on it selects.
func Stats(records []leave.Record, now time.Time) leave.Stats {
	today := dates.Midnight(now)

	var s leave.Stats
	s.Total = leave.StatCard{Count: len(records), Filter: string(FilterAll)}
	s.Pending.Filter = string(FilterPending)
	s.Rejected.Filter = string(FilterRejected)
	s.Completed.Filter = string(FilterCompleted)
	s.InProgress.Filter = string(FilterInProgress)
	s.AddedToday.Filter = string(FilterAddedToday)

	for _, rec := range records {
		switch rec.Status {
		case leave.StatusPending:
			s.Pending.Count++
		case leave.StatusRejected:
			s.Rejected.Count++
		}

		completed := isCompleted(rec, today)
		if completed {
			s.Completed.Count++
		}
		if isInProgress(rec, today) {
			s.InProgress.Count++
		}
		if dates.SameCalendarDay(rec.SubmittedAt, now) {
			s.AddedToday.Count++
		}

		if rec.Status != leave.StatusRejected {
			d := dates.Duration(rec.Start, rec.End)
			s.TotalDays += d
			if completed {
				s.CompletedDays += d
			}
		}
	}

	return s
}

// CategoryBreakdown counts records per leave category over the full set.
func CategoryBreakdown(records []leave.Record) map[leave.Category]int {
	out := make(map[leave.Category]int)
	for _, rec := range records {
		out[leave.Classify(rec.Type)]++
	}
	return out
}
