package fixtures

import (
	"time"

	"github.com/google/uuid"
	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
)

// DemoRecords seeds the in-memory backend when no sheet endpoint is
// configured, so the dashboard is explorable before the spreadsheet is wired
// up. Dates are relative to now so every stat card has something to show.
func DemoRecords(now time.Time) []leave.Record {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	return []leave.Record{
		{
			ID:          leave.RowID(uuid.NewString()),
			Name:        "Demo User",
			Username:    "demo",
			Type:        "Personal Leave",
			Start:       day(0),
			End:         day(0),
			Status:      leave.StatusPending,
			SubmittedAt: now.Format(time.RFC3339),
		},
		{
			ID:          leave.RowID(uuid.NewString()),
			Name:        "John Doe",
			Username:    "jdoe",
			Type:        "Short Term Disability",
			Start:       day(-14),
			End:         day(-10),
			Status:      leave.StatusApproved,
			SubmittedAt: now.AddDate(0, 0, -15).Format(time.RFC3339),
		},
		{
			ID:          leave.RowID(uuid.NewString()),
			Name:        "Jane Smith",
			Username:    "jsmith",
			Type:        "Paid Family Leave",
			Start:       day(-2),
			End:         day(5),
			Status:      leave.StatusApproved,
			SubmittedAt: now.AddDate(0, 0, -7).Format(time.RFC3339),
		},
		{
			ID:          leave.RowID(uuid.NewString()),
			Name:        "Sam Rivera",
			Username:    "srivera",
			Type:        leave.TypeBereavementIneligible,
			Start:       day(10),
			End:         day(12),
			Status:      leave.StatusPending,
			SubmittedAt: now.AddDate(0, 0, -1).Format(time.RFC3339),
		},
		{
			ID:          leave.RowID(uuid.NewString()),
			Name:        "Pat Quinn",
			Username:    "pquinn",
			Type:        "Ad Hoc - Guaranteed",
			Start:       day(-30),
			End:         day(-28),
			Status:      leave.StatusRejected,
			SubmittedAt: now.AddDate(0, 0, -31).Format(time.RFC3339),
		},
	}
}
