package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-go/internal/pkg/sheetdb"
	"github.com/leavedesk/leavedesk-go/internal/service/board"
	"github.com/leavedesk/leavedesk-go/internal/service/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T, seed []leave.Record) *Service {
	t.Helper()
	backend := sheetdb.NewMemory("p", seed)
	b := board.NewService(backend)
	require.NoError(t, b.Login(context.Background(), "p"))
	svc := NewService(b)
	svc.now = func() time.Time { return time.Date(2024, 5, 15, 12, 0, 0, 0, time.Local) }
	return svc
}

func TestOverviewRequiresAuthentication(t *testing.T) {
	svc := NewService(board.NewService(sheetdb.NewMemory("p", nil)))

	_, err := svc.GetOverview(context.Background(), query.Controls{})
	assert.ErrorIs(t, err, leave.ErrNotAuthenticated)
	_, err = svc.Stats(context.Background())
	assert.ErrorIs(t, err, leave.ErrNotAuthenticated)
	_, err = svc.View(context.Background(), query.Controls{})
	assert.ErrorIs(t, err, leave.ErrNotAuthenticated)
}

func TestOverviewSections(t *testing.T) {
	seed := []leave.Record{
		{ID: "1", Name: "Jane Smith", Type: "Personal Leave", Start: "2024-05-01", End: "2024-05-03", Status: leave.StatusApproved},
		{ID: "2", Name: "John Doe", Type: leave.TypeBereavementIneligible, Start: "2024-05-14", End: "2024-05-16", Status: leave.StatusPending},
		{ID: "3", Name: "Ada Park", Type: "ADA Leave", Start: "2024-05-10", End: "2024-05-20", Status: leave.StatusRejected},
	}
	svc := testService(t, seed)

	overview, err := svc.GetOverview(context.Background(), query.Controls{Sort: query.DefaultSort})
	require.NoError(t, err)

	assert.Equal(t, 3, overview.Stats.Total.Count)
	assert.Equal(t, 1, overview.Stats.Rejected.Count)
	assert.Equal(t, 1, overview.Stats.Completed.Count)
	assert.Equal(t, 1, overview.Stats.InProgress.Count)

	assert.Equal(t, 1, overview.Categories[leave.CategoryPersonal])
	assert.Equal(t, 1, overview.Categories[leave.CategoryIneligible])
	assert.Equal(t, 1, overview.Categories[leave.CategoryMedical])

	require.Len(t, overview.Records, 3)
	// Default sort: newest start first.
	assert.Equal(t, leave.RowID("2"), overview.Records[0].ID)
	assert.Equal(t, 3, overview.Records[0].DurationDays)
	assert.Equal(t, "May 14, 2024 - May 16, 2024", overview.Records[0].DateRange)
	assert.Equal(t, leave.CategoryIneligible, overview.Records[0].Category)
}

func TestViewHonorsControls(t *testing.T) {
	seed := []leave.Record{
		{ID: "1", Name: "Jane Smith", Username: "jane.s", Type: "Personal Leave", Start: "2024-05-01", End: "2024-05-02", Status: leave.StatusPending},
		{ID: "2", Name: "John Doe", Username: "jsmith", Type: "Military Leave", Start: "2024-05-03", End: "2024-05-04", Status: leave.StatusApproved},
	}
	svc := testService(t, seed)

	view, err := svc.View(context.Background(), query.Controls{
		Search: "jsmith",
		Filter: query.FilterApproved,
		Sort:   query.DefaultSort,
	})
	require.NoError(t, err)
	require.Len(t, view, 1)
	assert.Equal(t, leave.RowID("2"), view[0].ID)
}
