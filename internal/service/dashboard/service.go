package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-go/internal/service/board"
	"github.com/leavedesk/leavedesk-go/internal/service/query"
)

// Overview is the combined payload for the main dashboard endpoint: the stat
// cards over the full set plus the current filtered/sorted table view.
type Overview struct {
	Stats      leave.Stats            `json:"stats"`
	Categories map[leave.Category]int `json:"categories"`
	Records    []leave.RecordResponse `json:"records"`
}

type Service struct {
	board *board.Service
	now   func() time.Time
}

func NewService(b *board.Service) *Service {
	return &Service{
		board: b,
		now:   time.Now,
	}
}

// Stats returns the aggregate counters over the entire record set.
func (s *Service) Stats(ctx context.Context) (leave.Stats, error) {
	if !s.board.Authenticated() {
		return leave.Stats{}, leave.ErrNotAuthenticated
	}
	return query.Stats(s.board.Records(), s.now()), nil
}

// View returns the filtered, sorted table view for the given controls.
func (s *Service) View(ctx context.Context, controls query.Controls) ([]leave.RecordResponse, error) {
	if !s.board.Authenticated() {
		return nil, leave.ErrNotAuthenticated
	}
	visible := query.Apply(s.board.Records(), controls, s.now())
	return leave.NewRecordResponses(visible), nil
}

// GetOverview assembles the dashboard sections from one snapshot. The
// sections are independent derivations, computed in parallel.
func (s *Service) GetOverview(ctx context.Context, controls query.Controls) (*Overview, error) {
	if !s.board.Authenticated() {
		return nil, leave.ErrNotAuthenticated
	}

	snapshot := s.board.Records()
	now := s.now()
	overview := &Overview{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		overview.Stats = query.Stats(snapshot, now)
		return nil
	})

	g.Go(func() error {
		overview.Categories = query.CategoryBreakdown(snapshot)
		return nil
	})

	g.Go(func() error {
		visible := query.Apply(snapshot, controls, now)
		overview.Records = leave.NewRecordResponses(visible)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return overview, nil
}
