package query

import (
	"sort"
	"strings"
	"time"

	"github.com/leavedesk/leavedesk-go/internal/domain/leave"
	"github.com/leavedesk/leavedesk-go/internal/pkg/dates"
)

// Filter is the single active table filter. The status filters match exactly;
// the derived filters compare dates at calendar-day granularity.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterPending    Filter = "pending"
	FilterApproved   Filter = "approved"
	FilterRejected   Filter = "rejected"
	FilterCompleted  Filter = "completed"
	FilterInProgress Filter = "in_progress"
	FilterAddedToday Filter = "added_today"
)

// ParseFilter maps a request value to a Filter, defaulting to FilterAll.
func ParseFilter(s string) Filter {
	switch Filter(strings.ToLower(s)) {
	case FilterPending, FilterApproved, FilterRejected,
		FilterCompleted, FilterInProgress, FilterAddedToday:
		return Filter(strings.ToLower(s))
	default:
		return FilterAll
	}
}

type SortKey string

const (
	SortByName     SortKey = "name"
	SortByDates    SortKey = "dates"
	SortByDuration SortKey = "duration"
	SortByType     SortKey = "type"
	SortByStatus   SortKey = "status"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type SortConfig struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort is newest leave first.
var DefaultSort = SortConfig{Key: SortByDates, Direction: Descending}

// ParseSort maps request values to a SortConfig, falling back to DefaultSort
// for an unknown key and ascending for an unknown direction.
func ParseSort(key, dir string) SortConfig {
	cfg := SortConfig{Key: SortKey(strings.ToLower(key)), Direction: Ascending}
	switch cfg.Key {
	case SortByName, SortByDates, SortByDuration, SortByType, SortByStatus:
	default:
		return DefaultSort
	}
	if Direction(strings.ToLower(dir)) == Descending {
		cfg.Direction = Descending
	}
	return cfg
}

// Toggle returns the sort config after a click on a column header: the same
// column flips the direction, a new column resets to ascending.
func (c SortConfig) Toggle(key SortKey) SortConfig {
	if c.Key == key && c.Direction == Ascending {
		return SortConfig{Key: key, Direction: Descending}
	}
	return SortConfig{Key: key, Direction: Ascending}
}

// Controls is the ephemeral view state driving the pipeline. It is never
// persisted to the collaborator.
type Controls struct {
	Search string
	Filter Filter
	Sort   SortConfig
}

// SelectStat rewrites the filter from a stat-card click. Selecting the active
// card again does not toggle back to all; the filter always has exactly one
// value.
func (c Controls) SelectStat(f Filter) Controls {
	c.Filter = f
	return c
}

// Apply derives the visible, ordered subset of records from the full set and
// the current controls. Pure: the input slice is not modified.
func Apply(records []leave.Record, c Controls, now time.Time) []leave.Record {
	out := make([]leave.Record, 0, len(records))

	term := strings.ToLower(c.Search)
	today := dates.Midnight(now)
	for _, rec := range records {
		if term != "" &&
			!strings.Contains(strings.ToLower(rec.Name), term) &&
			!strings.Contains(strings.ToLower(rec.Username), term) {
			continue
		}
		if !matchesFilter(rec, c.Filter, today, now) {
			continue
		}
		out = append(out, rec)
	}

	sortRecords(out, c.Sort)
	return out
}

func matchesFilter(rec leave.Record, f Filter, today time.Time, now time.Time) bool {
	switch f {
	case FilterPending:
		return rec.Status == leave.StatusPending
	case FilterApproved:
		return rec.Status == leave.StatusApproved
	case FilterRejected:
		return rec.Status == leave.StatusRejected
	case FilterCompleted:
		return isCompleted(rec, today)
	case FilterInProgress:
		return isInProgress(rec, today)
	case FilterAddedToday:
		return dates.SameCalendarDay(rec.SubmittedAt, now)
	default:
		return true
	}
}

// isCompleted: non-rejected and ended before today, day granularity.
func isCompleted(rec leave.Record, today time.Time) bool {
	if rec.Status == leave.StatusRejected {
		return false
	}
	end, ok := dates.Parse(rec.End)
	if !ok {
		return false
	}
	return dates.Midnight(end).Before(today)
}

// isInProgress: non-rejected and today within [start, end], inclusive.
func isInProgress(rec leave.Record, today time.Time) bool {
	if rec.Status == leave.StatusRejected {
		return false
	}
	start, okS := dates.Parse(rec.Start)
	end, okE := dates.Parse(rec.End)
	if !okS || !okE {
		return false
	}
	return !dates.Midnight(start).After(today) && !dates.Midnight(end).Before(today)
}

func sortRecords(records []leave.Record, cfg SortConfig) {
	sort.SliceStable(records, func(i, j int) bool {
		cmp := compareRecords(records[i], records[j], cfg.Key)
		if cfg.Direction == Descending {
			cmp = -cmp
		}
		return cmp < 0
	})
}

func compareRecords(a, b leave.Record, key SortKey) int {
	switch key {
	case SortByDates:
		// Unparseable starts sort as the zero time.
		at, _ := dates.Parse(a.Start)
		bt, _ := dates.Parse(b.Start)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	case SortByDuration:
		ad := dates.Duration(a.Start, a.End)
		bd := dates.Duration(b.Start, b.End)
		switch {
		case ad < bd:
			return -1
		case ad > bd:
			return 1
		}
		return 0
	default:
		return strings.Compare(stringKey(a, key), stringKey(b, key))
	}
}

func stringKey(rec leave.Record, key SortKey) string {
	var v string
	switch key {
	case SortByName:
		v = rec.Name
	case SortByType:
		v = rec.Type
	case SortByStatus:
		v = string(rec.Status)
	}
	return strings.ToLower(v)
}
