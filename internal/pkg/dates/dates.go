package dates

import (
	"math"
	"time"
)

const dayLabel = "Jan 2, 2006"

// Parse parses a raw date value coming from the sheet. Cells hold either a
// plain calendar date or a full ISO8601 timestamp depending on how the row
// was written.
func Parse(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Duration returns the inclusive day count of a leave: a single-day leave
// with start == end counts as 1. Symmetric under swapped inputs. Returns 0
// when either side is missing or unparseable.
func Duration(start, end string) int {
	s, okS := Parse(start)
	e, okE := Parse(end)
	if !okS || !okE {
		return 0
	}
	diff := math.Abs(e.Sub(s).Hours() / 24)
	return int(math.Ceil(diff)) + 1
}

// FormatRange renders both dates as "Jan 2, 2006 - Jan 9, 2006". Empty when
// either date is missing.
func FormatRange(start, end string) string {
	s, okS := Parse(start)
	e, okE := Parse(end)
	if !okS || !okE {
		return ""
	}
	return s.Format(dayLabel) + " - " + e.Format(dayLabel)
}

// SameCalendarDay reports whether the raw timestamp falls on the same local
// calendar day as ref.
func SameCalendarDay(raw string, ref time.Time) bool {
	t, ok := Parse(raw)
	if !ok {
		return false
	}
	t = t.Local()
	ref = ref.Local()
	return t.Year() == ref.Year() && t.Month() == ref.Month() && t.Day() == ref.Day()
}

// Midnight truncates t to the start of its calendar day in local time.
func Midnight(t time.Time) time.Time {
	t = t.Local()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
