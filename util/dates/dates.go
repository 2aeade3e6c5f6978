package dates

import (
	"fmt"
	"time"
)

// Layout is the textual date format used at the API boundary, both for
// parsing input and for display.
const Layout = "02/01/2006"

// Parse converts DD/MM/YYYY text into a UTC calendar date. Impossible
// calendar dates (31/02/2025) fail the same way malformed text does.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Midnight(t), nil
}

func Format(t time.Time) string { return t.Format(Layout) }

// DaysBetween counts whole days from a to b; negative when b precedes a.
func DaysBetween(a, b time.Time) int64 {
	return int64(Midnight(b).Sub(Midnight(a)) / (24 * time.Hour))
}

// Midnight drops the time component, keeping the calendar date in UTC.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
