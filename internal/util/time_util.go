package util

import (
	"fmt"
	"time"
)

const layout = "2006-01-02"

func NewDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func DateLte(t1, t2 time.Time) bool {
	return t1.Before(t2) || t1.Format(layout) == t2.Format(layout)
}

// ParseDate parses YYYY-MM-DD into a UTC midnight date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(layout)
}

// AddMonths steps whole calendar months from start. the day is clamped to
// the end of the target month, so Jan 31 + 1 month is Feb 28 (or 29) and
// every calendar month appears exactly once
func AddMonths(start time.Time, months int) time.Time {
	y, m, d := start.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, start.Location())
	if last := DaysInMonth(firstOfTarget); d > last {
		d = last
	}
	hh, mm, ss := start.Clock()
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, hh, mm, ss, start.Nanosecond(), start.Location())
}

func DaysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func TimePointer(t time.Time) *time.Time {
	return &t
}
