package l1_service

import (
	"projection/internal/domain"
	"sort"
	"time"
)

// Schedule resolves deposit cash flows for simulation dates. it is
// immutable after construction, so one Schedule is shared read-only by
// every path in a run
type Schedule struct {
	oneTimeByDay map[int64]float64
	// sorted ascending by day, same-day events keep input order
	changes    []domain.MonthlyChange
	changeDays []int64
}

// dayKey numbers calendar days so comparisons ignore time of day and zone
func dayKey(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func NewSchedule(oneTime []domain.Deposit, changes []domain.MonthlyChange) *Schedule {
	oneTimeByDay := map[int64]float64{}
	for _, d := range oneTime {
		oneTimeByDay[dayKey(d.Date)] += d.Amount
	}

	sorted := make([]domain.MonthlyChange, len(changes))
	copy(sorted, changes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return dayKey(sorted[i].Date) < dayKey(sorted[j].Date)
	})
	changeDays := make([]int64, len(sorted))
	for i, c := range sorted {
		changeDays[i] = dayKey(c.Date)
	}

	return &Schedule{
		oneTimeByDay: oneTimeByDay,
		changes:      sorted,
		changeDays:   changeDays,
	}
}

// ResolveAt scans every monthly change. the active recurring amount is the
// latest change dated on or before date, or zero if there is none
func (s *Schedule) ResolveAt(date time.Time) (monthlyAmount float64, oneTimeAmount float64) {
	day := dayKey(date)
	for i, c := range s.changes {
		if s.changeDays[i] > day {
			break
		}
		monthlyAmount = c.Amount
	}
	return monthlyAmount, s.oneTimeByDay[day]
}

// Cursor returns fresh per-path resolution state over this schedule
func (s *Schedule) Cursor() *ScheduleCursor {
	return &ScheduleCursor{schedule: s}
}

// ScheduleCursor resolves an increasing sequence of dates by advancing a
// pointer through the sorted changes. it belongs to a single path
type ScheduleCursor struct {
	schedule *Schedule
	next     int
	current  float64
	lastDay  int64
	started  bool
}

func (c *ScheduleCursor) Resolve(date time.Time) (monthlyAmount float64, oneTimeAmount float64) {
	day := dayKey(date)
	if c.started && day < c.lastDay {
		// went back in time, pointer state is no longer valid
		c.Reset()
	}
	s := c.schedule
	for c.next < len(s.changes) && s.changeDays[c.next] <= day {
		c.current = s.changes[c.next].Amount
		c.next++
	}
	c.lastDay = day
	c.started = true

	return c.current, s.oneTimeByDay[day]
}

func (c *ScheduleCursor) Reset() {
	c.next = 0
	c.current = 0
	c.lastDay = 0
	c.started = false
}
