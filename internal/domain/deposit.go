package domain

import (
	"time"
)

// Deposit is a one-time cash contribution, applied on the exact
// calendar day it is dated
type Deposit struct {
	Date   time.Time
	Amount float64
}

// MonthlyChange sets the recurring monthly contribution from Date
// onward, until a later change supersedes it
type MonthlyChange struct {
	Date   time.Time
	Amount float64
}

// EarliestDepositDate returns the first date across both schedules, or
// nil if neither has entries
func EarliestDepositDate(oneTime []Deposit, monthly []MonthlyChange) *time.Time {
	var earliest *time.Time
	for _, d := range oneTime {
		date := d.Date
		if earliest == nil || date.Before(*earliest) {
			earliest = &date
		}
	}
	for _, c := range monthly {
		date := c.Date
		if earliest == nil || date.Before(*earliest) {
			earliest = &date
		}
	}
	return earliest
}
