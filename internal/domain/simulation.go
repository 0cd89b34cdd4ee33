package domain

import (
	"fmt"
	"time"
)

const (
	DefaultCycles = 15000
	DefaultYears  = 15

	// MaxYears keeps years*12 and every per-month allocation bounded
	MaxYears = 1000
)

type SimulationInput struct {
	Allocations     []AssetAllocation
	OneTimeDeposits []Deposit
	MonthlyChanges  []MonthlyChange
	Cycles          int
	Years           int

	// StartDate overrides the default of starting on the earliest deposit
	StartDate *time.Time
	// Seed makes the run reproducible. nil draws a fresh seed
	Seed *uint64
}

func (in SimulationInput) TotalMonths() int {
	return in.Years * 12
}

// Validate rejects input that cannot produce a meaningful projection.
// maxPathMonths bounds cycles * (totalMonths + 1); zero disables the bound
func (in SimulationInput) Validate(maxPathMonths int64) error {
	if err := ValidateAllocations(in.Allocations); err != nil {
		return err
	}
	if len(in.OneTimeDeposits) == 0 && len(in.MonthlyChanges) == 0 {
		return NewInvalidInputError("no deposits provided")
	}
	for i, d := range in.OneTimeDeposits {
		if !isFinite(d.Amount) {
			return NewInvalidInputError(fmt.Sprintf("oneTimeDeposits[%d].amount must be a finite number", i))
		}
		if in.StartDate != nil && d.Date.Before(*in.StartDate) {
			return NewInvalidInputError(fmt.Sprintf(
				"oneTimeDeposits[%d] is dated before the start date and would never be applied", i,
			))
		}
	}
	for i, c := range in.MonthlyChanges {
		if !isFinite(c.Amount) {
			return NewInvalidInputError(fmt.Sprintf("monthlyChanges[%d].amount must be a finite number", i))
		}
	}
	if in.Cycles <= 0 {
		return NewInvalidInputError(fmt.Sprintf("cycles must be positive, got %d", in.Cycles))
	}
	if in.Years <= 0 {
		return NewInvalidInputError(fmt.Sprintf("years must be positive, got %d", in.Years))
	}
	if in.Years > MaxYears {
		return NewInvalidInputError(fmt.Sprintf("years must be at most %d, got %d", MaxYears, in.Years))
	}
	// compared by division so huge cycle counts cannot overflow
	if maxPathMonths > 0 && int64(in.Cycles) > maxPathMonths/int64(in.TotalMonths()+1) {
		return NewInvalidInputError(fmt.Sprintf(
			"simulation too large: %d cycles over %d years exceeds limit of %d path-months",
			in.Cycles, in.Years, maxPathMonths,
		))
	}
	return nil
}

// Path holds one trajectory of balances, index 0 through totalMonths
type Path []float64

type ReportEntry struct {
	Month  int
	Date   time.Time
	Mean   float64
	Median float64
	P10    float64
	P90    float64
}

type SimulationReport struct {
	RunID     string
	StartDate time.Time
	Cycles    int
	Years     int
	Entries   []ReportEntry
}
