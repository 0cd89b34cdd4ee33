package domain

import (
	"fmt"
	"math"
)

// AssetAllocation describes one asset in the target portfolio. Cagr and
// Volatility are annual figures, Allocation is a percentage weight (0-100)
type AssetAllocation struct {
	Symbol     string  `json:"symbol,omitempty"`
	Cagr       float64 `json:"cagr"`
	Volatility float64 `json:"volatility"`
	Allocation float64 `json:"allocation"`
}

// Weight is the raw blend weight. weights are not renormalized, so
// allocations summing to 80 leave 20% of the balance flat
func (a AssetAllocation) Weight() float64 {
	return a.Allocation / 100
}

func (a AssetAllocation) validate() error {
	for _, f := range []struct {
		name  string
		value float64
	}{
		{"cagr", a.Cagr},
		{"volatility", a.Volatility},
		{"allocation", a.Allocation},
	} {
		if !isFinite(f.value) {
			return fmt.Errorf("%s must be a finite number", f.name)
		}
	}
	if a.Volatility < 0 {
		return fmt.Errorf("volatility cannot be negative, got %f", a.Volatility)
	}
	if a.Allocation < 0 || a.Allocation > 100 {
		return fmt.Errorf("allocation must be between 0 and 100, got %f", a.Allocation)
	}
	return nil
}

func ValidateAllocations(allocations []AssetAllocation) error {
	if len(allocations) == 0 {
		return NewInvalidInputError("no allocations provided")
	}
	for i, a := range allocations {
		if err := a.validate(); err != nil {
			return NewInvalidInputError(fmt.Sprintf("invalid allocation at index %d: %s", i, err.Error()))
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
