package l2_service

import (
	"fmt"
	"math"
	"projection/internal/domain"
	"sort"

	"github.com/montanaflynn/stats"
)

// Aggregate reduces every path to per-month mean, median, p10 and p90.
// percentiles are nearest-rank on the ascending values, zero-indexed and
// truncated, and the median takes the upper middle value for even counts.
// nothing is rounded here
func Aggregate(paths []domain.Path) ([]domain.ReportEntry, error) {
	if len(paths) == 0 || len(paths[0]) == 0 {
		return nil, domain.ErrDegenerateAggregation
	}
	numMonths := len(paths[0])
	for i, p := range paths {
		if len(p) != numMonths {
			return nil, fmt.Errorf("path %d has %d months, expected %d: %w", i, len(p), numMonths, domain.ErrDegenerateAggregation)
		}
	}

	count := len(paths)
	p10Index := percentileIndex(count, 0.1)
	medianIndex := count / 2
	p90Index := percentileIndex(count, 0.9)

	out := make([]domain.ReportEntry, numMonths)
	values := make([]float64, count)
	for t := 0; t < numMonths; t++ {
		for i, p := range paths {
			values[i] = p[t]
		}
		sort.Float64s(values)

		mean, err := stats.Mean(values)
		if err != nil {
			return nil, fmt.Errorf("failed to compute mean for month %d: %w", t, err)
		}

		out[t] = domain.ReportEntry{
			Month:  t,
			Mean:   mean,
			Median: values[medianIndex],
			P10:    values[p10Index],
			P90:    values[p90Index],
		}
	}

	return out, nil
}

func percentileIndex(count int, p float64) int {
	return int(math.Floor(float64(count) * p))
}
