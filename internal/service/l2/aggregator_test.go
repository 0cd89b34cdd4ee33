package l2_service

import (
	"errors"
	"math"
	"projection/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	floatComparer := cmp.Comparer(func(i, j float64) bool {
		return math.Abs(i-j) < 1e-9
	})

	t.Run("ten paths", func(t *testing.T) {
		paths := []domain.Path{}
		// month 0 holds 10..1 so sorting matters, month 1 is constant
		for i := 10; i >= 1; i-- {
			paths = append(paths, domain.Path{float64(i), 5})
		}

		out, err := Aggregate(paths)
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.ReportEntry{
					{Month: 0, Mean: 5.5, Median: 6, P10: 2, P90: 10},
					{Month: 1, Mean: 5, Median: 5, P10: 5, P90: 5},
				},
				out,
				floatComparer,
			),
		)
	})

	t.Run("odd count median is the middle value", func(t *testing.T) {
		out, err := Aggregate([]domain.Path{{3}, {1}, {2}})
		require.NoError(t, err)
		require.Equal(t, 2.0, out[0].Median)
		require.Equal(t, 1.0, out[0].P10)
		require.Equal(t, 3.0, out[0].P90)
		require.InDelta(t, 2.0, out[0].Mean, 1e-12)
	})

	t.Run("single path collapses every statistic", func(t *testing.T) {
		out, err := Aggregate([]domain.Path{{100, 200.4, 300.6}})
		require.NoError(t, err)
		require.Len(t, out, 3)
		for i, e := range out {
			require.Equal(t, i, e.Month)
			require.Equal(t, e.Mean, e.Median)
			require.Equal(t, e.Median, e.P10)
			require.Equal(t, e.P10, e.P90)
		}
		require.Equal(t, 200.4, out[1].Mean)
	})

	t.Run("order statistics stay ordered", func(t *testing.T) {
		paths := []domain.Path{}
		for i := 0; i < 257; i++ {
			v := float64((i * 7919) % 257)
			paths = append(paths, domain.Path{v, v * 2, 1000 - v})
		}
		out, err := Aggregate(paths)
		require.NoError(t, err)
		for _, e := range out {
			require.LessOrEqual(t, e.P10, e.Median)
			require.LessOrEqual(t, e.Median, e.P90)
		}
	})

	t.Run("does not reorder input paths", func(t *testing.T) {
		paths := []domain.Path{{3}, {1}, {2}}
		_, err := Aggregate(paths)
		require.NoError(t, err)
		require.Equal(t, []domain.Path{{3}, {1}, {2}}, paths)
	})

	t.Run("degenerate input", func(t *testing.T) {
		_, err := Aggregate(nil)
		require.True(t, errors.Is(err, domain.ErrDegenerateAggregation))

		_, err = Aggregate([]domain.Path{{}})
		require.True(t, errors.Is(err, domain.ErrDegenerateAggregation))

		_, err = Aggregate([]domain.Path{{1, 2}, {1}})
		require.True(t, errors.Is(err, domain.ErrDegenerateAggregation))
	})
}
