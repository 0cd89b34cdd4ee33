package l2_service

import (
	"projection/internal/domain"
	l1_service "projection/internal/service/l1"
	mock_l1_service "projection/internal/service/l1/mocks"
	"projection/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPathSimulator_Simulate(t *testing.T) {
	allocations := []domain.AssetAllocation{
		{Cagr: 0.07, Volatility: 0.15, Allocation: 100},
	}

	t.Run("deposits then compounds every month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sampler := mock_l1_service.NewMockReturnSampler(ctrl)
		sampler.EXPECT().SampleBlendedReturn(allocations).Return(0.01).Times(4)

		schedule := l1_service.NewSchedule(
			[]domain.Deposit{{Date: util.NewDate(2025, 1, 1), Amount: 1000}},
			[]domain.MonthlyChange{{Date: util.NewDate(2025, 3, 1), Amount: 100}},
		)
		p := NewPathSimulator(allocations, schedule, util.NewDate(2025, 1, 1), 3, util.NewDate(2025, 1, 1))

		path := p.Simulate(sampler)

		require.Len(t, path, 4)
		require.InDelta(t, 1010, path[0], 1e-9)
		require.InDelta(t, 1020.1, path[1], 1e-9)
		require.InDelta(t, 1131.301, path[2], 1e-9)
		require.InDelta(t, 1243.61401, path[3], 1e-9)
	})

	t.Run("zero growth reproduces plain cash accumulation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sampler := mock_l1_service.NewMockReturnSampler(ctrl)
		sampler.EXPECT().SampleBlendedReturn(gomock.Any()).Return(0.0).AnyTimes()

		schedule := l1_service.NewSchedule(
			[]domain.Deposit{
				{Date: util.NewDate(2025, 1, 1), Amount: 1000},
				{Date: util.NewDate(2025, 7, 1), Amount: 500},
			},
			[]domain.MonthlyChange{
				{Date: util.NewDate(2025, 1, 1), Amount: 100},
				{Date: util.NewDate(2025, 10, 1), Amount: 200},
			},
		)
		p := NewPathSimulator(allocations, schedule, util.NewDate(2025, 1, 1), 12, util.NewDate(2025, 1, 1))

		path := p.Simulate(sampler)

		expected := domain.Path{}
		balance := 0.0
		for m := 0; m <= 12; m++ {
			if m == 0 {
				balance += 1000
			}
			if m == 6 {
				balance += 500
			}
			if m < 9 {
				balance += 100
			} else {
				balance += 200
			}
			expected = append(expected, balance)
		}
		require.Equal(t, expected, path)
	})

	t.Run("nothing grows before the first deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sampler := mock_l1_service.NewMockReturnSampler(ctrl)
		sampler.EXPECT().SampleBlendedReturn(gomock.Any()).Return(0.5).Times(2)

		schedule := l1_service.NewSchedule(
			[]domain.Deposit{{Date: util.NewDate(2025, 1, 1), Amount: 500}},
			[]domain.MonthlyChange{{Date: util.NewDate(2025, 1, 1), Amount: 200}},
		)
		p := NewPathSimulator(allocations, schedule, util.NewDate(2024, 11, 1), 3, util.NewDate(2025, 1, 1))

		path := p.Simulate(sampler)

		require.Equal(t, domain.Path{0, 0, 1050, 1875}, path)
	})

	t.Run("non-positive balances are not compounded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sampler := mock_l1_service.NewMockReturnSampler(ctrl)

		schedule := l1_service.NewSchedule(
			[]domain.Deposit{{Date: util.NewDate(2025, 1, 1), Amount: -100}},
			[]domain.MonthlyChange{{Date: util.NewDate(2025, 1, 1), Amount: 0}},
		)
		p := NewPathSimulator(allocations, schedule, util.NewDate(2025, 1, 1), 2, util.NewDate(2025, 1, 1))

		path := p.Simulate(sampler)

		require.Equal(t, domain.Path{-100, -100, -100}, path)
	})

	t.Run("flat asset keeps a single deposit constant", func(t *testing.T) {
		flat := []domain.AssetAllocation{{Cagr: 0, Volatility: 0, Allocation: 100}}
		schedule := l1_service.NewSchedule(
			[]domain.Deposit{{Date: util.NewDate(2025, 1, 1), Amount: 1000}},
			nil,
		)
		p := NewPathSimulator(flat, schedule, util.NewDate(2025, 1, 1), 12, util.NewDate(2025, 1, 1))

		path := p.Simulate(l1_service.NewSeededReturnSampler(1, 0))

		require.Len(t, path, 13)
		for _, v := range path {
			require.Equal(t, 1000.0, v)
		}
	})

	t.Run("dates step by calendar month", func(t *testing.T) {
		schedule := l1_service.NewSchedule(nil, nil)
		p := NewPathSimulator(allocations, schedule, util.NewDate(2025, 1, 1), 24, util.NewDate(2025, 1, 1))

		dates := p.Dates()
		require.Len(t, dates, 25)
		require.Equal(t, util.NewDate(2025, 1, 1), dates[0])
		require.Equal(t, util.NewDate(2025, 12, 1), dates[11])
		require.Equal(t, util.NewDate(2027, 1, 1), dates[24])
	})

	t.Run("month end start keeps every month and deposit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sampler := mock_l1_service.NewMockReturnSampler(ctrl)
		sampler.EXPECT().SampleBlendedReturn(gomock.Any()).Return(0.0).AnyTimes()

		schedule := l1_service.NewSchedule(
			[]domain.Deposit{
				{Date: util.NewDate(2024, 1, 31), Amount: 1000},
				{Date: util.NewDate(2024, 2, 29), Amount: 500},
				{Date: util.NewDate(2024, 4, 30), Amount: 700},
			},
			nil,
		)
		p := NewPathSimulator(allocations, schedule, util.NewDate(2024, 1, 31), 4, util.NewDate(2024, 1, 31))

		require.Equal(
			t,
			[]time.Time{
				util.NewDate(2024, 1, 31),
				util.NewDate(2024, 2, 29),
				util.NewDate(2024, 3, 31),
				util.NewDate(2024, 4, 30),
				util.NewDate(2024, 5, 31),
			},
			p.Dates(),
		)
		require.Equal(t, domain.Path{1000, 1500, 1500, 2200, 2200}, p.Simulate(sampler))
	})
}
