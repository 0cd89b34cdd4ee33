package l2_service

import (
	"projection/internal/domain"
	l1_service "projection/internal/service/l1"
	"projection/internal/util"
	"time"
)

// PathSimulator walks one trajectory at a time over a fixed horizon. it
// holds no per-path state, so a single instance serves every worker
type PathSimulator struct {
	allocations      []domain.AssetAllocation
	schedule         *l1_service.Schedule
	dates            []time.Time
	firstDepositDate time.Time
}

func NewPathSimulator(
	allocations []domain.AssetAllocation,
	schedule *l1_service.Schedule,
	startDate time.Time,
	totalMonths int,
	firstDepositDate time.Time,
) *PathSimulator {
	dates := make([]time.Time, totalMonths+1)
	for m := range dates {
		dates[m] = util.AddMonths(startDate, m)
	}

	return &PathSimulator{
		allocations:      allocations,
		schedule:         schedule,
		dates:            dates,
		firstDepositDate: firstDepositDate,
	}
}

// Dates are the calendar dates of months 0 through totalMonths
func (p *PathSimulator) Dates() []time.Time {
	return p.dates
}

// Simulate produces one path. each month resolves the schedule, applies
// deposits and then compounds by one blended return draw. the recurring
// deposit and growth only kick in once the first deposit date is reached,
// and a non-positive balance is never compounded
func (p *PathSimulator) Simulate(sampler l1_service.ReturnSampler) domain.Path {
	cursor := p.schedule.Cursor()
	path := make(domain.Path, len(p.dates))

	balance := 0.0
	depositsStarted := false
	for m, date := range p.dates {
		monthlyAmount, oneTimeAmount := cursor.Resolve(date)

		balance += oneTimeAmount
		if !depositsStarted && !date.Before(p.firstDepositDate) {
			depositsStarted = true
		}
		if depositsStarted {
			balance += monthlyAmount
			if balance > 0 {
				balance *= 1 + sampler.SampleBlendedReturn(p.allocations)
			}
		}

		path[m] = balance
	}

	return path
}
