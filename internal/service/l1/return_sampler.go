package l1_service

//go:generate mockgen -source=return_sampler.go -destination=mocks/mock_return_sampler.go

import (
	"math"
	"math/rand/v2"
	"projection/internal/domain"
)

// ReturnSampler draws the blended portfolio return for one month
type ReturnSampler interface {
	SampleBlendedReturn(allocations []domain.AssetAllocation) float64
}

type normalReturnSampler struct {
	rng *rand.Rand
}

// NewNormalReturnSampler draws every asset's return independently from a
// normal distribution. rng must not be shared with another goroutine
func NewNormalReturnSampler(rng *rand.Rand) ReturnSampler {
	return normalReturnSampler{
		rng: rng,
	}
}

// NewSeededReturnSampler gives path number stream its own generator, so a
// fixed seed reproduces every path no matter which worker runs it
func NewSeededReturnSampler(seed uint64, stream uint64) ReturnSampler {
	return NewNormalReturnSampler(rand.New(rand.NewPCG(seed, stream)))
}

func (h normalReturnSampler) SampleBlendedReturn(allocations []domain.AssetAllocation) float64 {
	blended := 0.0
	for _, a := range allocations {
		blended += MonthlyReturn(a, StandardNormal(h.rng)) * a.Weight()
	}
	return blended
}

var sqrt12 = math.Sqrt(12)

// MonthlyReturn converts annual mean and stdev to a monthly draw, variance
// scaling linearly with time
func MonthlyReturn(a domain.AssetAllocation, z float64) float64 {
	return a.Cagr/12 + z*(a.Volatility/sqrt12)
}

// StandardNormal is a Box-Muller draw. uniform draws of exactly 0 are
// resampled since log(0) is undefined
func StandardNormal(rng *rand.Rand) float64 {
	u := 0.0
	for u == 0 {
		u = rng.Float64()
	}
	v := 0.0
	for v == 0 {
		v = rng.Float64()
	}
	return math.Sqrt(-2.0*math.Log(u)) * math.Cos(2.0*math.Pi*v)
}
