package l3_service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"projection/internal/domain"
	"projection/internal/logger"
	l1_service "projection/internal/service/l1"
	l2_service "projection/internal/service/l2"
	"projection/internal/util"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

type SimulationService interface {
	Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationReport, error)
}

// SamplerFactory builds the return sampler for one path. it is called from
// worker goroutines and must not hand out shared generators
type SamplerFactory func(seed uint64, pathIndex int) l1_service.ReturnSampler

func NewSeededSamplerFactory() SamplerFactory {
	return func(seed uint64, pathIndex int) l1_service.ReturnSampler {
		return l1_service.NewSeededReturnSampler(seed, uint64(pathIndex))
	}
}

type simulationServiceHandler struct {
	Config     util.SimulationConfig
	NewSampler SamplerFactory
}

func NewSimulationService(cfg util.SimulationConfig) SimulationService {
	return simulationServiceHandler{
		Config:     cfg,
		NewSampler: NewSeededSamplerFactory(),
	}
}

// Simulate validates the input, runs every path on a worker pool and
// aggregates them into the per-month report
func (h simulationServiceHandler) Simulate(ctx context.Context, in domain.SimulationInput) (*domain.SimulationReport, error) {
	log := logger.FromContext(ctx)
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()

	runID := uuid.NewString()

	_, endSpan := profile.StartNewSpan("validate input")
	if err := in.Validate(h.Config.MaxPathMonths); err != nil {
		return nil, err
	}
	startDate, firstDepositDate, err := h.resolveStartDate(in)
	if err != nil {
		return nil, err
	}
	endSpan()

	seed := rand.Uint64()
	if in.Seed != nil {
		seed = *in.Seed
	}

	if timeout := h.Config.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	simulator := l2_service.NewPathSimulator(
		in.Allocations,
		l1_service.NewSchedule(in.OneTimeDeposits, in.MonthlyChanges),
		startDate,
		in.TotalMonths(),
		firstDepositDate,
	)

	_, endSpan = profile.StartNewSpan("simulate paths")
	paths, err := h.runPaths(ctx, simulator, in.Cycles, seed)
	if err != nil {
		return nil, fmt.Errorf("failed to simulate %d paths: %w", in.Cycles, err)
	}
	endSpan()

	_, endSpan = profile.StartNewSpan("aggregate paths")
	entries, err := l2_service.Aggregate(paths)
	if err != nil {
		return nil, domain.InternalFailureError{Cause: fmt.Errorf("failed to aggregate paths: %w", err)}
	}
	dates := simulator.Dates()
	for i := range entries {
		entries[i].Date = dates[i]
	}
	endSpan()

	log.Infow(
		"simulation complete",
		"runID", runID,
		"cycles", in.Cycles,
		"years", in.Years,
		"assets", len(in.Allocations),
		"seed", seed,
		"startDate", util.FormatDate(startDate),
		"elapsedMs", profile.ElapsedBySpan(),
	)

	return &domain.SimulationReport{
		RunID:     runID,
		StartDate: startDate,
		Cycles:    in.Cycles,
		Years:     in.Years,
		Entries:   entries,
	}, nil
}

// resolveStartDate picks the explicit start date if given, otherwise the
// earliest deposit, otherwise the configured anchor. growth is gated on the
// earliest deposit either way
func (h simulationServiceHandler) resolveStartDate(in domain.SimulationInput) (startDate time.Time, firstDepositDate time.Time, err error) {
	anchor, err := h.Config.Anchor()
	if err != nil {
		return time.Time{}, time.Time{}, domain.InternalFailureError{Cause: fmt.Errorf("invalid anchor date: %w", err)}
	}

	earliest := domain.EarliestDepositDate(in.OneTimeDeposits, in.MonthlyChanges)
	switch {
	case in.StartDate != nil:
		startDate = *in.StartDate
	case earliest != nil:
		startDate = *earliest
	default:
		startDate = anchor
	}

	firstDepositDate = startDate
	if earliest != nil {
		firstDepositDate = *earliest
	}

	return startDate, firstDepositDate, nil
}

func (h simulationServiceHandler) numWorkers(cycles int) int {
	n := h.Config.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if n > cycles {
		n = cycles
	}
	return n
}

// runPaths fans path indices out to a fixed pool of workers. results land
// in their own slot, so aggregation never depends on completion order. the
// first failing path cancels the rest
func (h simulationServiceHandler) runPaths(ctx context.Context, simulator *l2_service.PathSimulator, cycles int, seed uint64) ([]domain.Path, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputCh := make(chan int, cycles)
	for i := 0; i < cycles; i++ {
		inputCh <- i
	}
	close(inputCh)

	paths := make([]domain.Path, cycles)
	var (
		wg        sync.WaitGroup
		errOnce   sync.Once
		firstErr  error
		completed atomic.Int64
	)

	numGoroutines := h.numWorkers(cycles)
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case pathIndex, ok := <-inputCh:
					if !ok || ctx.Err() != nil {
						return
					}
					path, err := h.simulatePath(simulator, seed, pathIndex)
					if err != nil {
						errOnce.Do(func() {
							firstErr = err
							cancel()
						})
						return
					}
					paths[pathIndex] = path
					completed.Add(1)
				}
			}
		}()
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if int(completed.Load()) != cycles {
		err := ctx.Err()
		if err == nil {
			err = errors.New("workers exited early")
		}
		return nil, fmt.Errorf("simulation stopped after %d of %d paths: %w", completed.Load(), cycles, err)
	}

	return paths, nil
}

// simulatePath turns a panic inside one path into an error, so a single
// bad path cannot take the process down
func (h simulationServiceHandler) simulatePath(simulator *l2_service.PathSimulator, seed uint64, pathIndex int) (path domain.Path, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = domain.InternalFailureError{Cause: fmt.Errorf("path %d panicked: %v", pathIndex, r)}
		}
	}()

	return simulator.Simulate(h.NewSampler(seed, pathIndex)), nil
}
