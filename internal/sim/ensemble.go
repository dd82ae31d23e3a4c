package sim

import (
	"context"
	"sync"

	"github.com/san-kum/climsim/internal/ebm"
)

// Ensemble runs independent stochastic realizations of one scenario.
// Members share nothing: each goroutine builds its own system from its
// seed and its own stepper, so noise streams never interleave.
type Ensemble struct {
	newSystem  func(seed int64) ebm.System
	newStepper func() ebm.Stepper
	runs       int
	seedStart  int64
}

func NewEnsemble(newSystem func(seed int64) ebm.System, newStepper func() ebm.Stepper, runs int, seedStart int64) *Ensemble {
	return &Ensemble{
		newSystem:  newSystem,
		newStepper: newStepper,
		runs:       runs,
		seedStart:  seedStart,
	}
}

func (e *Ensemble) Run(ctx context.Context, s0 ebm.State, cfg ebm.Config) ([]*ebm.Result, error) {
	results := make([]*ebm.Result, e.runs)
	errs := make([]error, e.runs)

	var wg sync.WaitGroup
	for i := 0; i < e.runs; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			solver := New(e.newStepper())
			sys := e.newSystem(e.seedStart + int64(idx))
			results[idx], errs[idx] = solver.Run(ctx, sys, s0, cfg)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
