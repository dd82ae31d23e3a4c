package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/climsim/internal/ebm"
)

// Solver drives a stepper across a time span. When the config asks for
// adaptive stepping and the stepper carries an embedded error estimate,
// steps are accepted or rejected against the tolerance; otherwise the
// grid is fixed. Either way the returned trajectory starts exactly at
// cfg.Start and ends exactly at cfg.End.
type Solver struct {
	stepper  ebm.Stepper
	metrics  []ebm.Metric
	safety   float64
	minScale float64
	maxScale float64
}

func New(stepper ebm.Stepper) *Solver {
	return &Solver{
		stepper:  stepper,
		metrics:  make([]ebm.Metric, 0),
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

func (s *Solver) AddMetric(m ebm.Metric) { s.metrics = append(s.metrics, m) }

func (s *Solver) Run(ctx context.Context, sys ebm.System, s0 ebm.State, cfg ebm.Config) (*ebm.Result, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	if embedded, ok := s.stepper.(ebm.EmbeddedStepper); ok && cfg.Adaptive {
		return s.runAdaptive(ctx, sys, embedded, s0, cfg)
	}
	return s.runFixed(ctx, sys, s0, cfg)
}

func (s *Solver) runAdaptive(ctx context.Context, sys ebm.System, stepper ebm.EmbeddedStepper, s0 ebm.State, cfg ebm.Config) (*ebm.Result, error) {
	result := newResult(cfg)
	stages := stepper.Info().Stages

	cur := s0
	t := cfg.Start
	dt := cfg.Dt

	record(result, cur, t)
	s.observe(cur, t)

	for t < cfg.End {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if cfg.MaxSteps > 0 && result.StepsTaken+result.StepsRejected >= cfg.MaxSteps {
			return result, &ebm.SimError{Step: result.StepsTaken, Time: t, Wrapped: ebm.ErrTooManySteps}
		}

		if cfg.MaxDt > 0 && dt > cfg.MaxDt {
			dt = cfg.MaxDt
		}
		// fold accumulated float slivers into the final step
		last := false
		if rem := cfg.End - t; rem <= dt*(1+1e-9) {
			dt = rem
			last = true
		}

		next, errEst := stepper.AttemptStep(sys, cur, t, dt)
		result.Evaluations += stages

		ratio := errEst / cfg.Tolerance
		if math.IsNaN(errEst) || math.IsInf(errEst, 0) {
			// poisoned stages always reject, shrinking until underflow
			ratio = math.Inf(1)
		}

		if ratio > 1 {
			result.StepsRejected++
			dt *= math.Max(s.minScale, s.safety*math.Pow(ratio, -0.25))
			if dt < cfg.MinDt {
				return result, &ebm.SimError{Step: result.StepsTaken, Time: t, Wrapped: ebm.ErrStepUnderflow}
			}
			continue
		}

		if last {
			t = cfg.End
		} else {
			t += dt
		}
		cur = next
		result.StepsTaken++

		if cfg.ValidateState && !cur.IsValid() {
			return result, &ebm.SimError{Step: result.StepsTaken, Time: t, Wrapped: ebm.ErrInvalidState}
		}

		record(result, cur, t)
		s.observe(cur, t)

		if ratio > 0 {
			dt *= math.Min(s.maxScale, s.safety*math.Pow(ratio, -0.2))
		} else {
			dt *= s.maxScale
		}
	}

	s.finish(result)
	return result, nil
}

func (s *Solver) runFixed(ctx context.Context, sys ebm.System, s0 ebm.State, cfg ebm.Config) (*ebm.Result, error) {
	result := newResult(cfg)
	stages := s.stepper.Info().Stages

	cur := s0
	t := cfg.Start

	record(result, cur, t)
	s.observe(cur, t)

	for t < cfg.End {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		if cfg.MaxSteps > 0 && result.StepsTaken >= cfg.MaxSteps {
			return result, &ebm.SimError{Step: result.StepsTaken, Time: t, Wrapped: ebm.ErrTooManySteps}
		}

		dt := cfg.Dt
		last := false
		if rem := cfg.End - t; rem <= dt*(1+1e-9) {
			dt = rem
			last = true
		}

		cur = s.stepper.Step(sys, cur, t, dt)
		if last {
			t = cfg.End
		} else {
			t += dt
		}
		result.Evaluations += stages
		result.StepsTaken++

		if cfg.ValidateState && !cur.IsValid() {
			return result, &ebm.SimError{Step: result.StepsTaken, Time: t, Wrapped: ebm.ErrInvalidState}
		}

		record(result, cur, t)
		s.observe(cur, t)
	}

	s.finish(result)
	return result, nil
}

func (s *Solver) validateConfig(cfg ebm.Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.End <= cfg.Start {
		return fmt.Errorf("time span must be increasing, got [%f, %f]", cfg.Start, cfg.End)
	}
	if cfg.Adaptive && cfg.Tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive for adaptive stepping")
	}
	if cfg.Adaptive && cfg.MinDt <= 0 {
		return fmt.Errorf("min dt must be positive for adaptive stepping")
	}
	return nil
}

func (s *Solver) observe(st ebm.State, t float64) {
	for _, m := range s.metrics {
		m.Observe(st, t)
	}
}

func (s *Solver) finish(result *ebm.Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func newResult(cfg ebm.Config) *ebm.Result {
	// capacity is a hint; append grows past it for adaptive runs
	capacity := int((cfg.End-cfg.Start)/cfg.Dt) + 1
	if capacity < 16 {
		capacity = 16
	}
	if capacity > 1<<20 {
		capacity = 1 << 20
	}
	return &ebm.Result{
		Times:   make([]float64, 0, capacity),
		States:  make([]ebm.State, 0, capacity),
		Metrics: make(map[string]float64),
	}
}

func record(r *ebm.Result, s ebm.State, t float64) {
	r.States = append(r.States, s)
	r.Times = append(r.Times, t)
}
