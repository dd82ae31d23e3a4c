package ebm

import "gonum.org/v1/gonum/floats"

// Result is the trajectory produced by one integration run. Times and
// States are parallel slices on the solver-chosen grid; the solver owns the
// buffers it appends to.
type Result struct {
	Times   []float64
	States  []State
	Metrics map[string]float64

	StepsTaken    int // accepted steps
	StepsRejected int // attempts discarded by the error controller
	Evaluations   int // derivative calls, stage evaluations included
}

// AtmosphereSeries projects the atmosphere temperature of every sample.
func (r *Result) AtmosphereSeries() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s.Atmosphere
	}
	return out
}

// OceanSeries projects the ocean temperature of every sample.
func (r *Result) OceanSeries() []float64 {
	out := make([]float64, len(r.States))
	for i, s := range r.States {
		out[i] = s.Ocean
	}
	return out
}

// GradientSeries is the pointwise atmosphere-ocean difference.
func (r *Result) GradientSeries() []float64 {
	out := make([]float64, len(r.States))
	return floats.SubTo(out, r.AtmosphereSeries(), r.OceanSeries())
}

// Final returns the last sample, or a zero state for an empty trajectory.
func (r *Result) Final() (State, float64) {
	if len(r.States) == 0 {
		return State{}, 0
	}
	return r.States[len(r.States)-1], r.Times[len(r.Times)-1]
}
