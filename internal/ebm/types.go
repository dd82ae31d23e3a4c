package ebm

import "math"

// State holds the two model temperatures in Kelvin. It is a plain value;
// steppers combine states arithmetically and never mutate their inputs.
type State struct {
	Atmosphere float64
	Ocean      float64
}

func (s State) Add(o State) State {
	return State{s.Atmosphere + o.Atmosphere, s.Ocean + o.Ocean}
}

func (s State) Sub(o State) State {
	return State{s.Atmosphere - o.Atmosphere, s.Ocean - o.Ocean}
}

func (s State) Scale(f float64) State {
	return State{s.Atmosphere * f, s.Ocean * f}
}

// Gradient is the atmosphere-ocean temperature difference.
func (s State) Gradient() float64 {
	return s.Atmosphere - s.Ocean
}

func (s State) IsValid() bool {
	for _, v := range [...]float64{s.Atmosphere, s.Ocean} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s State) MaxAbs() float64 {
	return math.Max(math.Abs(s.Atmosphere), math.Abs(s.Ocean))
}

// System is the model definition: the derivative of State at (s, t), in
// K/year. Implementations must tolerate being called an unbounded number of
// times, at stage times inside and out of step order, and must keep no
// state between calls beyond their fixed parameters and noise source.
type System interface {
	Derive(s State, t float64) State
}

// Info describes a stepping scheme.
type Info struct {
	Name   string
	Order  int
	Stages int
}

// Stepper advances a state by one fixed step of size dt.
type Stepper interface {
	Info() Info
	Step(sys System, s State, t, dt float64) State
}

// EmbeddedStepper is a Stepper whose scheme embeds a lower-order solution,
// yielding a normalized local error estimate alongside the candidate state.
// The caller decides whether to accept the step.
type EmbeddedStepper interface {
	Stepper
	AttemptStep(sys System, s State, t, dt float64) (State, float64)
}

// Metric accumulates a scalar over the accepted trajectory samples.
type Metric interface {
	Name() string
	Observe(s State, t float64)
	Value() float64
	Reset()
}

// Configurable is implemented by systems that allow live parameter tuning.
type Configurable interface {
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

// Config controls one integration run.
type Config struct {
	Start float64 // years
	End   float64 // years
	Dt    float64 // initial step (adaptive) or fixed step

	MinDt     float64 // adaptive: below this after a rejection the run fails
	MaxDt     float64 // adaptive: growth cap, 0 disables
	Tolerance float64 // adaptive: normalized local error bound
	Adaptive  bool

	ValidateState bool // reject trajectories once NaN/Inf appears
	MaxSteps      int  // attempt budget, 0 disables
}

func DefaultConfig() Config {
	return Config{
		Start:         0,
		End:           1000,
		Dt:            0.1,
		MinDt:         1e-9,
		MaxDt:         5.0,
		Tolerance:     1e-6,
		Adaptive:      true,
		ValidateState: true,
		MaxSteps:      4_000_000,
	}
}
