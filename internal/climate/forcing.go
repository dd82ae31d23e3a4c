package climate

import "math"

// Eruption is one rectangular pulse in the volcanic forcing record.
// Negative forcing cools. Both bounds are inclusive.
type Eruption struct {
	Start   float64 // year
	End     float64 // year
	Forcing float64 // W/m^2
}

// DefaultEruptions returns the standard two-eruption record: a moderate
// event early in the ramp and a larger one at year 600.
func DefaultEruptions() []Eruption {
	return []Eruption{
		{Start: 100, End: 105, Forcing: -2.0},
		{Start: 600, End: 605, Forcing: -3.0},
	}
}

// RampYears is the length of the linear greenhouse ramp.
const RampYears = 200.0

// RampForcing is the greenhouse ramp: linear from zero to Fmax over the
// first RampYears, constant at Fmax afterwards.
func (p Params) RampForcing(t float64) float64 {
	if t <= RampYears {
		return p.Fmax * t / RampYears
	}
	return p.Fmax
}

// VolcanicForcing sums every eruption whose window contains t.
// Overlapping windows stack.
func (p Params) VolcanicForcing(t float64) float64 {
	total := 0.0
	for _, e := range p.Eruptions {
		if t >= e.Start && t <= e.End {
			total += e.Forcing
		}
	}
	return total
}

// SolarCycleForcing is the 11-year solar cycle, amplitude 0.5 W/m^2.
func SolarCycleForcing(t float64) float64 {
	return 0.5 * math.Sin(2*math.Pi*t/11.0)
}

// DeterministicForcing is the total forcing minus the noise term:
// ramp plus volcanic plus solar cycle.
func (p Params) DeterministicForcing(t float64) float64 {
	return p.RampForcing(t) + p.VolcanicForcing(t) + SolarCycleForcing(t)
}
