package metrics

import (
	"math"

	"github.com/san-kum/climsim/internal/ebm"
)

// Stability reports the fraction of samples whose atmospheric anomaly
// stays within a threshold of the baseline. A value of 1 means the run
// never left the band.
type Stability struct {
	name       string
	baseline   float64
	threshold  float64
	violations int
	samples    int
}

func NewStability(baseline, threshold float64) *Stability {
	return &Stability{name: "stability", baseline: baseline, threshold: threshold}
}

func (s *Stability) Name() string { return s.name }

func (s *Stability) Observe(state ebm.State, t float64) {
	s.samples++
	if math.Abs(state.Atmosphere-s.baseline) > s.threshold {
		s.violations++
	}
}

func (s *Stability) Value() float64 {
	if s.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(s.violations)/float64(s.samples)
}

func (s *Stability) Reset() {
	s.violations = 0
	s.samples = 0
}
