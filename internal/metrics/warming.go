package metrics

import "github.com/san-kum/climsim/internal/ebm"

// PeakWarming tracks the largest atmosphere excursion above a baseline
// temperature over the run.
type PeakWarming struct {
	name     string
	baseline float64
	peak     float64
	seen     bool
}

func NewPeakWarming(baseline float64) *PeakWarming {
	return &PeakWarming{name: "peak_warming", baseline: baseline}
}

func (p *PeakWarming) Name() string { return p.name }

func (p *PeakWarming) Observe(s ebm.State, t float64) {
	w := s.Atmosphere - p.baseline
	if !p.seen || w > p.peak {
		p.peak = w
		p.seen = true
	}
}

func (p *PeakWarming) Value() float64 {
	return p.peak
}

func (p *PeakWarming) Reset() {
	p.peak = 0
	p.seen = false
}
