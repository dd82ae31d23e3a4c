package metrics

import "github.com/san-kum/climsim/internal/ebm"

// TimeAbove accumulates the years spent with warming beyond a
// threshold. Intervals are credited to the sample opening them, which
// is exact enough on the solver's own grid.
type TimeAbove struct {
	name      string
	baseline  float64
	threshold float64
	lastT     float64
	lastAbove bool
	total     float64
	samples   int
}

func NewTimeAbove(baseline, threshold float64) *TimeAbove {
	return &TimeAbove{name: "years_above", baseline: baseline, threshold: threshold}
}

func (m *TimeAbove) Name() string { return m.name }

func (m *TimeAbove) Observe(s ebm.State, t float64) {
	if m.samples > 0 && m.lastAbove {
		m.total += t - m.lastT
	}
	m.lastT = t
	m.lastAbove = s.Atmosphere-m.baseline > m.threshold
	m.samples++
}

func (m *TimeAbove) Value() float64 {
	return m.total
}

func (m *TimeAbove) Reset() {
	m.lastT = 0
	m.lastAbove = false
	m.total = 0
	m.samples = 0
}
