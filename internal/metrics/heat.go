package metrics

import "github.com/san-kum/climsim/internal/ebm"

// HeatContent tracks the energy stored in both layers relative to a
// baseline state, in J/m^2. The ocean term dominates because its heat
// capacity is two orders of magnitude larger.
type HeatContent struct {
	name     string
	ca       float64
	co       float64
	baseline ebm.State
	latest   float64
}

func NewHeatContent(ca, co float64, baseline ebm.State) *HeatContent {
	return &HeatContent{name: "heat_content", ca: ca, co: co, baseline: baseline}
}

func (h *HeatContent) Name() string { return h.name }

func (h *HeatContent) Observe(s ebm.State, t float64) {
	h.latest = h.ca*(s.Atmosphere-h.baseline.Atmosphere) + h.co*(s.Ocean-h.baseline.Ocean)
}

func (h *HeatContent) Value() float64 {
	return h.latest
}

func (h *HeatContent) Reset() {
	h.latest = 0
}
