package climate

import "math"

// Albedo returns the planetary albedo at the given atmospheric
// temperature. Cooling brightens the planet (ice growth), warming
// darkens it, hard-clamped to a plausible band.
func (p Params) Albedo(ta float64) float64 {
	return clamp(0.3-p.AlbedoFeedback*(ta-ReferenceTemp), 0.1, 0.7)
}

// OLRSlope returns the effective longwave slope B. Warmer air holds
// more water vapor, which weakens the response; floored at 0.5 so the
// greenhouse feedback cannot flip the sign of the restoring force.
func (p Params) OLRSlope(ta float64) float64 {
	return math.Max(p.B0-p.VaporFeedback*(ta-ReferenceTemp), 0.5)
}

// OLRIntercept returns the effective longwave intercept after the
// cloud adjustment.
func (p Params) OLRIntercept(ta float64) float64 {
	return p.A + p.CloudFeedback*(ta-ReferenceTemp)
}

// OLR is the outgoing longwave flux at the given temperature, W/m^2.
func (p Params) OLR(ta float64) float64 {
	return p.OLRIntercept(ta) + p.OLRSlope(ta)*ta
}

// ASR is the absorbed shortwave flux at the given temperature and
// time, W/m^2. The annual cycle modulates insolation by 2 percent.
func (p Params) ASR(ta, t float64) float64 {
	return p.S0 * (1 - p.Albedo(ta)) / 4 * (1 + 0.02*math.Sin(2*math.Pi*t))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
