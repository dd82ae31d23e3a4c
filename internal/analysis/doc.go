// Package analysis provides frequency and trend analysis for
// temperature trajectories.
//
// Solver output sits on an adaptive, unevenly spaced grid, so spectral
// work follows a fixed pipeline:
//
//   - [Resample]: interpolate onto a uniform grid
//   - [Detrend]: strip the least-squares warming trend
//   - [PowerSpectrum]: FFT magnitude of the positive-frequency bins
//   - [DominantPeriod]: strongest spectral line in years
//
// # Finding the Solar Cycle
//
// The 11-year irradiance cycle shows up once the greenhouse ramp is
// removed:
//
//	series, spacing, _ := analysis.Resample(res.Times, res.AtmosphereSeries(), 1024)
//	flat := analysis.Detrend(series, spacing)
//	period := analysis.DominantPeriod(analysis.PowerSpectrum(flat), spacing)
package analysis
