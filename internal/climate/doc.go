// Package climate defines the two-layer energy-balance model.
//
// A fast atmosphere/mixed-layer box exchanges heat with a slow deep-ocean
// reservoir while radiative forcing pushes the budget out of balance:
//
//   - [Params]: the physical constants and feedback coefficients
//   - [TwoLayer]: the model itself, implementing [ebm.System]
//   - [Eruption]: rectangular volcanic cooling pulses
//
// Forcing is the sum of a linear greenhouse ramp, the volcanic record,
// an 11-year solar cycle, and white weather noise. Feedbacks adjust the
// planetary albedo and the longwave response as the atmosphere warms.
//
// # Reproducibility
//
// The noise term draws from the generator handed to [NewTwoLayer]. Pass a
// seeded *rand.Rand for repeatable trajectories, or nil to disable noise:
//
//	model := climate.NewTwoLayer(climate.DefaultParams(), rand.New(rand.NewSource(42)))
//	deriv := model.Derive(ebm.State{Atmosphere: 288, Ocean: 288}, 0)
//
// A TwoLayer must not be shared across goroutines while solving; each
// ensemble member owns its model and generator.
package climate
