// Package ebm provides the core simulation primitives for the two-layer
// energy-balance model.
//
// The package defines the fundamental types for numerical integration of
// the coupled atmosphere/ocean ODE system:
//
//   - [State]: the two layer temperatures, as named fields
//   - [System]: interface for the model (dX/dt = f(X, t))
//   - [Stepper]: single-step numerical integrator interface
//   - [EmbeddedStepper]: adaptive variant returning a local error estimate
//   - [Result]: trajectory plus step statistics and metric values
//
// # Example
//
//	model := climate.NewTwoLayer(climate.DefaultParams(), rng)
//	solver := sim.New(integrators.NewRK45())
//	result, _ := solver.Run(ctx, model, x0, cfg)
//
// # Thread Safety
//
// Solver and System instances are NOT thread-safe. For parallel
// realizations, use sim.Ensemble, which builds an independent model,
// generator and result per member.
package ebm
