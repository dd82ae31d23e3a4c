// Package viz provides the terminal visualization for live climate runs.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: live view stepping the system and charting both layers
//   - Forcing breakdown panel with ramp progress and eruption markers
//   - Parameter tuning through the model's Configurable interface
//
// # Key Bindings
//
//	Space - Pause/Resume simulation
//	R     - Reset to initial state
//	Tab   - Cycle tunable parameters
//	↑/↓   - Adjust selected parameter
//	?     - Show help overlay
package viz
