// Package viz provides the terminal viewport explorer for membership grids.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Explorer]: viewport browser over the complex plane
//   - [Canvas]: Braille-based dot canvas the grid is sampled onto
//
// # Key Bindings
//
//	Arrows/hjkl - Pan by a tenth of the span
//	+/-         - Zoom in/out by a factor of two
//	Tab         - Cycle named regions
//	R           - Reset to the starting viewport
//	C           - Toggle center crosshair
//	S           - Save a snapshot to the gallery
//	?           - Show help overlay
//
// Every input that moves the viewport recomputes the full grid, so the
// display always reflects a complete classification pass.
package viz
