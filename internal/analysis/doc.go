// Package analysis provides escape-time statistics over membership grids.
//
// The package measures what the engine computed rather than feeding back
// into it:
//
//   - [EscapeTime]: per-point escape iteration under the engine's loop
//   - [EscapeHistogram]: distribution of escape iterations over a viewport
//   - [Coverage]: fraction of a grid classified in the set
//   - [BoundaryPixels]: raster footprint of the set/exterior interface
//
// EscapeTime agrees with the engine's classification: a point reports
// escaped exactly when Complex.InSet returns false for the same budget.
package analysis
