// Package mandel computes rasterized Mandelbrot set membership grids.
//
// The pipeline maps a flat pixel index to a grid coordinate, to a point on
// the complex plane, and through the escape-time test to a binary
// classification:
//
//   - [CoordRange]: one axis of the viewport
//   - [Complex]: iteration arithmetic and the escape-time predicate
//   - [RowCol]: pixel index to grid coordinate mapping
//   - [Grid]: the fully computed 800×800 membership raster
//
// # Example
//
//	g := mandel.NewFromRegion(mandel.Home)
//	inside := g.At(400, 150) == mandel.In
//
// # Determinism
//
// Construction is pure: identical viewport bounds always produce
// byte-identical buffers. A Grid never changes after construction and is
// safe for concurrent reads.
package mandel
