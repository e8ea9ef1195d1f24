package mandel

import "sort"

// Region is a rectangular viewport on the complex plane.
type Region struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Valid reports whether both axes are properly ordered. New panics on
// inverted bounds, so interactive callers check here first.
func (r Region) Valid() bool {
	return r.XMin <= r.XMax && r.YMin <= r.YMax
}

// Span returns the extent of the region along each axis.
func (r Region) Span() (x, y float64) {
	return r.XMax - r.XMin, r.YMax - r.YMin
}

// Center returns the midpoint of the region.
func (r Region) Center() Complex {
	return Complex{
		R: (r.XMin + r.XMax) / 2,
		I: (r.YMin + r.YMax) / 2,
	}
}

// Shifted returns the region translated by dx along the real axis and dy
// along the imaginary axis.
func (r Region) Shifted(dx, dy float64) Region {
	return Region{
		XMin: r.XMin + dx,
		XMax: r.XMax + dx,
		YMin: r.YMin + dy,
		YMax: r.YMax + dy,
	}
}

// Zoomed returns the region rescaled about its center. A factor below 1
// zooms in, above 1 zooms out.
func (r Region) Zoomed(factor float64) Region {
	c := r.Center()
	sx, sy := r.Span()
	hx := sx * factor / 2
	hy := sy * factor / 2
	return Region{
		XMin: c.R - hx,
		XMax: c.R + hx,
		YMin: c.I - hy,
		YMax: c.I + hy,
	}
}

// Classic regions and landmarks in the Mandelbrot set.
var (
	// Home frames the whole set.
	Home = Region{XMin: -2.0, XMax: 1.0, YMin: -1.5, YMax: 1.5}

	// Seahorse Valley: dense filaments and repeating seahorse curls.
	SeahorseValley = Region{XMin: -0.8, XMax: -0.7, YMin: 0.05, YMax: 0.15}

	// Elephant Valley: large bulb with trunk-like tendrils.
	ElephantValley = Region{XMin: -1.85, XMax: -1.75, YMin: -0.10, YMax: -0.02}

	// Spiral Minibrot: small Mandelbrot copy with tight spiral arms.
	SpiralMinibrot = Region{XMin: -0.7435, XMax: -0.7420, YMin: 0.1310, YMax: 0.1325}

	// Triple Spiral: threefold symmetric spiral structure.
	TripleSpiral = Region{XMin: -0.7480, XMax: -0.7450, YMin: 0.0950, YMax: 0.0980}

	// Valley of the Dragon: deep, highly detailed spiral filaments.
	ValleyOfTheDragon = Region{XMin: -0.7400, XMax: -0.7350, YMin: 0.1800, YMax: 0.1850}

	// Minibrot in a Mini-Spiral: self-similar copy inside a spiral arm.
	MinibrotInMiniSpiral = Region{XMin: -1.7390, XMax: -1.7375, YMin: -0.0235, YMax: -0.0220}
)

var regions = map[string]Region{
	"home":          Home,
	"seahorse":      SeahorseValley,
	"elephant":      ElephantValley,
	"minibrot":      SpiralMinibrot,
	"triple-spiral": TripleSpiral,
	"dragon":        ValleyOfTheDragon,
	"mini-spiral":   MinibrotInMiniSpiral,
}

// RegionByName looks up a named landmark region.
func RegionByName(name string) (Region, bool) {
	r, ok := regions[name]
	return r, ok
}

// RegionNames returns the landmark names in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
