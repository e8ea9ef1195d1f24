package mandel

// Raster size and iteration budget are fixed properties of the engine:
// callers choose the viewport, never the resolution.
const (
	GridWidth  = 800
	GridHeight = 800
	IterBudget = 200
)

// Grid is a fully computed membership raster: one Pixel per cell, row-major
// by index (index = row*width + col). The buffer is populated during
// construction and never written again.
type Grid struct {
	width  int
	height int
	pixels []Pixel
}

// New samples the viewport [xMin, xMax] × [yMin, yMax] onto the fixed
// 800×800 raster and classifies every cell with the fixed iteration budget.
// Panics if either axis has min > max.
func New(xMin, xMax, yMin, yMax float64) *Grid {
	rRange := NewCoordRange(xMin, xMax)
	iRange := NewCoordRange(yMin, yMax)

	pixels := make([]Pixel, GridWidth*GridHeight)
	for p := range pixels {
		c := RowColFromIndex(p, GridWidth, GridHeight).ToComplex(rRange, iRange)
		if c.InSet(IterBudget) {
			pixels[p] = In
		}
	}

	return &Grid{width: GridWidth, height: GridHeight, pixels: pixels}
}

// NewFromRegion is New with the viewport given as a Region.
func NewFromRegion(r Region) *Grid {
	return New(r.XMin, r.XMax, r.YMin, r.YMax)
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// Pixels returns the classification buffer. It is owned by the Grid for the
// Grid's whole lifetime; callers must treat it as read-only.
func (g *Grid) Pixels() []Pixel { return g.pixels }

// At returns the classification of the cell at (row, col).
func (g *Grid) At(row, col int) Pixel {
	return g.pixels[row*g.width+col]
}
