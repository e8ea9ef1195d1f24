package analysis

import "github.com/pkoster/mandelgrid/internal/mandel"

// Coverage returns the fraction of grid cells classified In.
func Coverage(g *mandel.Grid) float64 {
	in := 0
	for _, p := range g.Pixels() {
		if p == mandel.In {
			in++
		}
	}
	return float64(in) / float64(len(g.Pixels()))
}

// BoundaryPixels counts In cells with at least one Out neighbour along the
// four grid directions: the raster footprint of the set's boundary within
// the grid's viewport.
func BoundaryPixels(g *mandel.Grid) int {
	count := 0
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col) != mandel.In {
				continue
			}
			if hasOutNeighbour(g, row, col) {
				count++
			}
		}
	}
	return count
}

func hasOutNeighbour(g *mandel.Grid, row, col int) bool {
	if row > 0 && g.At(row-1, col) == mandel.Out {
		return true
	}
	if row < g.Height()-1 && g.At(row+1, col) == mandel.Out {
		return true
	}
	if col > 0 && g.At(row, col-1) == mandel.Out {
		return true
	}
	if col < g.Width()-1 && g.At(row, col+1) == mandel.Out {
		return true
	}
	return false
}
