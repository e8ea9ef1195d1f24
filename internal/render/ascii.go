package render

import (
	"strings"

	"github.com/pkoster/mandelgrid/internal/mandel"
)

const (
	inChar  = '█'
	outChar = ' '
)

// ASCII downsamples a grid to a cols x rows block of text, one character
// per cell. Each character takes the classification of the nearest grid
// pixel. Lines are joined with newlines, without a trailing one.
func ASCII(g *mandel.Grid, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(rows * (cols + 1))

	for r := 0; r < rows; r++ {
		srcRow := r * g.Height() / rows
		for c := 0; c < cols; c++ {
			srcCol := c * g.Width() / cols
			if g.At(srcRow, srcCol) == mandel.In {
				sb.WriteRune(inChar)
			} else {
				sb.WriteRune(outChar)
			}
		}
		if r < rows-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
