package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkoster/mandelgrid/internal/mandel"
)

// SVG renders the grid as one <rect> per horizontal run of In cells, one
// unit per pixel. Collapsing runs keeps the output proportional to the
// amount of boundary rather than to the area.
func SVG(g *mandel.Grid) string {
	width, height := g.Width(), g.Height()

	var sb strings.Builder

	// SVG header
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#ffffff"/>
<g fill="#000000">
`, width, height, width, height))

	for row := 0; row < height; row++ {
		col := 0
		for col < width {
			if g.At(row, col) != mandel.In {
				col++
				continue
			}
			runStart := col
			for col < width && g.At(row, col) == mandel.In {
				col++
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="1"/>
`, runStart, row, col-runStart))
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// SaveSVG writes the grid to the named file as SVG.
func SaveSVG(path string, g *mandel.Grid) error {
	return os.WriteFile(path, []byte(SVG(g)), 0644)
}
