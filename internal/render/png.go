// Package render converts classification grids into images and text.
package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/pkoster/mandelgrid/internal/mandel"
)

// Image converts a grid to a grayscale image, one image pixel per grid
// cell. Cells inside the set are black, everything else white.
func Image(g *mandel.Grid) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width(), g.Height()))
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			shade := uint8(0xff)
			if g.At(row, col) == mandel.In {
				shade = 0x00
			}
			img.SetGray(col, row, color.Gray{Y: shade})
		}
	}
	return img
}

// WritePNG encodes the grid as a PNG image.
func WritePNG(w io.Writer, g *mandel.Grid) error {
	return png.Encode(w, Image(g))
}

// SavePNG writes the grid to the named file, creating it if necessary.
func SavePNG(path string, g *mandel.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := WritePNG(f, g); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
