package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkoster/mandelgrid/internal/mandel"
)

// ExportData is the full dump of one render: the viewport it was computed
// over plus the raw classification buffer, row by row, 0 for Out and 1
// for In. It is what downstream consumers of the buffer parse.
type ExportData struct {
	Region string  `json:"region"`
	XMin   float64 `json:"x_min"`
	XMax   float64 `json:"x_max"`
	YMin   float64 `json:"y_min"`
	YMax   float64 `json:"y_max"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Budget int     `json:"budget"`
	Pixels [][]int `json:"pixels"`
}

func exportData(name string, r mandel.Region, g *mandel.Grid) ExportData {
	data := ExportData{
		Region: name,
		XMin:   r.XMin,
		XMax:   r.XMax,
		YMin:   r.YMin,
		YMax:   r.YMax,
		Width:  g.Width(),
		Height: g.Height(),
		Budget: mandel.IterBudget,
		Pixels: make([][]int, g.Height()),
	}

	for row := 0; row < g.Height(); row++ {
		cells := make([]int, g.Width())
		for col := 0; col < g.Width(); col++ {
			cells[col] = int(g.At(row, col))
		}
		data.Pixels[row] = cells
	}

	return data
}

func writeExport(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSON(path string, name string, r mandel.Region, g *mandel.Grid) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return writeExport(file, exportData(name, r, g))
}

func ExportJSONStdout(name string, r mandel.Region, g *mandel.Grid) error {
	return writeExport(os.Stdout, exportData(name, r, g))
}
