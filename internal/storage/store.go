package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkoster/mandelgrid/internal/analysis"
	"github.com/pkoster/mandelgrid/internal/mandel"
	"github.com/pkoster/mandelgrid/internal/render"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RenderMetadata struct {
	ID        string    `json:"id"`
	Region    string    `json:"region"`
	XMin      float64   `json:"x_min"`
	XMax      float64   `json:"x_max"`
	YMin      float64   `json:"y_min"`
	YMax      float64   `json:"y_max"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Budget    int       `json:"budget"`
	Coverage  float64   `json:"coverage"`
	ElapsedMS int64     `json:"elapsed_ms"`
	Timestamp time.Time `json:"timestamp"`
}

// Viewport rebuilds the complex-plane window a render was computed over.
func (m RenderMetadata) Viewport() mandel.Region {
	return mandel.Region{XMin: m.XMin, XMax: m.XMax, YMin: m.YMin, YMax: m.YMax}
}

// Save records one render: a metadata.json and a grid.png under a
// directory named after the render ID.
func (s *Store) Save(name string, r mandel.Region, g *mandel.Grid, elapsed time.Duration) (string, error) {
	renderID := fmt.Sprintf("%s_%d", name, time.Now().Unix())
	renderDir := filepath.Join(s.baseDir, renderID)

	if err := os.MkdirAll(renderDir, 0755); err != nil {
		return "", err
	}

	meta := RenderMetadata{
		ID:        renderID,
		Region:    name,
		XMin:      r.XMin,
		XMax:      r.XMax,
		YMin:      r.YMin,
		YMax:      r.YMax,
		Width:     g.Width(),
		Height:    g.Height(),
		Budget:    mandel.IterBudget,
		Coverage:  analysis.Coverage(g),
		ElapsedMS: elapsed.Milliseconds(),
		Timestamp: time.Now(),
	}

	metaPath := filepath.Join(renderDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if err := render.SavePNG(filepath.Join(renderDir, "grid.png"), g); err != nil {
		return "", err
	}

	return renderID, nil
}

func (s *Store) List() ([]RenderMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RenderMetadata{}, nil
		}
		return nil, err
	}

	renders := make([]RenderMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta RenderMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		renders = append(renders, meta)
	}

	return renders, nil
}

func (s *Store) Load(renderID string) (*RenderMetadata, error) {
	metaPath := filepath.Join(s.baseDir, renderID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RenderMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// ImagePath returns where a render's PNG lives under the store.
func (s *Store) ImagePath(renderID string) string {
	return filepath.Join(s.baseDir, renderID, "grid.png")
}
