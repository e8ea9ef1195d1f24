// Package batch runs scripted render plans, typically to rebuild a
// gallery of viewports in one pass.
package batch

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pkoster/mandelgrid/internal/mandel"
	"github.com/pkoster/mandelgrid/internal/storage"
)

// Plan defines a scripted render sequence
type Plan struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Steps       []PlanStep `yaml:"steps"`
}

// PlanStep renders one viewport: a named region, or explicit bounds when
// the region field is empty. SaveAs overrides the gallery label.
type PlanStep struct {
	Region string  `yaml:"region"`
	XMin   float64 `yaml:"x_min"`
	XMax   float64 `yaml:"x_max"`
	YMin   float64 `yaml:"y_min"`
	YMax   float64 `yaml:"y_max"`
	SaveAs string  `yaml:"save_as"`
}

// LoadPlan loads a plan from a YAML file
func LoadPlan(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plan Plan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return nil, err
	}

	return &plan, nil
}

func (s PlanStep) resolve() (string, mandel.Region, error) {
	if s.Region != "" {
		r, ok := mandel.RegionByName(s.Region)
		if !ok {
			return "", mandel.Region{}, fmt.Errorf("unknown region: %s", s.Region)
		}
		name := s.Region
		if s.SaveAs != "" {
			name = s.SaveAs
		}
		return name, r, nil
	}

	r := mandel.Region{XMin: s.XMin, XMax: s.XMax, YMin: s.YMin, YMax: s.YMax}
	if !r.Valid() {
		return "", mandel.Region{}, fmt.Errorf("inverted bounds: x [%g, %g], y [%g, %g]",
			s.XMin, s.XMax, s.YMin, s.YMax)
	}
	name := s.SaveAs
	if name == "" {
		name = "custom"
	}
	return name, r, nil
}

// RunPlan executes all steps, saving each render to the gallery, and
// returns the new render IDs.
func RunPlan(plan *Plan, st *storage.Store) ([]string, error) {
	ids := make([]string, 0, len(plan.Steps))

	for i, step := range plan.Steps {
		name, r, err := step.resolve()
		if err != nil {
			return ids, fmt.Errorf("step %d: %w", i+1, err)
		}

		fmt.Printf("running step %d/%d: %s\n", i+1, len(plan.Steps), name)

		start := time.Now()
		g := mandel.NewFromRegion(r)
		elapsed := time.Since(start)

		id, err := st.Save(name, r, g, elapsed)
		if err != nil {
			return ids, fmt.Errorf("step %d save: %w", i+1, err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}
