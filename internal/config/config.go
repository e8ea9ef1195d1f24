package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pkoster/mandelgrid/internal/mandel"
)

const (
	DefaultRegion  = "home"
	DefaultOutput  = "mandel.png"
	DefaultDataDir = "renders"
	DefaultCols    = 100
	DefaultRows    = 40
	DefaultBins    = 20
)

type Config struct {
	Region  string         `yaml:"region"`
	Bounds  ViewportConfig `yaml:"viewport"`
	Output  string         `yaml:"output"`
	DataDir string         `yaml:"data_dir"`
	Cols    int            `yaml:"cols"`
	Rows    int            `yaml:"rows"`
	Bins    int            `yaml:"bins"`
}

// ViewportConfig pins explicit complex-plane bounds. When any field is
// set it takes precedence over the named region.
type ViewportConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

func DefaultConfig() *Config {
	return &Config{
		Region:  DefaultRegion,
		Output:  DefaultOutput,
		DataDir: DefaultDataDir,
		Cols:    DefaultCols,
		Rows:    DefaultRows,
		Bins:    DefaultBins,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Viewport resolves the window to compute over: the explicit bounds when
// given, the named region otherwise.
func (c *Config) Viewport() (mandel.Region, error) {
	if c.Bounds != (ViewportConfig{}) {
		r := mandel.Region{
			XMin: c.Bounds.XMin,
			XMax: c.Bounds.XMax,
			YMin: c.Bounds.YMin,
			YMax: c.Bounds.YMax,
		}
		if !r.Valid() {
			return mandel.Region{}, fmt.Errorf("inverted viewport bounds: x [%g, %g], y [%g, %g]",
				r.XMin, r.XMax, r.YMin, r.YMax)
		}
		return r, nil
	}

	r, ok := mandel.RegionByName(c.Region)
	if !ok {
		return mandel.Region{}, fmt.Errorf("unknown region: %s", c.Region)
	}
	return r, nil
}

// ViewportName returns the label renders are saved under: the region name,
// or "custom" when explicit bounds are in play.
func (c *Config) ViewportName() string {
	if c.Bounds != (ViewportConfig{}) {
		return "custom"
	}
	return c.Region
}
