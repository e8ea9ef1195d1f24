package mandel

import (
	"math"
	"testing"
)

func TestRegion_Valid(t *testing.T) {
	tests := []struct {
		name  string
		r     Region
		valid bool
	}{
		{"home", Home, true},
		{"degenerate", Region{XMin: 1, XMax: 1, YMin: 0, YMax: 0}, true},
		{"inverted x", Region{XMin: 1, XMax: -1, YMin: 0, YMax: 1}, false},
		{"inverted y", Region{XMin: -1, XMax: 1, YMin: 1, YMax: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Valid(); got != tt.valid {
				t.Errorf("Valid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestRegion_Geometry(t *testing.T) {
	r := Region{XMin: -2, XMax: 1, YMin: -1.5, YMax: 1.5}

	sx, sy := r.Span()
	if sx != 3.0 || sy != 3.0 {
		t.Errorf("Span() = (%v, %v), want (3, 3)", sx, sy)
	}

	c := r.Center()
	if c.R != -0.5 || c.I != 0 {
		t.Errorf("Center() = %s, want -0.5 + 0i", c)
	}
}

func TestRegion_Shifted(t *testing.T) {
	r := Region{XMin: 0, XMax: 1, YMin: 0, YMax: 1}.Shifted(0.5, -0.25)

	want := Region{XMin: 0.5, XMax: 1.5, YMin: -0.25, YMax: 0.75}
	if r != want {
		t.Errorf("Shifted() = %+v, want %+v", r, want)
	}
}

func TestRegion_Zoomed(t *testing.T) {
	r := Region{XMin: -2, XMax: 2, YMin: -1, YMax: 1}.Zoomed(0.5)

	want := Region{XMin: -1, XMax: 1, YMin: -0.5, YMax: 0.5}
	if r != want {
		t.Errorf("Zoomed(0.5) = %+v, want %+v", r, want)
	}

	// Zooming keeps the center fixed.
	c := r.Center()
	if math.Abs(c.R) > 1e-15 || math.Abs(c.I) > 1e-15 {
		t.Errorf("Zoomed() moved the center to %s", c)
	}
}

func TestRegionByName(t *testing.T) {
	r, ok := RegionByName("seahorse")
	if !ok {
		t.Fatal("expected seahorse region")
	}
	if r != SeahorseValley {
		t.Errorf("RegionByName(seahorse) = %+v", r)
	}

	if _, ok := RegionByName("nonexistent"); ok {
		t.Error("expected miss for unknown name")
	}
}

func TestRegionNames(t *testing.T) {
	names := RegionNames()
	if len(names) != len(regions) {
		t.Fatalf("RegionNames() returned %d names, want %d", len(names), len(regions))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("names not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
