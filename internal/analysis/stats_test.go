package analysis

import (
	"testing"

	"github.com/pkoster/mandelgrid/internal/mandel"
)

func TestCoverage_Home(t *testing.T) {
	g := mandel.NewFromRegion(mandel.Home)

	// The set covers roughly 1.5 of the viewport's 9 square units.
	cov := Coverage(g)
	if cov < 0.1 || cov > 0.3 {
		t.Errorf("Coverage() = %v, want ~0.17 for the classic viewport", cov)
	}
}

func TestCoverage_AllIn(t *testing.T) {
	// Every point within |c| < 0.25 has a bounded orbit, so a viewport well
	// inside that disk classifies everything In.
	g := mandel.New(-0.1, 0.1, -0.1, 0.1)

	if cov := Coverage(g); cov != 1.0 {
		t.Errorf("Coverage() = %v, want 1.0", cov)
	}
	if n := BoundaryPixels(g); n != 0 {
		t.Errorf("BoundaryPixels() = %d, want 0 with no exterior in view", n)
	}
}

func TestCoverage_AllOut(t *testing.T) {
	g := mandel.New(10, 11, 10, 11)

	if cov := Coverage(g); cov != 0.0 {
		t.Errorf("Coverage() = %v, want 0.0", cov)
	}
	if n := BoundaryPixels(g); n != 0 {
		t.Errorf("BoundaryPixels() = %d, want 0 with no interior in view", n)
	}
}

func TestBoundaryPixels_Home(t *testing.T) {
	g := mandel.NewFromRegion(mandel.Home)

	boundary := BoundaryPixels(g)
	if boundary == 0 {
		t.Fatal("expected boundary pixels on the classic viewport")
	}

	in := int(Coverage(g) * float64(len(g.Pixels())))
	if boundary > in {
		t.Errorf("boundary %d exceeds interior count %d", boundary, in)
	}
}
