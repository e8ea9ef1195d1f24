package render

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkoster/mandelgrid/internal/mandel"
)

func TestImage_Shades(t *testing.T) {
	g := mandel.NewFromRegion(mandel.Home)
	img := Image(g)

	bounds := img.Bounds()
	if bounds.Dx() != g.Width() || bounds.Dy() != g.Height() {
		t.Fatalf("image bounds %v, want %dx%d", bounds, g.Width(), g.Height())
	}

	// At(400, 533) sits near the origin of the plane and is In.
	if shade := img.GrayAt(533, 400).Y; shade != 0x00 {
		t.Errorf("interior pixel shade = %#x, want black", shade)
	}
	// The top-left corner escapes immediately.
	if shade := img.GrayAt(0, 0).Y; shade != 0xff {
		t.Errorf("exterior pixel shade = %#x, want white", shade)
	}
}

func TestWritePNG_RoundTrip(t *testing.T) {
	g := mandel.New(10, 11, 10, 11)

	var buf bytes.Buffer
	if err := WritePNG(&buf, g); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decoding output: %v", err)
	}
	if b := img.Bounds(); b.Dx() != mandel.GridWidth || b.Dy() != mandel.GridHeight {
		t.Errorf("decoded bounds %v, want %dx%d", b, mandel.GridWidth, mandel.GridHeight)
	}
}

func TestSavePNG(t *testing.T) {
	g := mandel.New(10, 11, 10, 11)
	path := filepath.Join(t.TempDir(), "grid.png")

	if err := SavePNG(path, g); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening saved file: %v", err)
	}
	defer f.Close()

	if _, err := png.Decode(f); err != nil {
		t.Errorf("saved file is not a valid PNG: %v", err)
	}
}

func TestASCII_Dimensions(t *testing.T) {
	g := mandel.NewFromRegion(mandel.Home)

	const cols, rows = 80, 40
	out := ASCII(g, cols, rows)

	lines := strings.Split(out, "\n")
	if len(lines) != rows {
		t.Fatalf("got %d lines, want %d", len(lines), rows)
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != cols {
			t.Errorf("line %d has %d chars, want %d", i, n, cols)
		}
	}

	if !strings.ContainsRune(out, inChar) {
		t.Error("expected interior characters on the classic viewport")
	}
	if !strings.ContainsRune(out, outChar) {
		t.Error("expected exterior characters on the classic viewport")
	}
}

func TestASCII_Uniform(t *testing.T) {
	g := mandel.New(10, 11, 10, 11)

	out := ASCII(g, 4, 2)
	if want := "    \n    "; out != want {
		t.Errorf("ASCII() = %q, want %q", out, want)
	}
}

func TestASCII_DegenerateSize(t *testing.T) {
	g := mandel.New(10, 11, 10, 11)

	if out := ASCII(g, 0, 10); out != "" {
		t.Errorf("ASCII() with zero cols = %q, want empty", out)
	}
	if out := ASCII(g, 10, -1); out != "" {
		t.Errorf("ASCII() with negative rows = %q, want empty", out)
	}
}
