package mandel

import "testing"

func TestRowColFromIndex(t *testing.T) {
	const width, height = 512, 512

	tests := []struct {
		index    int
		row, col int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{511, 0, 511},
		{512, 1, 0},
		{153800, 300, 200},
	}

	for _, tt := range tests {
		rc := RowColFromIndex(tt.index, width, height)
		if rc.Row != tt.row || rc.Col != tt.col {
			t.Errorf("RowColFromIndex(%d) = (%d, %d), want (%d, %d)",
				tt.index, rc.Row, rc.Col, tt.row, tt.col)
		}
	}
}

func TestRowCol_ToComplex(t *testing.T) {
	rRange := NewCoordRange(-2.0, 1.0)
	iRange := NewCoordRange(-1.5, 1.5)

	// The first pixel lands exactly on the viewport's minimum corner.
	c := RowColFromIndex(0, 512, 512).ToComplex(rRange, iRange)
	if c != NewComplex(-2.0, -1.5) {
		t.Errorf("index 0 maps to %s, want -2 + -1.5i", c)
	}

	// Column drives the real axis, row the imaginary axis.
	mid := RowColFromIndex(256, 512, 512).ToComplex(rRange, iRange)
	if mid.R != -0.5 {
		t.Errorf("half-width column maps to R=%v, want -0.5", mid.R)
	}
	if mid.I != -1.5 {
		t.Errorf("row 0 maps to I=%v, want -1.5", mid.I)
	}
}
