package mandel

// CoordRange is a closed interval [min, max] along one axis of the complex
// plane. Immutable after construction.
type CoordRange struct {
	min, max float64
}

// NewCoordRange panics if min > max; an inverted interval is a caller bug,
// not a recoverable condition. NaN and Inf bounds are not rejected and
// propagate through the arithmetic.
func NewCoordRange(min, max float64) CoordRange {
	if min > max {
		panic("coord range: min > max")
	}
	return CoordRange{min: min, max: max}
}

// Size returns max - min.
func (r CoordRange) Size() float64 { return r.max - r.min }

// At maps a normalized position along the interval to an absolute
// coordinate: min + portion*Size(). Portions outside [0, 1] extrapolate;
// there is no clamping.
func (r CoordRange) At(portion float64) float64 {
	return portion*r.Size() + r.min
}
