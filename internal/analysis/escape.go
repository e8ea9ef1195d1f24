package analysis

import (
	"fmt"

	"github.com/pkoster/mandelgrid/internal/mandel"
)

// EscapeTime runs the same bounded iteration as Complex.InSet but reports
// how many updates the point survived. iters is the 1-based update count on
// which the escape radius was exceeded; escaped is false when the budget
// check fired first (the point is classified In), in which case iters is 0.
// The update, escape check, budget check ordering matches the engine, so
// escaped here is always the negation of InSet for the same point and
// budget.
func EscapeTime(c mandel.Complex, budget int) (iters int, escaped bool) {
	z := mandel.Complex{}
	iter := 0
	for n := 1; ; n++ {
		z = z.Square().Plus(c)
		if z.DistSquared() > 4.0 {
			return n, true
		}
		if iter > budget {
			return 0, false
		}
		iter++
	}
}

// EscapeHistogram samples a size×size grid over the region through the
// engine's index mapping and buckets the escape iterations of the points
// that escape within the budget. Points classified In are not counted.
func EscapeHistogram(r mandel.Region, size, budget, bins int) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("sample size must be positive, got %d", size)
	}
	if bins <= 0 {
		return nil, fmt.Errorf("bins must be positive, got %d", bins)
	}
	if !r.Valid() {
		return nil, fmt.Errorf("region bounds are inverted")
	}

	rRange := mandel.NewCoordRange(r.XMin, r.XMax)
	iRange := mandel.NewCoordRange(r.YMin, r.YMax)

	// Escaped points survive at most budget+2 updates, so counts land in
	// [1, budget+2].
	maxIters := budget + 2
	hist := make([]float64, bins)

	for p := 0; p < size*size; p++ {
		c := mandel.RowColFromIndex(p, size, size).ToComplex(rRange, iRange)
		n, escaped := EscapeTime(c, budget)
		if !escaped {
			continue
		}
		bin := (n - 1) * bins / maxIters
		if bin >= bins {
			bin = bins - 1
		}
		hist[bin]++
	}

	return hist, nil
}
