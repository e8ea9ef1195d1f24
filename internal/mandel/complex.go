package mandel

import "fmt"

// Complex carries the arithmetic needed by the escape-time iteration. It is
// an immutable value type: every operation returns a new value.
type Complex struct {
	R, I float64
}

func NewComplex(r, i float64) Complex {
	return Complex{R: r, I: i}
}

// Square returns the complex square (r²-i², 2ri).
func (c Complex) Square() Complex {
	return Complex{
		R: c.R*c.R - c.I*c.I,
		I: 2.0 * c.R * c.I,
	}
}

// Plus returns the component-wise sum of c and other.
func (c Complex) Plus(other Complex) Complex {
	return Complex{R: c.R + other.R, I: c.I + other.I}
}

// DistSquared returns the squared magnitude r²+i², avoiding the square root
// a true distance would need.
func (c Complex) DistSquared() float64 {
	return c.R*c.R + c.I*c.I
}

func (c Complex) String() string {
	return fmt.Sprintf("%g + %gi", c.R, c.I)
}

// InSet reports whether c stays bounded under z = z² + c within the given
// iteration budget. Each pass applies the update, tests the escape radius
// (squared magnitude above 4.0), and only then tests the budget with a
// strict comparison. That ordering is part of the classification contract:
// a point is deemed in the set only after the counter passes the budget
// with no escape, so the loop runs past the nominal budget before deciding.
func (c Complex) InSet(budget int) bool {
	z := Complex{}
	iter := 0
	for {
		z = z.Square().Plus(c)
		if z.DistSquared() > 4.0 {
			return false
		}
		if iter > budget {
			return true
		}
		iter++
	}
}
