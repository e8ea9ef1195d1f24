package mandel

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestGridSuite(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Grid Suite")
}

var _ = Describe("Grid", Ordered, func() {
	var g *Grid

	BeforeAll(func() {
		g = NewFromRegion(Home)
	})

	It("reports the fixed raster dimensions", func() {
		Expect(g.Width()).To(Equal(GridWidth))
		Expect(g.Height()).To(Equal(GridHeight))
	})

	It("fills exactly width*height cells", func() {
		Expect(g.Pixels()).To(HaveLen(g.Width() * g.Height()))
	})

	It("uses only the two classification values", func() {
		invalid := 0
		for _, p := range g.Pixels() {
			if p != In && p != Out {
				invalid++
			}
		}
		Expect(invalid).To(BeZero())
	})

	It("stores pixels row-major by index", func() {
		px := g.Pixels()
		for _, cell := range []struct{ row, col int }{
			{0, 0}, {0, 799}, {300, 200}, {799, 0}, {799, 799},
		} {
			Expect(g.At(cell.row, cell.col)).To(Equal(px[cell.row*g.Width()+cell.col]))
		}
	})

	It("classifies known interior and exterior cells", func() {
		// Home is [-2,1] x [-1.5,1.5], so row 400 is the real axis and
		// col 0 is exactly x = -2, a bounded orbit (-2 -> 2 -> 2 -> ...).
		Expect(g.At(400, 0)).To(Equal(In))
		// Col 533 on the real axis sits a hair left of the origin, deep in
		// the main cardioid.
		Expect(g.At(400, 533)).To(Equal(In))
		// The corner (-2, -1.5) escapes on the first update.
		Expect(g.At(0, 0)).To(Equal(Out))
		// The far right of the real axis (~0.996) escapes within a few.
		Expect(g.At(400, 799)).To(Equal(Out))
	})

	It("is deterministic across constructions", func() {
		again := New(Home.XMin, Home.XMax, Home.YMin, Home.YMax)
		Expect(again.Pixels()).To(Equal(g.Pixels()))
	})
})
