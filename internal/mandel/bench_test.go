package mandel

import "testing"

func BenchmarkInSet_Interior(b *testing.B) {
	c := NewComplex(-0.5, 0.0)
	in := false

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in = c.InSet(IterBudget)
	}
	_ = in
}

func BenchmarkInSet_FastEscape(b *testing.B) {
	c := NewComplex(0.5, 0.0)
	in := false

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		in = c.InSet(IterBudget)
	}
	_ = in
}

func BenchmarkNew_Home(b *testing.B) {
	var g *Grid

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g = NewFromRegion(Home)
	}
	_ = g
}

func BenchmarkNew_Seahorse(b *testing.B) {
	var g *Grid

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g = NewFromRegion(SeahorseValley)
	}
	_ = g
}
