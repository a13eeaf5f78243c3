package fixgeom

import (
	"testing"

	"github.com/ezmicken/fixpoint"
)

func BenchmarkFitCircle(b *testing.B) {
	samples := [3]Point{pt(5, 2), pt(2, 5), pt(-1, 2)}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := FitCircle(samples); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCircleBlend(b *testing.B) {
	target := circ(2000, 2000, 2000)
	alpha := fixpoint.Q16FromFloat(0.5)
	estimate := circ(0, 0, 0)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		estimate = estimate.Blend(target, alpha)
	}

	_ = estimate
}

func BenchmarkPointAbs(b *testing.B) {
	p := pt(3, 4)

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = p.Abs()
	}
}
