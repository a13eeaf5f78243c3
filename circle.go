package fixgeom

import (
	"github.com/ezmicken/fixpoint"

	"github.com/cwbudde/algo-fixgeom/internal/fixmath"
)

// Circle is a center and radius with Q16.16 components. R is
// non-negative by convention; nothing enforces it structurally.
// Like Point it is an immutable value type. The center reuses point
// algebra internally; Circle and Point share no common base type.
type Circle struct {
	X fixpoint.Q16
	Y fixpoint.Q16
	R fixpoint.Q16
}

// Translate returns c with its center shifted by p. The radius is
// unchanged.
func (c Circle) Translate(p Point) Circle {
	return Circle{X: c.X.Add(p.X), Y: c.Y.Add(p.Y), R: c.R}
}

// Blend advances an exponential filter one step from c toward next:
// every component of the result is c*(1-alpha) + next*alpha. With
// alpha = 0 the result is c; with alpha = 1 it is next exactly.
//
// alpha is expected in [0, 1]. Values outside that range are not
// clamped: the formula still evaluates, but it extrapolates rather
// than interpolates and the result diverges from both inputs.
func (c Circle) Blend(next Circle, alpha fixpoint.Q16) Circle {
	keep := fixmath.One.Sub(alpha)

	return Circle{
		X: fixmath.Mul(c.X, keep).Add(fixmath.Mul(next.X, alpha)),
		Y: fixmath.Mul(c.Y, keep).Add(fixmath.Mul(next.Y, alpha)),
		R: fixmath.Mul(c.R, keep).Add(fixmath.Mul(next.R, alpha)),
	}
}
