package fixgeom

import (
	"github.com/ezmicken/fixpoint"

	"github.com/cwbudde/algo-fixgeom/internal/fixmath"
)

// Point is a 2-D location with Q16.16 coordinates, as produced by the
// quadrature decoder or derived by arithmetic. It is a plain value:
// operations return new points and never mutate the receiver.
type Point struct {
	X fixpoint.Q16
	Y fixpoint.Q16
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X.Add(q.X), Y: p.Y.Add(q.Y)}
}

// Sub returns the component-wise difference p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X.Sub(q.X), Y: p.Y.Sub(q.Y)}
}

// Scale returns p with both components multiplied by k. The operation
// is closed over the Q16.16 domain; k may be zero or negative.
func (p Point) Scale(k fixpoint.Q16) Point {
	return Point{X: fixmath.Mul(p.X, k), Y: fixmath.Mul(p.Y, k)}
}

// Abs returns the Euclidean norm sqrt(x² + y²). The squares are
// accumulated as Q32.32 values in 64 bits, so coordinates near the
// representable bound do not overflow, and the square root of that
// raw sum is already the Q16.16 norm. The result is exact to one raw
// ulp (floor).
func (p Point) Abs() fixpoint.Q16 {
	xx := fixmath.Raw(p.X) * fixmath.Raw(p.X)
	yy := fixmath.Raw(p.Y) * fixmath.Raw(p.Y)

	return fixmath.FromRaw(int64(fixmath.Sqrt(uint64(xx + yy))))
}
