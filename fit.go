package fixgeom

import (
	"errors"

	"github.com/cwbudde/algo-fixgeom/internal/fixmath"
)

var (
	// ErrCollinear is returned when the three samples lie on a line
	// (or coincide), so no finite circle passes through all of them.
	ErrCollinear = errors.New("fixgeom: collinear samples")

	// ErrNegativeRadicand is returned when the squared radius comes
	// out negative. The fit never clamps; the caller decides how to
	// treat a degenerate estimate.
	ErrNegativeRadicand = errors.New("fixgeom: negative squared radius")
)

// FitCircle returns the unique circle through three non-collinear
// samples, using the closed-form determinant solution (no iteration).
//
// Coordinates are reduced to their integer parts (floor) on entry, so
// the fit operates on whole decoder counts. Every squared term, cross
// product and sum is carried in a 64-bit integer domain; the two
// divisions happen once the sums are reduced, and only the final
// center and radius are narrowed back to Q16.16.
//
// Collinear samples make both denominators zero; FitCircle detects
// this before dividing and returns ErrCollinear. If the squared
// radius is negative the fit returns ErrNegativeRadicand rather than
// handing a negative operand to the square root. With exact integer
// intermediates the radicand is algebraically a sum of squares, so
// that guard only trips on coordinate ranges large enough to overflow
// the widened domain.
func FitCircle(samples [3]Point) (Circle, error) {
	x1 := fixmath.Floor(samples[0].X)
	y1 := fixmath.Floor(samples[0].Y)
	x2 := fixmath.Floor(samples[1].X)
	y2 := fixmath.Floor(samples[1].Y)
	x3 := fixmath.Floor(samples[2].X)
	y3 := fixmath.Floor(samples[2].Y)

	x12 := x1 - x2
	x13 := x1 - x3
	y12 := y1 - y2
	y13 := y1 - y3

	x31 := x3 - x1
	x21 := x2 - x1
	y31 := y3 - y1
	y21 := y2 - y1

	sx13 := x1*x1 - x3*x3
	sy13 := y1*y1 - y3*y3
	sx21 := x2*x2 - x1*x1
	sy21 := y2*y2 - y1*y1

	denF := 2 * (y31*x12 - y21*x13)
	denG := 2 * (x31*y12 - x21*y13)

	if denF == 0 || denG == 0 {
		return Circle{}, ErrCollinear
	}

	f := (sx13*x12 + sy13*x12 + sx21*x13 + sy21*x13) / denF
	g := (sx13*y12 + sy13*y12 + sx21*y13 + sy21*y13) / denG

	// x² + y² + 2gx + 2fy + c = 0 evaluated at the first sample.
	c := -x1*x1 - y1*y1 - 2*g*x1 - 2*f*y1

	sqrOfR := g*g + f*f - c
	if sqrOfR < 0 {
		return Circle{}, ErrNegativeRadicand
	}

	return Circle{
		X: fixmath.FromInt(-g),
		Y: fixmath.FromInt(-f),
		R: fixmath.FromInt(int64(fixmath.Sqrt(uint64(sqrOfR)))),
	}, nil
}
