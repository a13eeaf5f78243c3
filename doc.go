// Package fixgeom provides the fixed-point geometry kernel of a
// quadrature distance-measurement pipeline: it turns three decoded
// position samples into an estimated circle (center and radius) and
// smooths successive estimates with an exponential filter.
//
// All coordinates and results are signed Q16.16 fixed-point values
// (fixpoint.Q16). Intermediate squares and cross products are formed
// in a widened 64-bit integer domain so that operands near the
// representable bound cannot overflow; results are narrowed back to
// Q16.16 before the final square root. The square root itself is an
// iterative shift-and-add approximation, exact to one raw ulp.
//
// Every operation is a pure function over value types: no allocation,
// no shared state, and bounded execution time, so calls are safe from
// any execution context including interrupt handlers.
//
// # Usage
//
// Fit a circle through three samples and fold it into a running
// estimate:
//
//	c, err := fixgeom.FitCircle(samples)
//	if err != nil {
//	    // collinear samples, keep the previous estimate
//	}
//	estimate = estimate.Blend(c, alpha)
//
// FitCircle reports ErrCollinear instead of dividing by zero when the
// three samples lie on a line, and ErrNegativeRadicand instead of
// taking the square root of a negative operand.
package fixgeom
