// Package testutil provides shared fixed-point tolerance assertions
// for tests. The square root primitive is exact only to one raw ulp,
// so comparisons against derived values need a small epsilon.
package testutil

import (
	"testing"

	"github.com/ezmicken/fixpoint"

	"github.com/cwbudde/algo-fixgeom/internal/fixmath"
)

// UlpDiff returns the absolute difference between got and want in raw
// 16.16 units.
func UlpDiff(got, want fixpoint.Q16) int64 {
	d := fixmath.Raw(got) - fixmath.Raw(want)
	if d < 0 {
		d = -d
	}

	return d
}

// RequireWithinUlps fails t if got and want differ by more than tol
// raw 16.16 units.
func RequireWithinUlps(t *testing.T, got, want fixpoint.Q16, tol int64) {
	t.Helper()

	if d := UlpDiff(got, want); d > tol {
		t.Fatalf("got %v, want %v (diff %d ulps > tol %d)", got, want, d, tol)
	}
}
