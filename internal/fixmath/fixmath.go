// Package fixmath supplies the widened intermediates and the square
// root primitive backing the Q16.16 geometry types. fixpoint.Q16
// covers the scalar arithmetic; this package adds what the fit needs
// on top: 64-bit products, integer-domain conversions, and a
// shift-and-add square root.
package fixmath

import "github.com/ezmicken/fixpoint"

// fracBits is the number of fractional bits in the Q16.16 format.
const fracBits = 16

// One is the Q16.16 multiplicative identity.
var One = FromInt(1)

// FromRaw builds a Q16.16 value from its raw 16.16 representation.
// The value must fit the 32-bit raw range.
func FromRaw(n int64) fixpoint.Q16 {
	return fixpoint.Q16{N: int32(n)}
}

// Raw returns the raw 16.16 representation of q, widened to 64 bits.
func Raw(q fixpoint.Q16) int64 {
	return int64(q.N)
}

// FromInt converts an integer to Q16.16.
func FromInt(n int64) fixpoint.Q16 {
	return FromRaw(n << fracBits)
}

// Floor returns the integer part of q, rounding toward negative
// infinity.
func Floor(q fixpoint.Q16) int64 {
	return int64(q.N) >> fracBits
}

// Mul returns the Q16.16 product of a and b. The raw product is
// formed in 64 bits so operands near the representable bound cannot
// overflow, then truncated back to 16 fractional bits (floor).
func Mul(a, b fixpoint.Q16) fixpoint.Q16 {
	return FromRaw((int64(a.N) * int64(b.N)) >> fracBits)
}

// Sqrt returns floor(sqrt(v)), computed with the classic shift-and-add
// recurrence: one candidate result bit per iteration, no multiplies or
// divisions. The error is below one unit in the last place, and the
// iteration count is fixed by the operand width, so execution time is
// input-independent.
func Sqrt(v uint64) uint64 {
	var res uint64

	bit := uint64(1) << 62
	for bit > v {
		bit >>= 2
	}

	for bit != 0 {
		if v >= res+bit {
			v -= res + bit
			res = res>>1 + bit
		} else {
			res >>= 1
		}

		bit >>= 2
	}

	return res
}
