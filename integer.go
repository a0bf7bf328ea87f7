package arith

import (
	"fmt"

	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// wint (Wide INTeger) is a 256-bit double-width companion of a 128-bit integer.
type wint = uint256.Int

// widen converts x to a 256-bit integer.
func widen(x uint128.Uint128) wint {
	return wint{x.Lo, x.Hi, 0, 0}
}

// narrow converts z to a 128-bit integer.
// If z cannot be represented as a 128-bit integer, ok is false.
func narrow(z *wint) (x uint128.Uint128, ok bool) {
	if z[2] != 0 || z[3] != 0 {
		return uint128.Zero, false
	}
	return uint128.New(z[0], z[1]), true
}

// MulDiv128 is like [MulDiv] but for 128-bit operands.
// The product a * b is computed at 256 bits and never overflows.
//
// MulDiv128 returns [ErrOverflow] if the rounded quotient does not fit 128 bits.
// MulDiv128 panics if c is 0.
func MulDiv128(a, b, c uint128.Uint128, mode Rounding) (uint128.Uint128, error) {
	if c.IsZero() {
		panic(fmt.Sprintf("MulDiv128(%v, %v, %v) failed: division by zero", a, b, c))
	}
	// Special cases
	if a.IsZero() || b.IsZero() {
		return uint128.Zero, nil
	}
	// General case
	x, y, z := widen(a), widen(b), widen(c)
	var p, q, r wint
	p.Mul(&x, &y)
	q.DivMod(&p, &z, &r)
	quo, ok := narrow(&q)
	if !ok {
		return uint128.Zero, ErrOverflow
	}
	rem, _ := narrow(&r) // r < c
	if roundsUp128(quo, rem, c, mode) {
		quo = quo.AddWrap64(1)
		if quo.IsZero() {
			return uint128.Zero, ErrOverflow
		}
	}
	return quo, nil
}

// SaturatingMulDiv128 is like [MulDiv128] but returns the maximum 128-bit
// value instead of an overflow error.
func SaturatingMulDiv128(a, b, c uint128.Uint128, mode Rounding) uint128.Uint128 {
	q, err := MulDiv128(a, b, c, mode)
	if err != nil {
		return uint128.Max
	}
	return q
}

// roundsUp128 is like roundsUp but for 128-bit operands.
func roundsUp128(q, r, c uint128.Uint128, mode Rounding) bool {
	// Special cases
	if r.IsZero() {
		return false
	}
	// General case
	one, two := uint128.From64(1), uint128.From64(2)
	switch mode {
	case RoundUp:
		return true
	case RoundHalfUp:
		return Compare128(r, c, one, two) >= 0
	case RoundHalfEven:
		switch Compare128(r, c, one, two) {
		case 1:
			return true
		case 0:
			return q.Lo&1 != 0
		}
	}
	return false
}

// MulSqrt returns ⌊√(a * b)⌋.
// The product a * b is computed at double width and never overflows.
// The root is found with integer Newton iterations, floating-point
// arithmetic is not involved.
func MulSqrt(a, b uint64) uint64 {
	// Special cases
	if a == 0 || b == 0 {
		return 0
	}
	// General case
	var x, y, p, s wint
	x.SetUint64(a)
	y.SetUint64(b)
	p.Mul(&x, &y)
	s.Sqrt(&p)
	return s[0]
}

// MulSqrt128 is like [MulSqrt] but for 128-bit operands.
func MulSqrt128(a, b uint128.Uint128) uint128.Uint128 {
	// Special cases
	if a.IsZero() || b.IsZero() {
		return uint128.Zero
	}
	// General case
	x, y := widen(a), widen(b)
	var p, s wint
	p.Mul(&x, &y)
	s.Sqrt(&p)
	z, _ := narrow(&s) // √(2^256) = 2^128
	return z
}
