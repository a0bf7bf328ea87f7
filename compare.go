package arith

import (
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// Compare compares fractions n1 / d1 and n2 / d2 and returns:
//
//	-1 if n1 / d1 < n2 / d2
//	 0 if n1 / d1 = n2 / d2
//	+1 if n1 / d1 > n2 / d2
//
// Cross products n1 * d2 and n2 * d1 are computed at 128 bits.
// Compare panics if d1 or d2 is 0.
func Compare[T constraints.Unsigned](n1, d1, n2, d2 T) int {
	if d1 == 0 || d2 == 0 {
		panic(fmt.Sprintf("Compare(%v, %v, %v, %v) failed: zero denominator", n1, d1, n2, d2))
	}
	xhi, xlo := bits.Mul64(uint64(n1), uint64(d2))
	yhi, ylo := bits.Mul64(uint64(n2), uint64(d1))
	switch {
	case xhi < yhi:
		return -1
	case xhi > yhi:
		return 1
	case xlo < ylo:
		return -1
	case xlo > ylo:
		return 1
	}
	return 0
}

// ratio is an unreduced fraction n / d.
type ratio struct {
	n, d uint128.Uint128
}

// split returns the integer part and the remainder of x.
func (x ratio) split() (q, r uint128.Uint128) {
	return x.n.QuoRem(x.d)
}

// Compare128 is like [Compare] but for 128-bit operands.
// Cross products of 128-bit operands need 256 bits, so instead the fractions
// are compared by incremental long division: integer parts are compared
// first, and ties continue with the reciprocals of the remainders.
// The loop performs at most as many steps as the Euclidean algorithm on
// the denominators.
//
// Compare128 panics if d1 or d2 is 0.
func Compare128(n1, d1, n2, d2 uint128.Uint128) int {
	if d1.IsZero() || d2.IsZero() {
		panic(fmt.Sprintf("Compare128(%v, %v, %v, %v) failed: zero denominator", n1, d1, n2, d2))
	}
	x, y := ratio{n: n1, d: d1}, ratio{n: n2, d: d2}
	sign := 1
	for {
		xq, xr := x.split()
		yq, yr := y.split()
		if c := xq.Cmp(yq); c != 0 {
			return sign * c
		}
		switch {
		case xr.IsZero() && yr.IsZero():
			return 0
		case xr.IsZero():
			return -sign
		case yr.IsZero():
			return sign
		}
		// xr / x.d ? yr / y.d is the reverse of x.d / xr ? y.d / yr
		x, y = ratio{n: x.d, d: xr}, ratio{n: y.d, d: yr}
		sign = -sign
	}
}
