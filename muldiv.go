package arith

import (
	"errors"
	"fmt"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Rounding is a method of rounding the quotient of an inexact division.
type Rounding uint8

const (
	RoundDown     Rounding = iota // discard remainder (floor)
	RoundUp                       // round up if remainder is not zero (ceiling)
	RoundHalfUp                   // round to nearest, ties away from zero
	RoundHalfEven                 // round to nearest, ties to even
)

// String implements the [fmt.Stringer] interface.
func (r Rounding) String() string {
	switch r {
	case RoundDown:
		return "RoundDown"
	case RoundUp:
		return "RoundUp"
	case RoundHalfUp:
		return "RoundHalfUp"
	case RoundHalfEven:
		return "RoundHalfEven"
	}
	return fmt.Sprintf("Rounding(%d)", uint8(r))
}

// ErrOverflow is returned when the mathematical result of an operation
// does not fit the width of its operands.
var ErrOverflow = errors.New("arith: overflow")

// maxOf returns the maximum value of T.
func maxOf[T constraints.Unsigned]() T {
	return ^T(0)
}

// MulDiv returns a * b / c rounded using the given method.
// The product a * b is computed at double width and never overflows.
//
// MulDiv returns [ErrOverflow] if the rounded quotient does not fit T.
// MulDiv panics if c is 0.
func MulDiv[T constraints.Unsigned](a, b, c T, mode Rounding) (T, error) {
	if c == 0 {
		panic(fmt.Sprintf("MulDiv(%v, %v, %v) failed: division by zero", a, b, c))
	}
	// Special cases
	if a == 0 || b == 0 {
		return 0, nil
	}
	// General case
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(c) {
		return 0, ErrOverflow
	}
	q, r := bits.Div64(hi, lo, uint64(c))
	if roundsUp(q, r, uint64(c), mode) {
		q++
		if q == 0 {
			return 0, ErrOverflow
		}
	}
	if q > uint64(maxOf[T]()) {
		return 0, ErrOverflow
	}
	return T(q), nil
}

// MulDivRem returns q = ⌊a * b / c⌋ and r = a * b - c * q.
//
// MulDivRem returns [ErrOverflow] if q does not fit T.
// MulDivRem panics if c is 0.
func MulDivRem[T constraints.Unsigned](a, b, c T) (q, r T, err error) {
	if c == 0 {
		panic(fmt.Sprintf("MulDivRem(%v, %v, %v) failed: division by zero", a, b, c))
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi >= uint64(c) {
		return 0, 0, ErrOverflow
	}
	quo, rem := bits.Div64(hi, lo, uint64(c))
	if quo > uint64(maxOf[T]()) {
		return 0, 0, ErrOverflow
	}
	return T(quo), T(rem), nil
}

// SaturatingMulDiv is like [MulDiv] but returns the maximum value of T
// instead of an overflow error.
func SaturatingMulDiv[T constraints.Unsigned](a, b, c T, mode Rounding) T {
	q, err := MulDiv(a, b, c, mode)
	if err != nil {
		return maxOf[T]()
	}
	return q
}

// roundsUp reports whether the quotient q with remainder r of division by c
// has to be incremented according to the rounding method.
func roundsUp(q, r, c uint64, mode Rounding) bool {
	// Special cases
	if r == 0 {
		return false
	}
	// General case
	switch mode {
	case RoundUp:
		return true
	case RoundHalfUp:
		return Compare(r, c, 1, 2) >= 0
	case RoundHalfEven:
		switch Compare(r, c, 1, 2) {
		case 1:
			return true
		case 0:
			return q&1 != 0
		}
	}
	return false
}
