package arith

import (
	"fmt"

	"golang.org/x/exp/constraints"
	"lukechampine.com/uint128"
)

// MustMulDiv is like [MulDiv] but panics if the quotient overflows.
// It simplifies initialization of constants derived from other constants.
func MustMulDiv[T constraints.Unsigned](a, b, c T, mode Rounding) T {
	q, err := MulDiv(a, b, c, mode)
	if err != nil {
		panic(fmt.Sprintf("MulDiv(%v, %v, %v, %v) failed: %v", a, b, c, mode, err))
	}
	return q
}

// MustMulDiv128 is like [MulDiv128] but panics if the quotient overflows.
func MustMulDiv128(a, b, c uint128.Uint128, mode Rounding) uint128.Uint128 {
	q, err := MulDiv128(a, b, c, mode)
	if err != nil {
		panic(fmt.Sprintf("MulDiv128(%v, %v, %v, %v) failed: %v", a, b, c, mode, err))
	}
	return q
}
