package fixed

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/arith"
	"github.com/govalues/arith/perthing"
)

// FixedU64 is an unsigned fixed-point number with 9 digits after the
// decimal point.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// FixedU64 is a struct with a single field, the inner integer.
// The value of FixedU64 is calculated as inner / 10^9.
// Arithmetic never wraps around: saturating methods clamp results to
// the range of the type, checked methods return false.
type FixedU64 struct {
	inner uint64
}

// FixedU64FromInner returns a number with the given inner integer.
// Together with [FixedU64.Inner] it is intended for binary codecs,
// the round trip is exact.
func FixedU64FromInner(inner uint64) FixedU64 {
	return FixedU64{inner: inner}
}

// FixedU64FromInt returns a number equal to n.
// If n is greater than the integer part of [FixedU64.MaxValue],
// the result is clamped to [FixedU64.MaxValue].
// Also see method [CheckedFixedU64FromInt].
func FixedU64FromInt(n uint64) FixedU64 {
	x, ok := CheckedFixedU64FromInt(n)
	if !ok {
		return FixedU64{}.MaxValue()
	}
	return x
}

// CheckedFixedU64FromInt returns a number equal to n.
// If n is greater than the integer part of [FixedU64.MaxValue], ok is false.
func CheckedFixedU64FromInt(n uint64) (x FixedU64, ok bool) {
	inner, err := arith.MulDiv(n, div64, 1, arith.RoundDown)
	if err != nil {
		return FixedU64{}, false
	}
	return FixedU64{inner: inner}, true
}

// FixedU64FromRational returns a number equal to n / d rounded down.
// If the result is greater than [FixedU64.MaxValue], it is clamped.
// FixedU64FromRational panics if d is 0.
func FixedU64FromRational(n, d uint64) FixedU64 {
	if d == 0 {
		panic(fmt.Sprintf("FixedU64FromRational(%v, %v) failed: %v", n, d, errDivisionByZero))
	}
	return FixedU64{inner: arith.SaturatingMulDiv(n, div64, d, arith.RoundDown)}
}

// CheckedFixedU64FromRational returns a number equal to n / d rounded down.
// If d is 0 or the result is greater than [FixedU64.MaxValue], ok is false.
func CheckedFixedU64FromRational(n, d uint64) (x FixedU64, ok bool) {
	x, err := FixedU64FromRationalRounding(n, d, arith.RoundDown)
	if err != nil {
		return FixedU64{}, false
	}
	return x, true
}

// FixedU64FromRationalRounding returns a number equal to n / d, rounded
// using the given method.
//
// FixedU64FromRationalRounding returns an error if:
//   - d is 0;
//   - the result is greater than [FixedU64.MaxValue].
func FixedU64FromRationalRounding(n, d uint64, mode arith.Rounding) (FixedU64, error) {
	if d == 0 {
		return FixedU64{}, fmt.Errorf("converting %v/%v to %T: %w", n, d, FixedU64{}, errDivisionByZero)
	}
	inner, err := arith.MulDiv(n, div64, d, mode)
	if err != nil {
		return FixedU64{}, fmt.Errorf("converting %v/%v to %T: %w", n, d, FixedU64{}, err)
	}
	return FixedU64{inner: inner}, nil
}

// FixedU64FromFraction returns a number equal to f rounded down.
// The conversion is exact if the denominator of f divides 10^9,
// as for [perthing.Permill] and [perthing.Perbill].
// FixedU64FromFraction panics if the denominator of f is 0.
func FixedU64FromFraction(f perthing.Fraction) FixedU64 {
	return FixedU64{inner: arith.SaturatingMulDiv(f.Numerator(), div64, f.Denominator(), arith.RoundDown)}
}

// Inner returns the inner integer of x.
func (x FixedU64) Inner() uint64 {
	return x.inner
}

// Zero returns a number equal to 0.
func (x FixedU64) Zero() FixedU64 {
	return FixedU64{}
}

// One returns a number equal to 1.
func (x FixedU64) One() FixedU64 {
	return FixedU64{inner: div64}
}

// MaxValue returns the largest representable number.
func (x FixedU64) MaxValue() FixedU64 {
	return FixedU64{inner: math.MaxUint64}
}

// MinValue returns the smallest representable number.
func (x FixedU64) MinValue() FixedU64 {
	return FixedU64{}
}

// Accuracy returns the divisor of the inner integer, 10^9.
func (x FixedU64) Accuracy() uint64 {
	return div64
}

// unitParts returns the inner integer clamped to [0, Accuracy].
func (x FixedU64) unitParts() uint64 {
	return min(x.inner, div64)
}

// IsZero returns true if x == 0.
func (x FixedU64) IsZero() bool {
	return x.inner == 0
}

// IsOne returns true if x == 1.
func (x FixedU64) IsOne() bool {
	return x.inner == div64
}

// IsPos returns true if x > 0.
func (x FixedU64) IsPos() bool {
	return x.inner != 0
}

// Sign returns:
//
//	0 if x = 0
//	1 if x > 0
func (x FixedU64) Sign() int {
	if x.inner == 0 {
		return 0
	}
	return 1
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x FixedU64) Cmp(y FixedU64) int {
	switch {
	case x.inner < y.inner:
		return -1
	case x.inner > y.inner:
		return 1
	}
	return 0
}

// String implements the [fmt.Stringer] interface and returns a string
// representation with all 9 digits after the decimal point.
// It is intended for debugging.
func (x FixedU64) String() string {
	return format(false, strconv.FormatUint(x.inner/div64, 10), x.inner%div64, prec64)
}

// CheckedAdd returns x + y.
// If the sum is greater than [FixedU64.MaxValue], ok is false.
func (x FixedU64) CheckedAdd(y FixedU64) (z FixedU64, ok bool) {
	if math.MaxUint64-x.inner < y.inner {
		return FixedU64{}, false
	}
	return FixedU64{inner: x.inner + y.inner}, true
}

// SaturatingAdd returns x + y, clamped to [FixedU64.MaxValue].
func (x FixedU64) SaturatingAdd(y FixedU64) FixedU64 {
	z, ok := x.CheckedAdd(y)
	if !ok {
		return x.MaxValue()
	}
	return z
}

// CheckedSub returns x - y.
// If the difference is negative, ok is false.
func (x FixedU64) CheckedSub(y FixedU64) (z FixedU64, ok bool) {
	if x.inner < y.inner {
		return FixedU64{}, false
	}
	return FixedU64{inner: x.inner - y.inner}, true
}

// SaturatingSub returns x - y, clamped to 0.
func (x FixedU64) SaturatingSub(y FixedU64) FixedU64 {
	z, ok := x.CheckedSub(y)
	if !ok {
		return FixedU64{}
	}
	return z
}

// CheckedMul returns x * y rounded down.
// If the product is greater than [FixedU64.MaxValue], ok is false.
func (x FixedU64) CheckedMul(y FixedU64) (z FixedU64, ok bool) {
	inner, err := arith.MulDiv(x.inner, y.inner, div64, arith.RoundDown)
	if err != nil {
		return FixedU64{}, false
	}
	return FixedU64{inner: inner}, true
}

// SaturatingMul returns x * y rounded down, clamped to [FixedU64.MaxValue].
func (x FixedU64) SaturatingMul(y FixedU64) FixedU64 {
	return FixedU64{inner: arith.SaturatingMulDiv(x.inner, y.inner, div64, arith.RoundDown)}
}

// CheckedDiv returns x / y rounded down.
// If y is 0 or the quotient is greater than [FixedU64.MaxValue], ok is false.
func (x FixedU64) CheckedDiv(y FixedU64) (z FixedU64, ok bool) {
	if y.inner == 0 {
		return FixedU64{}, false
	}
	inner, err := arith.MulDiv(x.inner, div64, y.inner, arith.RoundDown)
	if err != nil {
		return FixedU64{}, false
	}
	return FixedU64{inner: inner}, true
}

// SaturatingDiv returns x / y rounded down, clamped to [FixedU64.MaxValue].
// SaturatingDiv panics if y is 0.
// To avoid this panic, use the [FixedU64.CheckedDiv].
func (x FixedU64) SaturatingDiv(y FixedU64) FixedU64 {
	if y.inner == 0 {
		panic(fmt.Sprintf("%v.SaturatingDiv(%v) failed: %v", x, y, errDivisionByZero))
	}
	return FixedU64{inner: arith.SaturatingMulDiv(x.inner, div64, y.inner, arith.RoundDown)}
}

// SaturatingMulInt returns ⌊x * n⌋, clamped to [math.MaxUint64].
func (x FixedU64) SaturatingMulInt(n uint64) uint64 {
	return arith.SaturatingMulDiv(x.inner, n, div64, arith.RoundDown)
}

// CheckedMulInt returns ⌊x * n⌋.
// If the product is greater than [math.MaxUint64], ok is false.
func (x FixedU64) CheckedMulInt(n uint64) (z uint64, ok bool) {
	z, err := arith.MulDiv(x.inner, n, div64, arith.RoundDown)
	if err != nil {
		return 0, false
	}
	return z, true
}

// CheckedDivInt returns ⌊x / n⌋.
// If n is 0, ok is false.
func (x FixedU64) CheckedDivInt(n uint64) (z uint64, ok bool) {
	if n == 0 {
		return 0, false
	}
	return x.inner / div64 / n, true
}

// Reciprocal returns 1 / x rounded down.
// If x is 0 or the result is greater than [FixedU64.MaxValue], ok is false.
func (x FixedU64) Reciprocal() (z FixedU64, ok bool) {
	return x.One().CheckedDiv(x)
}

// CheckedPow returns x raised to the power of exp.
// The result is rounded down after every multiplication.
// If an intermediate result is greater than [FixedU64.MaxValue], ok is false.
func (x FixedU64) CheckedPow(exp uint) (z FixedU64, ok bool) {
	return checkedPow(x, x.One(), exp, FixedU64.CheckedMul)
}

// SaturatingPow is like [FixedU64.CheckedPow] but clamps the result
// to [FixedU64.MaxValue].
func (x FixedU64) SaturatingPow(exp uint) FixedU64 {
	z, ok := x.CheckedPow(exp)
	if !ok {
		return x.MaxValue()
	}
	return z
}

// Sqrt returns the square root of x rounded down.
// The root of the inner integer scaled by 10^9 is calculated with integer
// arithmetic only.
func (x FixedU64) Sqrt() FixedU64 {
	return FixedU64{inner: arith.MulSqrt(x.inner, div64)}
}

// Trunc returns the integer part of x.
func (x FixedU64) Trunc() FixedU64 {
	return FixedU64{inner: x.inner - x.inner%div64}
}

// Frac returns the fractional part of x.
func (x FixedU64) Frac() FixedU64 {
	return FixedU64{inner: x.inner % div64}
}

// Floor returns the largest integer less than or equal to x.
func (x FixedU64) Floor() FixedU64 {
	return x.Trunc()
}

// Ceil returns the smallest integer greater than or equal to x,
// clamped to [FixedU64.MaxValue].
func (x FixedU64) Ceil() FixedU64 {
	if x.inner%div64 == 0 {
		return x
	}
	return x.Trunc().SaturatingAdd(x.One())
}

// Round returns x rounded to the nearest integer, with ties rounded away
// from zero. The result is clamped to [FixedU64.MaxValue].
func (x FixedU64) Round() FixedU64 {
	if x.inner%div64 < div64/2 {
		return x.Trunc()
	}
	return x.Trunc().SaturatingAdd(x.One())
}
