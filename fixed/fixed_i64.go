package fixed

import (
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/arith"
	"github.com/govalues/arith/perthing"
)

// FixedI64 is a signed fixed-point number with 9 digits after the
// decimal point.
// The zero value is the numeric value of 0.
// See [FixedU64] for details.
//
// Multiplication and division round the magnitude of the result,
// so [arith.RoundDown] rounds towards zero.
type FixedI64 struct {
	inner int64
}

// FixedI64FromInner returns a number with the given inner integer.
func FixedI64FromInner(inner int64) FixedI64 {
	return FixedI64{inner: inner}
}

// FixedI64FromInt returns a number equal to n, clamped to the range
// of the type.
func FixedI64FromInt(n int64) FixedI64 {
	inner, _ := mulDiv64(n, div64, 1, arith.RoundDown)
	return FixedI64{inner: inner}
}

// CheckedFixedI64FromInt returns a number equal to n.
// If n is outside the range of the type, ok is false.
func CheckedFixedI64FromInt(n int64) (x FixedI64, ok bool) {
	inner, err := mulDiv64(n, div64, 1, arith.RoundDown)
	if err != nil {
		return FixedI64{}, false
	}
	return FixedI64{inner: inner}, true
}

// FixedI64FromRational returns a number equal to n / d rounded towards zero,
// clamped to the range of the type.
// FixedI64FromRational panics if d is 0.
func FixedI64FromRational(n, d int64) FixedI64 {
	if d == 0 {
		panic(fmt.Sprintf("FixedI64FromRational(%v, %v) failed: %v", n, d, errDivisionByZero))
	}
	inner, _ := mulDiv64(n, div64, d, arith.RoundDown)
	return FixedI64{inner: inner}
}

// CheckedFixedI64FromRational returns a number equal to n / d rounded
// towards zero.
// If d is 0 or the result is outside the range of the type, ok is false.
func CheckedFixedI64FromRational(n, d int64) (x FixedI64, ok bool) {
	x, err := FixedI64FromRationalRounding(n, d, arith.RoundDown)
	if err != nil {
		return FixedI64{}, false
	}
	return x, true
}

// FixedI64FromRationalRounding returns a number equal to n / d.
// The magnitude of the result is rounded using the given method.
//
// FixedI64FromRationalRounding returns an error if:
//   - d is 0;
//   - the result is outside the range of the type.
func FixedI64FromRationalRounding(n, d int64, mode arith.Rounding) (FixedI64, error) {
	if d == 0 {
		return FixedI64{}, fmt.Errorf("converting %v/%v to %T: %w", n, d, FixedI64{}, errDivisionByZero)
	}
	inner, err := mulDiv64(n, div64, d, mode)
	if err != nil {
		return FixedI64{}, fmt.Errorf("converting %v/%v to %T: %w", n, d, FixedI64{}, err)
	}
	return FixedI64{inner: inner}, nil
}

// FixedI64FromFraction returns a number equal to f rounded down.
// See [FixedU64FromFraction] for details.
func FixedI64FromFraction(f perthing.Fraction) FixedI64 {
	inner := arith.SaturatingMulDiv(f.Numerator(), div64, f.Denominator(), arith.RoundDown)
	return FixedI64{inner: int64(min(inner, math.MaxInt64))}
}

// Inner returns the inner integer of x.
func (x FixedI64) Inner() int64 {
	return x.inner
}

// Zero returns a number equal to 0.
func (x FixedI64) Zero() FixedI64 {
	return FixedI64{}
}

// One returns a number equal to 1.
func (x FixedI64) One() FixedI64 {
	return FixedI64{inner: div64}
}

// MaxValue returns the largest representable number.
func (x FixedI64) MaxValue() FixedI64 {
	return FixedI64{inner: math.MaxInt64}
}

// MinValue returns the smallest representable number.
func (x FixedI64) MinValue() FixedI64 {
	return FixedI64{inner: math.MinInt64}
}

// Accuracy returns the divisor of the inner integer, 10^9.
func (x FixedI64) Accuracy() uint64 {
	return div64
}

// unitParts returns the inner integer clamped to [0, Accuracy].
func (x FixedI64) unitParts() uint64 {
	switch {
	case x.inner <= 0:
		return 0
	case x.inner >= div64:
		return div64
	}
	return uint64(x.inner)
}

// IsZero returns true if x == 0.
func (x FixedI64) IsZero() bool {
	return x.inner == 0
}

// IsOne returns true if x == 1.
func (x FixedI64) IsOne() bool {
	return x.inner == div64
}

// IsPos returns true if x > 0.
func (x FixedI64) IsPos() bool {
	return x.inner > 0
}

// IsNeg returns true if x < 0.
func (x FixedI64) IsNeg() bool {
	return x.inner < 0
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x FixedI64) Sign() int {
	switch {
	case x.inner < 0:
		return -1
	case x.inner > 0:
		return 1
	}
	return 0
}

// Cmp compares x and y numerically and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x FixedI64) Cmp(y FixedI64) int {
	switch {
	case x.inner < y.inner:
		return -1
	case x.inner > y.inner:
		return 1
	}
	return 0
}

// String implements the [fmt.Stringer] interface.
// See [FixedU64.String] for details.
func (x FixedI64) String() string {
	neg, abs := split64(x.inner)
	return format(neg, strconv.FormatUint(abs/div64, 10), abs%div64, prec64)
}

// CheckedAdd returns x + y.
// If the sum is outside the range of the type, ok is false.
func (x FixedI64) CheckedAdd(y FixedI64) (z FixedI64, ok bool) {
	s := x.inner + y.inner
	if (s > x.inner) != (y.inner > 0) {
		return FixedI64{}, false
	}
	return FixedI64{inner: s}, true
}

// SaturatingAdd returns x + y, clamped to the range of the type.
func (x FixedI64) SaturatingAdd(y FixedI64) FixedI64 {
	z, ok := x.CheckedAdd(y)
	if !ok {
		return FixedI64{inner: sat64(y.inner < 0)}
	}
	return z
}

// CheckedSub returns x - y.
// If the difference is outside the range of the type, ok is false.
func (x FixedI64) CheckedSub(y FixedI64) (z FixedI64, ok bool) {
	d := x.inner - y.inner
	if (d < x.inner) != (y.inner > 0) {
		return FixedI64{}, false
	}
	return FixedI64{inner: d}, true
}

// SaturatingSub returns x - y, clamped to the range of the type.
func (x FixedI64) SaturatingSub(y FixedI64) FixedI64 {
	z, ok := x.CheckedSub(y)
	if !ok {
		return FixedI64{inner: sat64(y.inner > 0)}
	}
	return z
}

// CheckedMul returns x * y rounded towards zero.
// If the product is outside the range of the type, ok is false.
func (x FixedI64) CheckedMul(y FixedI64) (z FixedI64, ok bool) {
	inner, err := mulDiv64(x.inner, y.inner, div64, arith.RoundDown)
	if err != nil {
		return FixedI64{}, false
	}
	return FixedI64{inner: inner}, true
}

// SaturatingMul returns x * y rounded towards zero, clamped to the range
// of the type.
func (x FixedI64) SaturatingMul(y FixedI64) FixedI64 {
	inner, _ := mulDiv64(x.inner, y.inner, div64, arith.RoundDown)
	return FixedI64{inner: inner}
}

// CheckedDiv returns x / y rounded towards zero.
// If y is 0 or the quotient is outside the range of the type, ok is false.
func (x FixedI64) CheckedDiv(y FixedI64) (z FixedI64, ok bool) {
	if y.inner == 0 {
		return FixedI64{}, false
	}
	inner, err := mulDiv64(x.inner, div64, y.inner, arith.RoundDown)
	if err != nil {
		return FixedI64{}, false
	}
	return FixedI64{inner: inner}, true
}

// SaturatingDiv returns x / y rounded towards zero, clamped to the range
// of the type.
// SaturatingDiv panics if y is 0.
// To avoid this panic, use the [FixedI64.CheckedDiv].
func (x FixedI64) SaturatingDiv(y FixedI64) FixedI64 {
	if y.inner == 0 {
		panic(fmt.Sprintf("%v.SaturatingDiv(%v) failed: %v", x, y, errDivisionByZero))
	}
	inner, _ := mulDiv64(x.inner, div64, y.inner, arith.RoundDown)
	return FixedI64{inner: inner}
}

// SaturatingMulInt returns x * n rounded towards zero, clamped to the
// range of int64.
func (x FixedI64) SaturatingMulInt(n int64) int64 {
	z, _ := mulDiv64(x.inner, n, div64, arith.RoundDown)
	return z
}

// CheckedMulInt returns x * n rounded towards zero.
// If the product is outside the range of int64, ok is false.
func (x FixedI64) CheckedMulInt(n int64) (z int64, ok bool) {
	z, err := mulDiv64(x.inner, n, div64, arith.RoundDown)
	if err != nil {
		return 0, false
	}
	return z, true
}

// CheckedDivInt returns x / n rounded towards zero.
// If n is 0, ok is false.
func (x FixedI64) CheckedDivInt(n int64) (z int64, ok bool) {
	if n == 0 {
		return 0, false
	}
	return x.inner / div64 / n, true
}

// Reciprocal returns 1 / x rounded towards zero.
// If x is 0 or the result is outside the range of the type, ok is false.
func (x FixedI64) Reciprocal() (z FixedI64, ok bool) {
	return x.One().CheckedDiv(x)
}

// CheckedPow returns x raised to the power of exp.
// The result is rounded towards zero after every multiplication.
// If an intermediate result is outside the range of the type, ok is false.
func (x FixedI64) CheckedPow(exp uint) (z FixedI64, ok bool) {
	return checkedPow(x, x.One(), exp, FixedI64.CheckedMul)
}

// SaturatingPow is like [FixedI64.CheckedPow] but clamps the result
// to the range of the type.
func (x FixedI64) SaturatingPow(exp uint) FixedI64 {
	z, ok := x.CheckedPow(exp)
	if !ok {
		return FixedI64{inner: sat64(x.inner < 0 && exp&1 != 0)}
	}
	return z
}

// CheckedSqrt returns the square root of x rounded down.
// If x is negative, ok is false.
func (x FixedI64) CheckedSqrt() (z FixedI64, ok bool) {
	if x.inner < 0 {
		return FixedI64{}, false
	}
	return FixedI64{inner: int64(arith.MulSqrt(uint64(x.inner), div64))}, true
}

// CheckedNeg returns -x.
// If x is [FixedI64.MinValue], ok is false.
func (x FixedI64) CheckedNeg() (z FixedI64, ok bool) {
	if x.inner == math.MinInt64 {
		return FixedI64{}, false
	}
	return FixedI64{inner: -x.inner}, true
}

// SaturatingNeg returns -x, clamped to [FixedI64.MaxValue].
func (x FixedI64) SaturatingNeg() FixedI64 {
	z, ok := x.CheckedNeg()
	if !ok {
		return x.MaxValue()
	}
	return z
}

// CheckedAbs returns the absolute value of x.
// If x is [FixedI64.MinValue], ok is false.
func (x FixedI64) CheckedAbs() (z FixedI64, ok bool) {
	if x.inner >= 0 {
		return x, true
	}
	return x.CheckedNeg()
}

// SaturatingAbs returns the absolute value of x, clamped to [FixedI64.MaxValue].
func (x FixedI64) SaturatingAbs() FixedI64 {
	z, ok := x.CheckedAbs()
	if !ok {
		return x.MaxValue()
	}
	return z
}

// Trunc returns the integer part of x, rounded towards zero.
func (x FixedI64) Trunc() FixedI64 {
	return FixedI64{inner: x.inner - x.inner%div64}
}

// Frac returns the fractional part of x, which has the sign of x.
func (x FixedI64) Frac() FixedI64 {
	return FixedI64{inner: x.inner % div64}
}

// Floor returns the largest integer less than or equal to x,
// clamped to [FixedI64.MinValue].
func (x FixedI64) Floor() FixedI64 {
	if x.inner%div64 >= 0 {
		return x.Trunc()
	}
	return x.Trunc().SaturatingSub(x.One())
}

// Ceil returns the smallest integer greater than or equal to x,
// clamped to [FixedI64.MaxValue].
func (x FixedI64) Ceil() FixedI64 {
	if x.inner%div64 <= 0 {
		return x.Trunc()
	}
	return x.Trunc().SaturatingAdd(x.One())
}

// Round returns x rounded to the nearest integer, with ties rounded away
// from zero. The result is clamped to the range of the type.
func (x FixedI64) Round() FixedI64 {
	r := x.inner % div64
	switch {
	case r >= div64/2:
		return x.Trunc().SaturatingAdd(x.One())
	case r <= -div64/2:
		return x.Trunc().SaturatingSub(x.One())
	}
	return x.Trunc()
}
