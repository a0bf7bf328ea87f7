package fixed

import (
	"fmt"
	"math"

	"github.com/govalues/arith"
	"github.com/govalues/arith/perthing"
	"lukechampine.com/uint128"
)

var (
	maxAbsI128 = uint128.New(math.MaxUint64, math.MaxInt64) // 2^127 - 1
	minAbsI128 = uint128.New(0, 1<<63)                      // 2^127
)

// FixedI128 is a signed fixed-point number with 18 digits after the
// decimal point and the range of a two's complement 128-bit integer.
// The zero value is the numeric value of 0.
// See [FixedU64] for details.
//
// FixedI128 is a struct with two fields, the sign and the magnitude of the
// inner integer.
// Zero is never negative, so equal numbers are also equal as Go values.
type FixedI128 struct {
	neg bool            // true if the number is negative
	abs uint128.Uint128 // magnitude, at most 2^127
}

// newFixedI128 returns a number with the given sign and magnitude.
// If the number is outside the range of the type, ok is false.
func newFixedI128(neg bool, abs uint128.Uint128) (x FixedI128, ok bool) {
	switch {
	case abs.IsZero():
		return FixedI128{}, true
	case neg && abs.Cmp(minAbsI128) > 0:
		return FixedI128{}, false
	case !neg && abs.Cmp(maxAbsI128) > 0:
		return FixedI128{}, false
	}
	return FixedI128{neg: neg, abs: abs}, true
}

// satI128 returns the bound of the type with the given sign.
func satI128(neg bool) FixedI128 {
	if neg {
		return FixedI128{}.MinValue()
	}
	return FixedI128{}.MaxValue()
}

// mulDivI128 calculates a * b / c for magnitudes and applies the given sign.
// If the result is outside the range of the type, mulDivI128 returns the
// bound with the given sign and [arith.ErrOverflow].
func mulDivI128(neg bool, a, b, c uint128.Uint128, mode arith.Rounding) (FixedI128, error) {
	abs, err := arith.MulDiv128(a, b, c, mode)
	if err != nil {
		return satI128(neg), err
	}
	x, ok := newFixedI128(neg, abs)
	if !ok {
		return satI128(neg), arith.ErrOverflow
	}
	return x, nil
}

// addI128 calculates x + y for numbers given by sign and magnitude.
// The sum can overflow only if both signs are equal.
func addI128(xneg bool, xabs uint128.Uint128, yneg bool, yabs uint128.Uint128) (FixedI128, bool) {
	if xneg == yneg {
		abs, ok := add128(xabs, yabs)
		if !ok {
			return FixedI128{}, false
		}
		return newFixedI128(xneg, abs)
	}
	if xabs.Cmp(yabs) >= 0 {
		return newFixedI128(xneg, xabs.Sub(yabs))
	}
	return newFixedI128(yneg, yabs.Sub(xabs))
}

// FixedI128FromInner returns a number with the given inner integer,
// interpreted as a two's complement bit pattern.
func FixedI128FromInner(inner uint128.Uint128) FixedI128 {
	neg, abs := split128(inner)
	return FixedI128{neg: neg, abs: abs}
}

// FixedI128FromInt returns a number equal to n.
// Every int64 is in the range of the type, so the result is exact.
func FixedI128FromInt(n int64) FixedI128 {
	neg, abs := split64(n)
	return FixedI128{neg: neg, abs: uint128.From64(abs).Mul64(acc128)}
}

// FixedI128FromRational returns a number equal to n / d rounded towards zero.
// FixedI128FromRational panics if d is 0.
func FixedI128FromRational(n, d int64) FixedI128 {
	if d == 0 {
		panic(fmt.Sprintf("FixedI128FromRational(%v, %v) failed: %v", n, d, errDivisionByZero))
	}
	x, _ := FixedI128FromRationalRounding(n, d, arith.RoundDown)
	return x
}

// CheckedFixedI128FromRational returns a number equal to n / d rounded
// towards zero.
// If d is 0, ok is false.
func CheckedFixedI128FromRational(n, d int64) (x FixedI128, ok bool) {
	x, err := FixedI128FromRationalRounding(n, d, arith.RoundDown)
	if err != nil {
		return FixedI128{}, false
	}
	return x, true
}

// FixedI128FromRationalRounding returns a number equal to n / d.
// The magnitude of the result is rounded using the given method.
//
// FixedI128FromRationalRounding returns an error if d is 0.
func FixedI128FromRationalRounding(n, d int64, mode arith.Rounding) (FixedI128, error) {
	if d == 0 {
		return FixedI128{}, fmt.Errorf("converting %v/%v to %T: %w", n, d, FixedI128{}, errDivisionByZero)
	}
	nneg, nabs := split64(n)
	dneg, dabs := split64(d)
	x, err := mulDivI128(nneg != dneg, uint128.From64(nabs), div128, uint128.From64(dabs), mode)
	if err != nil {
		return FixedI128{}, fmt.Errorf("converting %v/%v to %T: %w", n, d, FixedI128{}, err)
	}
	return x, nil
}

// FixedI128FromFraction returns a number equal to f rounded down.
// See [FixedU128FromFraction] for details.
func FixedI128FromFraction(f perthing.Fraction) FixedI128 {
	n, d := uint128.From64(f.Numerator()), uint128.From64(f.Denominator())
	x, _ := mulDivI128(false, n, div128, d, arith.RoundDown) // at most 2^64 * 10^18
	return x
}

// Inner returns the inner integer of x as a two's complement bit pattern.
func (x FixedI128) Inner() uint128.Uint128 {
	return join128(x.neg, x.abs)
}

// Zero returns a number equal to 0.
func (x FixedI128) Zero() FixedI128 {
	return FixedI128{}
}

// One returns a number equal to 1.
func (x FixedI128) One() FixedI128 {
	return FixedI128{abs: div128}
}

// MaxValue returns the largest representable number.
func (x FixedI128) MaxValue() FixedI128 {
	return FixedI128{abs: maxAbsI128}
}

// MinValue returns the smallest representable number.
func (x FixedI128) MinValue() FixedI128 {
	return FixedI128{neg: true, abs: minAbsI128}
}

// Accuracy returns the divisor of the inner integer, 10^18.
func (x FixedI128) Accuracy() uint64 {
	return acc128
}

func (x FixedI128) unitParts() uint64 {
	switch {
	case x.neg:
		return 0
	case x.abs.Cmp(div128) >= 0:
		return acc128
	}
	return x.abs.Lo
}

// IsZero returns true if x == 0.
func (x FixedI128) IsZero() bool {
	return x.abs.IsZero()
}

// IsOne returns true if x == 1.
func (x FixedI128) IsOne() bool {
	return !x.neg && x.abs.Equals(div128)
}

// IsPos returns true if x > 0.
func (x FixedI128) IsPos() bool {
	return !x.neg && !x.abs.IsZero()
}

// IsNeg returns true if x < 0.
func (x FixedI128) IsNeg() bool {
	return x.neg
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x FixedI128) Sign() int {
	switch {
	case x.neg:
		return -1
	case x.abs.IsZero():
		return 0
	}
	return 1
}

// Cmp compares x and y numerically.
// See [FixedU64.Cmp] for details.
func (x FixedI128) Cmp(y FixedI128) int {
	switch {
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case x.neg:
		return y.abs.Cmp(x.abs)
	}
	return x.abs.Cmp(y.abs)
}

// String implements the [fmt.Stringer] interface.
// See [FixedU64.String] for details.
func (x FixedI128) String() string {
	q, r := x.abs.QuoRem64(acc128)
	return format(x.neg, q.String(), r, prec128)
}

// CheckedAdd returns x + y.
// If the sum is outside the range of the type, ok is false.
func (x FixedI128) CheckedAdd(y FixedI128) (z FixedI128, ok bool) {
	return addI128(x.neg, x.abs, y.neg, y.abs)
}

// SaturatingAdd returns x + y, clamped to the range of the type.
func (x FixedI128) SaturatingAdd(y FixedI128) FixedI128 {
	z, ok := x.CheckedAdd(y)
	if !ok {
		return satI128(x.neg)
	}
	return z
}

// CheckedSub returns x - y.
// If the difference is outside the range of the type, ok is false.
func (x FixedI128) CheckedSub(y FixedI128) (z FixedI128, ok bool) {
	return addI128(x.neg, x.abs, !y.neg, y.abs)
}

// SaturatingSub returns x - y, clamped to the range of the type.
func (x FixedI128) SaturatingSub(y FixedI128) FixedI128 {
	z, ok := x.CheckedSub(y)
	if !ok {
		return satI128(x.neg)
	}
	return z
}

// CheckedMul returns x * y rounded towards zero.
// If the product is outside the range of the type, ok is false.
func (x FixedI128) CheckedMul(y FixedI128) (z FixedI128, ok bool) {
	z, err := mulDivI128(x.neg != y.neg, x.abs, y.abs, div128, arith.RoundDown)
	if err != nil {
		return FixedI128{}, false
	}
	return z, true
}

// SaturatingMul returns x * y rounded towards zero, clamped to the range
// of the type.
func (x FixedI128) SaturatingMul(y FixedI128) FixedI128 {
	z, _ := mulDivI128(x.neg != y.neg, x.abs, y.abs, div128, arith.RoundDown)
	return z
}

// CheckedDiv returns x / y rounded towards zero.
// If y is 0 or the quotient is outside the range of the type, ok is false.
func (x FixedI128) CheckedDiv(y FixedI128) (z FixedI128, ok bool) {
	if y.abs.IsZero() {
		return FixedI128{}, false
	}
	z, err := mulDivI128(x.neg != y.neg, x.abs, div128, y.abs, arith.RoundDown)
	if err != nil {
		return FixedI128{}, false
	}
	return z, true
}

// SaturatingDiv returns x / y rounded towards zero, clamped to the range
// of the type.
// SaturatingDiv panics if y is 0.
// To avoid this panic, use the [FixedI128.CheckedDiv].
func (x FixedI128) SaturatingDiv(y FixedI128) FixedI128 {
	if y.abs.IsZero() {
		panic(fmt.Sprintf("%v.SaturatingDiv(%v) failed: %v", x, y, errDivisionByZero))
	}
	z, _ := mulDivI128(x.neg != y.neg, x.abs, div128, y.abs, arith.RoundDown)
	return z
}

// CheckedMulInt returns x * n rounded towards zero.
// If the product is outside the range of int64, ok is false.
func (x FixedI128) CheckedMulInt(n int64) (z int64, ok bool) {
	nneg, nabs := split64(n)
	q, err := arith.MulDiv128(x.abs, uint128.From64(nabs), div128, arith.RoundDown)
	if err != nil || q.Hi != 0 {
		return 0, false
	}
	return join64(x.neg != nneg, q.Lo)
}

// SaturatingMulInt returns x * n rounded towards zero, clamped to the
// range of int64.
func (x FixedI128) SaturatingMulInt(n int64) int64 {
	z, ok := x.CheckedMulInt(n)
	if !ok {
		return sat64(x.neg != (n < 0))
	}
	return z
}

// CheckedDivInt returns x / n rounded towards zero.
// If n is 0 or the quotient is outside the range of int64, ok is false.
func (x FixedI128) CheckedDivInt(n int64) (z int64, ok bool) {
	if n == 0 {
		return 0, false
	}
	nneg, nabs := split64(n)
	q := x.abs.Div64(acc128).Div64(nabs)
	if q.Hi != 0 {
		return 0, false
	}
	return join64(x.neg != nneg, q.Lo)
}

// Reciprocal returns 1 / x rounded towards zero.
// If x is 0, ok is false.
func (x FixedI128) Reciprocal() (z FixedI128, ok bool) {
	return x.One().CheckedDiv(x)
}

// CheckedPow returns x raised to the power of exp.
// See [FixedI64.CheckedPow] for details.
func (x FixedI128) CheckedPow(exp uint) (z FixedI128, ok bool) {
	return checkedPow(x, x.One(), exp, FixedI128.CheckedMul)
}

// SaturatingPow is like [FixedI128.CheckedPow] but clamps the result
// to the range of the type.
func (x FixedI128) SaturatingPow(exp uint) FixedI128 {
	z, ok := x.CheckedPow(exp)
	if !ok {
		return satI128(x.neg && exp&1 != 0)
	}
	return z
}

// CheckedSqrt returns the square root of x rounded down.
// If x is negative, ok is false.
func (x FixedI128) CheckedSqrt() (z FixedI128, ok bool) {
	if x.neg {
		return FixedI128{}, false
	}
	return FixedI128{abs: arith.MulSqrt128(x.abs, div128)}, true
}

// CheckedNeg returns -x.
// If x is [FixedI128.MinValue], ok is false.
func (x FixedI128) CheckedNeg() (z FixedI128, ok bool) {
	if x.abs.IsZero() {
		return x, true
	}
	return newFixedI128(!x.neg, x.abs)
}

// SaturatingNeg returns -x, clamped to [FixedI128.MaxValue].
func (x FixedI128) SaturatingNeg() FixedI128 {
	z, ok := x.CheckedNeg()
	if !ok {
		return x.MaxValue()
	}
	return z
}

// CheckedAbs returns the absolute value of x.
// If x is [FixedI128.MinValue], ok is false.
func (x FixedI128) CheckedAbs() (z FixedI128, ok bool) {
	return newFixedI128(false, x.abs)
}

// SaturatingAbs returns the absolute value of x, clamped to [FixedI128.MaxValue].
func (x FixedI128) SaturatingAbs() FixedI128 {
	z, ok := x.CheckedAbs()
	if !ok {
		return x.MaxValue()
	}
	return z
}

// Trunc returns the integer part of x, rounded towards zero.
func (x FixedI128) Trunc() FixedI128 {
	z, _ := newFixedI128(x.neg, x.abs.Sub64(x.abs.Mod64(acc128)))
	return z
}

// Frac returns the fractional part of x, which has the sign of x.
func (x FixedI128) Frac() FixedI128 {
	z, _ := newFixedI128(x.neg, uint128.From64(x.abs.Mod64(acc128)))
	return z
}

// Floor returns the largest integer less than or equal to x,
// clamped to [FixedI128.MinValue].
func (x FixedI128) Floor() FixedI128 {
	if !x.neg || x.abs.Mod64(acc128) == 0 {
		return x.Trunc()
	}
	return x.Trunc().SaturatingSub(x.One())
}

// Ceil returns the smallest integer greater than or equal to x,
// clamped to [FixedI128.MaxValue].
func (x FixedI128) Ceil() FixedI128 {
	if x.neg || x.abs.Mod64(acc128) == 0 {
		return x.Trunc()
	}
	return x.Trunc().SaturatingAdd(x.One())
}

// Round returns x rounded to the nearest integer, with ties rounded away
// from zero. The result is clamped to the range of the type.
func (x FixedI128) Round() FixedI128 {
	switch {
	case x.abs.Mod64(acc128) < acc128/2:
		return x.Trunc()
	case x.neg:
		return x.Trunc().SaturatingSub(x.One())
	}
	return x.Trunc().SaturatingAdd(x.One())
}
