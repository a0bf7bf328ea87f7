package fixed

import (
	"fmt"

	"github.com/govalues/arith"
	"github.com/govalues/arith/perthing"
	"lukechampine.com/uint128"
)

// FixedU128 is an unsigned fixed-point number with 18 digits after the
// decimal point, backed by a 128-bit integer.
// The zero value is the numeric value of 0.
// See [FixedU64] for details.
type FixedU128 struct {
	inner uint128.Uint128
}

// FixedU128FromInner returns a number with the given inner integer.
func FixedU128FromInner(inner uint128.Uint128) FixedU128 {
	return FixedU128{inner: inner}
}

// FixedU128FromInt returns a number equal to n, clamped to [FixedU128.MaxValue].
func FixedU128FromInt(n uint128.Uint128) FixedU128 {
	x, ok := CheckedFixedU128FromInt(n)
	if !ok {
		return FixedU128{}.MaxValue()
	}
	return x
}

// CheckedFixedU128FromInt returns a number equal to n.
// If n is greater than the integer part of [FixedU128.MaxValue], ok is false.
func CheckedFixedU128FromInt(n uint128.Uint128) (x FixedU128, ok bool) {
	inner, err := arith.MulDiv128(n, div128, uint128.From64(1), arith.RoundDown)
	if err != nil {
		return FixedU128{}, false
	}
	return FixedU128{inner: inner}, true
}

// FixedU128FromRational returns a number equal to n / d rounded down,
// clamped to [FixedU128.MaxValue].
// FixedU128FromRational panics if d is 0.
func FixedU128FromRational(n, d uint128.Uint128) FixedU128 {
	if d.IsZero() {
		panic(fmt.Sprintf("FixedU128FromRational(%v, %v) failed: %v", n, d, errDivisionByZero))
	}
	return FixedU128{inner: arith.SaturatingMulDiv128(n, div128, d, arith.RoundDown)}
}

// CheckedFixedU128FromRational returns a number equal to n / d rounded down.
// If d is 0 or the result is greater than [FixedU128.MaxValue], ok is false.
func CheckedFixedU128FromRational(n, d uint128.Uint128) (x FixedU128, ok bool) {
	x, err := FixedU128FromRationalRounding(n, d, arith.RoundDown)
	if err != nil {
		return FixedU128{}, false
	}
	return x, true
}

// FixedU128FromRationalRounding returns a number equal to n / d, rounded
// using the given method.
// See [FixedU64FromRationalRounding] for details.
func FixedU128FromRationalRounding(n, d uint128.Uint128, mode arith.Rounding) (FixedU128, error) {
	if d.IsZero() {
		return FixedU128{}, fmt.Errorf("converting %v/%v to %T: %w", n, d, FixedU128{}, errDivisionByZero)
	}
	inner, err := arith.MulDiv128(n, div128, d, mode)
	if err != nil {
		return FixedU128{}, fmt.Errorf("converting %v/%v to %T: %w", n, d, FixedU128{}, err)
	}
	return FixedU128{inner: inner}, nil
}

// FixedU128FromFraction returns a number equal to f rounded down.
// The conversion is exact for every tier of package perthing except
// [perthing.PerU16].
// FixedU128FromFraction panics if the denominator of f is 0.
func FixedU128FromFraction(f perthing.Fraction) FixedU128 {
	n, d := uint128.From64(f.Numerator()), uint128.From64(f.Denominator())
	return FixedU128{inner: arith.SaturatingMulDiv128(n, div128, d, arith.RoundDown)}
}

// Inner returns the inner integer of x.
func (x FixedU128) Inner() uint128.Uint128 {
	return x.inner
}

// Zero returns a number equal to 0.
func (x FixedU128) Zero() FixedU128 {
	return FixedU128{}
}

// One returns a number equal to 1.
func (x FixedU128) One() FixedU128 {
	return FixedU128{inner: div128}
}

// MaxValue returns the largest representable number.
func (x FixedU128) MaxValue() FixedU128 {
	return FixedU128{inner: uint128.Max}
}

// MinValue returns the smallest representable number.
func (x FixedU128) MinValue() FixedU128 {
	return FixedU128{}
}

// Accuracy returns the divisor of the inner integer, 10^18.
func (x FixedU128) Accuracy() uint64 {
	return acc128
}

func (x FixedU128) unitParts() uint64 {
	if x.inner.Cmp(div128) >= 0 {
		return acc128
	}
	return x.inner.Lo
}

// IsZero returns true if x == 0.
func (x FixedU128) IsZero() bool {
	return x.inner.IsZero()
}

// IsOne returns true if x == 1.
func (x FixedU128) IsOne() bool {
	return x.inner.Equals(div128)
}

// IsPos returns true if x > 0.
func (x FixedU128) IsPos() bool {
	return !x.inner.IsZero()
}

// Sign returns 0 if x = 0 and 1 if x > 0.
func (x FixedU128) Sign() int {
	if x.inner.IsZero() {
		return 0
	}
	return 1
}

// Cmp compares x and y numerically.
// See [FixedU64.Cmp] for details.
func (x FixedU128) Cmp(y FixedU128) int {
	return x.inner.Cmp(y.inner)
}

// String implements the [fmt.Stringer] interface.
// See [FixedU64.String] for details.
func (x FixedU128) String() string {
	q, r := x.inner.QuoRem64(acc128)
	return format(false, q.String(), r, prec128)
}

// CheckedAdd returns x + y.
// If the sum is greater than [FixedU128.MaxValue], ok is false.
func (x FixedU128) CheckedAdd(y FixedU128) (z FixedU128, ok bool) {
	inner, ok := add128(x.inner, y.inner)
	if !ok {
		return FixedU128{}, false
	}
	return FixedU128{inner: inner}, true
}

// SaturatingAdd returns x + y, clamped to [FixedU128.MaxValue].
func (x FixedU128) SaturatingAdd(y FixedU128) FixedU128 {
	z, ok := x.CheckedAdd(y)
	if !ok {
		return x.MaxValue()
	}
	return z
}

// CheckedSub returns x - y.
// If the difference is negative, ok is false.
func (x FixedU128) CheckedSub(y FixedU128) (z FixedU128, ok bool) {
	inner, ok := sub128(x.inner, y.inner)
	if !ok {
		return FixedU128{}, false
	}
	return FixedU128{inner: inner}, true
}

// SaturatingSub returns x - y, clamped to 0.
func (x FixedU128) SaturatingSub(y FixedU128) FixedU128 {
	z, ok := x.CheckedSub(y)
	if !ok {
		return FixedU128{}
	}
	return z
}

// CheckedMul returns x * y rounded down.
// If the product is greater than [FixedU128.MaxValue], ok is false.
func (x FixedU128) CheckedMul(y FixedU128) (z FixedU128, ok bool) {
	inner, err := arith.MulDiv128(x.inner, y.inner, div128, arith.RoundDown)
	if err != nil {
		return FixedU128{}, false
	}
	return FixedU128{inner: inner}, true
}

// SaturatingMul returns x * y rounded down, clamped to [FixedU128.MaxValue].
func (x FixedU128) SaturatingMul(y FixedU128) FixedU128 {
	return FixedU128{inner: arith.SaturatingMulDiv128(x.inner, y.inner, div128, arith.RoundDown)}
}

// CheckedDiv returns x / y rounded down.
// If y is 0 or the quotient is greater than [FixedU128.MaxValue], ok is false.
func (x FixedU128) CheckedDiv(y FixedU128) (z FixedU128, ok bool) {
	if y.inner.IsZero() {
		return FixedU128{}, false
	}
	inner, err := arith.MulDiv128(x.inner, div128, y.inner, arith.RoundDown)
	if err != nil {
		return FixedU128{}, false
	}
	return FixedU128{inner: inner}, true
}

// SaturatingDiv returns x / y rounded down, clamped to [FixedU128.MaxValue].
// SaturatingDiv panics if y is 0.
// To avoid this panic, use the [FixedU128.CheckedDiv].
func (x FixedU128) SaturatingDiv(y FixedU128) FixedU128 {
	if y.inner.IsZero() {
		panic(fmt.Sprintf("%v.SaturatingDiv(%v) failed: %v", x, y, errDivisionByZero))
	}
	return FixedU128{inner: arith.SaturatingMulDiv128(x.inner, div128, y.inner, arith.RoundDown)}
}

// SaturatingMulInt returns ⌊x * n⌋, clamped to [uint128.Max].
func (x FixedU128) SaturatingMulInt(n uint128.Uint128) uint128.Uint128 {
	return arith.SaturatingMulDiv128(x.inner, n, div128, arith.RoundDown)
}

// CheckedMulInt returns ⌊x * n⌋.
// If the product is greater than [uint128.Max], ok is false.
func (x FixedU128) CheckedMulInt(n uint128.Uint128) (z uint128.Uint128, ok bool) {
	z, err := arith.MulDiv128(x.inner, n, div128, arith.RoundDown)
	if err != nil {
		return uint128.Zero, false
	}
	return z, true
}

// CheckedDivInt returns ⌊x / n⌋.
// If n is 0, ok is false.
func (x FixedU128) CheckedDivInt(n uint128.Uint128) (z uint128.Uint128, ok bool) {
	if n.IsZero() {
		return uint128.Zero, false
	}
	return x.inner.Div64(acc128).Div(n), true
}

// Reciprocal returns 1 / x rounded down.
// If x is 0 or the result is greater than [FixedU128.MaxValue], ok is false.
func (x FixedU128) Reciprocal() (z FixedU128, ok bool) {
	return x.One().CheckedDiv(x)
}

// CheckedPow returns x raised to the power of exp.
// See [FixedU64.CheckedPow] for details.
func (x FixedU128) CheckedPow(exp uint) (z FixedU128, ok bool) {
	return checkedPow(x, x.One(), exp, FixedU128.CheckedMul)
}

// SaturatingPow is like [FixedU128.CheckedPow] but clamps the result
// to [FixedU128.MaxValue].
func (x FixedU128) SaturatingPow(exp uint) FixedU128 {
	z, ok := x.CheckedPow(exp)
	if !ok {
		return x.MaxValue()
	}
	return z
}

// Sqrt returns the square root of x rounded down.
func (x FixedU128) Sqrt() FixedU128 {
	return FixedU128{inner: arith.MulSqrt128(x.inner, div128)}
}

// Trunc returns the integer part of x.
func (x FixedU128) Trunc() FixedU128 {
	return FixedU128{inner: x.inner.Sub64(x.inner.Mod64(acc128))}
}

// Frac returns the fractional part of x.
func (x FixedU128) Frac() FixedU128 {
	return FixedU128{inner: uint128.From64(x.inner.Mod64(acc128))}
}

// Floor returns the largest integer less than or equal to x.
func (x FixedU128) Floor() FixedU128 {
	return x.Trunc()
}

// Ceil returns the smallest integer greater than or equal to x,
// clamped to [FixedU128.MaxValue].
func (x FixedU128) Ceil() FixedU128 {
	if x.inner.Mod64(acc128) == 0 {
		return x
	}
	return x.Trunc().SaturatingAdd(x.One())
}

// Round returns x rounded to the nearest integer, with ties rounded away
// from zero. The result is clamped to [FixedU128.MaxValue].
func (x FixedU128) Round() FixedU128 {
	if x.inner.Mod64(acc128) < acc128/2 {
		return x.Trunc()
	}
	return x.Trunc().SaturatingAdd(x.One())
}
