package perthing

import (
	"errors"
	"math"

	"github.com/govalues/arith"
)

// Fraction is a value in [0, 1] represented as Numerator / Denominator.
// Every per-unit type implements it, and the fixed-point types accept it
// for conversions.
type Fraction interface {
	Numerator() uint64
	Denominator() uint64
}

// Tier is a constraint that permits any per-unit fraction type.
type Tier interface {
	Percent | PerU16 | Permill | Perbill | Perquintill
	Fraction
}

var (
	errNumeratorRange = errors.New("numerator out of range")
	errDivisionByZero = errors.New("division by zero")
)

// FromRational returns a fraction of tier P equal to p / q, rounded using
// the given method.
//
// FromRational returns an error if:
//   - q is 0;
//   - p is greater than q.
func FromRational[P Tier](p, q uint64, mode arith.Rounding) (P, error) {
	var (
		z   P
		v   any
		err error
	)
	switch any(z).(type) {
	case Percent:
		v, err = PercentFromRationalRounding(p, q, mode)
	case PerU16:
		v, err = PerU16FromRationalRounding(p, q, mode)
	case Permill:
		v, err = PermillFromRationalRounding(p, q, mode)
	case Perbill:
		v, err = PerbillFromRationalRounding(p, q, mode)
	case Perquintill:
		v, err = PerquintillFromRationalRounding(p, q, mode)
	}
	if err != nil {
		return z, err
	}
	return v.(P), nil
}

// Convert returns f rescaled to tier P using the given method.
// For example, a [Perbill] converted to a [Permill] with [arith.RoundDown]
// drops the three least significant digits.
func Convert[P Tier](f Fraction, mode arith.Rounding) P {
	p, err := FromRational[P](f.Numerator(), f.Denominator(), mode)
	if err != nil {
		// f is in [0, 1] and has a positive denominator.
		panic(err)
	}
	return p
}

// scale calculates p * denom / q and checks that p / q is in [0, 1].
// The result is at most denom for every rounding method.
func scale(p, q, denom uint64, mode arith.Rounding) (uint64, error) {
	switch {
	case q == 0:
		return 0, errDivisionByZero
	case p > q:
		return 0, errNumeratorRange
	}
	return arith.MustMulDiv(p, denom, q, mode), nil
}

// fromPercent calculates x * denom / 100, clamped to denom.
func fromPercent(x, denom uint64) uint64 {
	if x >= 100 {
		return denom
	}
	return arith.MustMulDiv(x, denom, 100, arith.RoundDown)
}

// fromPerthousand calculates x * denom / 1000, clamped to denom.
func fromPerthousand(x, denom uint64) uint64 {
	if x >= 1000 {
		return denom
	}
	return arith.MustMulDiv(x, denom, 1000, arith.RoundDown)
}

// mulParts calculates a * b / denom.
// If a and b are at most denom, the result is at most denom.
func mulParts(a, b, denom uint64, mode arith.Rounding) uint64 {
	return arith.MustMulDiv(a, b, denom, mode)
}

// divParts calculates a * denom / b and checks that a / b is in [0, 1].
func divParts(a, b, denom uint64) (uint64, bool) {
	if b == 0 || a > b {
		return 0, false
	}
	return arith.MustMulDiv(a, denom, b, arith.RoundDown), true
}

// powParts calculates (base / denom)^exp * denom using exponentiation by
// squaring, rounding down after every multiplication.
func powParts(base, denom uint64, exp uint) uint64 {
	z := denom
	for exp > 0 {
		if exp&1 != 0 {
			z = mulParts(z, base, denom, arith.RoundDown)
		}
		exp >>= 1
		if exp > 0 {
			base = mulParts(base, base, denom, arith.RoundDown)
		}
	}
	return z
}

// mulInt calculates x * parts / denom.
// The result never exceeds x, since parts is at most denom.
func mulInt(parts, denom, x uint64, mode arith.Rounding) uint64 {
	return arith.MustMulDiv(x, parts, denom, mode)
}

// reciprocalMulInt calculates x * denom / parts, clamped to [math.MaxUint64].
func reciprocalMulInt(parts, denom, x uint64, mode arith.Rounding) uint64 {
	// Special cases
	switch {
	case x == 0:
		return 0
	case parts == 0:
		return math.MaxUint64
	}
	// General case
	return arith.SaturatingMulDiv(x, denom, parts, mode)
}

// cmpParts compares numerators of the same tier.
func cmpParts(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
