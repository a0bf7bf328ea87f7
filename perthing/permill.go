package perthing

import (
	"fmt"

	"github.com/govalues/arith"
)

// PermillDenominator is the denominator of [Permill].
const PermillDenominator = 1_000_000

// Permill is a fraction in [0, 1] with a precision of one millionth.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// Permill is a struct with a single field, the numerator.
// The denominator is the constant [PermillDenominator], so the value of Permill is
// calculated as Parts / PermillDenominator.
// The numerator never exceeds the denominator: constructors either clamp
// out-of-range numerators to 1 or return an error.
type Permill struct {
	parts uint32 // numerator, at most PermillDenominator
}

// NewPermill returns a fraction equal to parts / [PermillDenominator].
// It is intended for decoders, which must reject invalid numerators
// instead of repairing them.
//
// NewPermill returns an error if parts is greater than [PermillDenominator].
func NewPermill(parts uint32) (Permill, error) {
	if parts > PermillDenominator {
		return Permill{}, fmt.Errorf("%v/%v: %w", parts, PermillDenominator, errNumeratorRange)
	}
	return Permill{parts: parts}, nil
}

// PermillFromParts returns a fraction equal to parts / [PermillDenominator].
// If parts is greater than [PermillDenominator], the result is clamped to 1.
func PermillFromParts(parts uint32) Permill {
	if parts > PermillDenominator {
		parts = PermillDenominator
	}
	return Permill{parts: parts}
}

// PermillFromPercent returns a fraction equal to x / 100.
// If x is greater than 100, the result is clamped to 1.
func PermillFromPercent(x uint64) Permill {
	return Permill{parts: uint32(fromPercent(x, PermillDenominator))}
}

// PermillFromPerthousand returns a fraction equal to x / 1000.
// If x is greater than 1000, the result is clamped to 1.
func PermillFromPerthousand(x uint64) Permill {
	return Permill{parts: uint32(fromPerthousand(x, PermillDenominator))}
}

// PermillFromRational returns a fraction equal to p / q rounded down.
// If p / q is greater than 1 or q is 0, the result is clamped to 1.
// Also see method [PermillFromRationalRounding].
func PermillFromRational(p, q uint64) Permill {
	f, err := PermillFromRationalRounding(p, q, arith.RoundDown)
	if err != nil {
		return Permill{parts: PermillDenominator}
	}
	return f
}

// PermillFromRationalRounding returns a fraction equal to p / q, rounded
// using the given method.
//
// PermillFromRationalRounding returns an error if:
//   - q is 0;
//   - p is greater than q.
func PermillFromRationalRounding(p, q uint64, mode arith.Rounding) (Permill, error) {
	parts, err := scale(p, q, PermillDenominator, mode)
	if err != nil {
		return Permill{}, fmt.Errorf("converting %v/%v to %T: %w", p, q, Permill{}, err)
	}
	return Permill{parts: uint32(parts)}, nil
}

// Zero returns a fraction equal to 0.
func (p Permill) Zero() Permill {
	return Permill{}
}

// One returns a fraction equal to 1.
func (p Permill) One() Permill {
	return Permill{parts: PermillDenominator}
}

// Parts returns the numerator of p.
// Encoders must write it unchanged, so that [NewPermill] restores p exactly.
func (p Permill) Parts() uint32 {
	return p.parts
}

// Numerator implements the [Fraction] interface.
func (p Permill) Numerator() uint64 {
	return uint64(p.parts)
}

// Denominator implements the [Fraction] interface.
func (p Permill) Denominator() uint64 {
	return PermillDenominator
}

// IsZero returns true if p == 0.
func (p Permill) IsZero() bool {
	return p.parts == 0
}

// IsOne returns true if p == 1.
func (p Permill) IsOne() bool {
	return p.parts == PermillDenominator
}

// Cmp compares p and q and returns:
//
//	-1 if p < q
//	 0 if p == q
//	+1 if p > q
func (p Permill) Cmp(q Permill) int {
	return cmpParts(uint64(p.parts), uint64(q.parts))
}

// String implements the [fmt.Stringer] interface and returns p in the
// form "parts/denominator".
// It is meant for debugging and logging, not for presenting values to users.
func (p Permill) String() string {
	return fmt.Sprintf("%v/%v", p.parts, PermillDenominator)
}

// CheckedAdd returns p + q.
// If the sum is greater than 1, ok is false.
func (p Permill) CheckedAdd(q Permill) (r Permill, ok bool) {
	s := uint64(p.parts) + uint64(q.parts) // at most 2 * PermillDenominator
	if s > PermillDenominator {
		return Permill{}, false
	}
	return Permill{parts: uint32(s)}, true
}

// SaturatingAdd returns p + q.
// If the sum is greater than 1, the result is clamped to 1.
func (p Permill) SaturatingAdd(q Permill) Permill {
	r, ok := p.CheckedAdd(q)
	if !ok {
		return p.One()
	}
	return r
}

// CheckedSub returns p - q.
// If the difference is negative, ok is false.
func (p Permill) CheckedSub(q Permill) (r Permill, ok bool) {
	if p.parts < q.parts {
		return Permill{}, false
	}
	return Permill{parts: p.parts - q.parts}, true
}

// SaturatingSub returns p - q.
// If the difference is negative, the result is clamped to 0.
func (p Permill) SaturatingSub(q Permill) Permill {
	r, ok := p.CheckedSub(q)
	if !ok {
		return Permill{}
	}
	return r
}

// Mul returns p * q rounded down.
// The product of two fractions is always in [0, 1], so Mul never fails.
// Also see method [Permill.MulRound].
func (p Permill) Mul(q Permill) Permill {
	return p.MulRound(q, arith.RoundDown)
}

// MulRound returns p * q rounded using the given method.
func (p Permill) MulRound(q Permill, mode arith.Rounding) Permill {
	return Permill{parts: uint32(mulParts(uint64(p.parts), uint64(q.parts), PermillDenominator, mode))}
}

// Square returns p * p rounded down.
func (p Permill) Square() Permill {
	return p.Mul(p)
}

// SaturatingPow returns p raised to the power of exp.
// The result is rounded down after every multiplication.
// p^0 is 1 for every p, including 0.
func (p Permill) SaturatingPow(exp uint) Permill {
	return Permill{parts: uint32(powParts(uint64(p.parts), PermillDenominator, exp))}
}

// CheckedDiv returns p / q rounded down.
// If q is 0 or the quotient is greater than 1, ok is false.
func (p Permill) CheckedDiv(q Permill) (r Permill, ok bool) {
	parts, ok := divParts(uint64(p.parts), uint64(q.parts), PermillDenominator)
	if !ok {
		return Permill{}, false
	}
	return Permill{parts: uint32(parts)}, true
}

// SaturatingDiv returns p / q rounded down.
// If the quotient is greater than 1, the result is clamped to 1.
// If q is 0, the result is 1, unless p is also 0, in which case it is 0.
func (p Permill) SaturatingDiv(q Permill) Permill {
	if p.parts == 0 {
		return Permill{}
	}
	r, ok := p.CheckedDiv(q)
	if !ok {
		return p.One()
	}
	return r
}

// Complement returns 1 - p.
// The result is exact: p.SaturatingAdd(p.Complement()) is always 1.
func (p Permill) Complement() Permill {
	return Permill{parts: PermillDenominator - p.parts}
}

// MulFloor returns ⌊p * x⌋.
// The product x * parts is computed at double width, so MulFloor is exact
// for every x and never overflows.
func (p Permill) MulFloor(x uint64) uint64 {
	return mulInt(uint64(p.parts), PermillDenominator, x, arith.RoundDown)
}

// MulCeil returns ⌈p * x⌉.
// The result never exceeds x.
func (p Permill) MulCeil(x uint64) uint64 {
	return mulInt(uint64(p.parts), PermillDenominator, x, arith.RoundUp)
}

// MulIntRound returns p * x rounded using the given method.
func (p Permill) MulIntRound(x uint64, mode arith.Rounding) uint64 {
	return mulInt(uint64(p.parts), PermillDenominator, x, mode)
}

// SaturatingReciprocalMul returns x / p rounded to nearest, with ties
// rounded away from zero.
// If the quotient does not fit uint64, or p is 0 and x is not 0, the result
// is clamped to [math.MaxUint64].
// Also see methods [Permill.SaturatingReciprocalMulFloor] and
// [Permill.SaturatingReciprocalMulCeil].
func (p Permill) SaturatingReciprocalMul(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PermillDenominator, x, arith.RoundHalfUp)
}

// SaturatingReciprocalMulFloor returns ⌊x / p⌋, clamped to [math.MaxUint64].
func (p Permill) SaturatingReciprocalMulFloor(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PermillDenominator, x, arith.RoundDown)
}

// SaturatingReciprocalMulCeil returns ⌈x / p⌉, clamped to [math.MaxUint64].
func (p Permill) SaturatingReciprocalMulCeil(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PermillDenominator, x, arith.RoundUp)
}
