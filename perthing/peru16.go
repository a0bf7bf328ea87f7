package perthing

import (
	"fmt"

	"github.com/govalues/arith"
)

// PerU16Denominator is the denominator of [PerU16].
const PerU16Denominator = 65_535

// PerU16 is a fraction in [0, 1] with a precision of one 65535th.
// The zero value is the numeric value of 0.
// See [Permill] for details.
type PerU16 struct {
	parts uint16 // numerator, at most PerU16Denominator
}

// NewPerU16 returns a fraction equal to parts / [PerU16Denominator].
// See [NewPermill] for details.
func NewPerU16(parts uint16) (PerU16, error) {
	if parts > PerU16Denominator {
		return PerU16{}, fmt.Errorf("%v/%v: %w", parts, PerU16Denominator, errNumeratorRange)
	}
	return PerU16{parts: parts}, nil
}

// PerU16FromParts returns a fraction equal to parts / [PerU16Denominator], clamped to 1.
func PerU16FromParts(parts uint16) PerU16 {
	if parts > PerU16Denominator {
		parts = PerU16Denominator
	}
	return PerU16{parts: parts}
}

// PerU16FromPercent returns a fraction equal to x / 100, clamped to 1.
func PerU16FromPercent(x uint64) PerU16 {
	return PerU16{parts: uint16(fromPercent(x, PerU16Denominator))}
}

// PerU16FromRational returns a fraction equal to p / q rounded down, clamped to 1.
// See [PermillFromRational] for details.
func PerU16FromRational(p, q uint64) PerU16 {
	f, err := PerU16FromRationalRounding(p, q, arith.RoundDown)
	if err != nil {
		return PerU16{parts: PerU16Denominator}
	}
	return f
}

// PerU16FromRationalRounding is like [PermillFromRationalRounding] but for [PerU16].
func PerU16FromRationalRounding(p, q uint64, mode arith.Rounding) (PerU16, error) {
	parts, err := scale(p, q, PerU16Denominator, mode)
	if err != nil {
		return PerU16{}, fmt.Errorf("converting %v/%v to %T: %w", p, q, PerU16{}, err)
	}
	return PerU16{parts: uint16(parts)}, nil
}

// Zero returns a fraction equal to 0.
func (p PerU16) Zero() PerU16 {
	return PerU16{}
}

// One returns a fraction equal to 1.
func (p PerU16) One() PerU16 {
	return PerU16{parts: PerU16Denominator}
}

// Parts returns the numerator of p.
func (p PerU16) Parts() uint16 {
	return p.parts
}

// Numerator implements the [Fraction] interface.
func (p PerU16) Numerator() uint64 {
	return uint64(p.parts)
}

// Denominator implements the [Fraction] interface.
func (p PerU16) Denominator() uint64 {
	return PerU16Denominator
}

// IsZero returns true if p == 0.
func (p PerU16) IsZero() bool {
	return p.parts == 0
}

// IsOne returns true if p == 1.
func (p PerU16) IsOne() bool {
	return p.parts == PerU16Denominator
}

// Cmp compares p and q numerically.
func (p PerU16) Cmp(q PerU16) int {
	return cmpParts(uint64(p.parts), uint64(q.parts))
}

// String implements the [fmt.Stringer] interface.
func (p PerU16) String() string {
	return fmt.Sprintf("%v/%v", p.parts, PerU16Denominator)
}

// CheckedAdd returns p + q, ok is false if the sum is greater than 1.
func (p PerU16) CheckedAdd(q PerU16) (r PerU16, ok bool) {
	s := uint64(p.parts) + uint64(q.parts) // at most 2 * PerU16Denominator
	if s > PerU16Denominator {
		return PerU16{}, false
	}
	return PerU16{parts: uint16(s)}, true
}

// SaturatingAdd returns p + q, clamped to 1.
func (p PerU16) SaturatingAdd(q PerU16) PerU16 {
	r, ok := p.CheckedAdd(q)
	if !ok {
		return p.One()
	}
	return r
}

// CheckedSub returns p - q, ok is false if the difference is negative.
func (p PerU16) CheckedSub(q PerU16) (r PerU16, ok bool) {
	if p.parts < q.parts {
		return PerU16{}, false
	}
	return PerU16{parts: p.parts - q.parts}, true
}

// SaturatingSub returns p - q, clamped to 0.
func (p PerU16) SaturatingSub(q PerU16) PerU16 {
	r, ok := p.CheckedSub(q)
	if !ok {
		return PerU16{}
	}
	return r
}

// Mul returns p * q rounded down.
func (p PerU16) Mul(q PerU16) PerU16 {
	return p.MulRound(q, arith.RoundDown)
}

// MulRound returns p * q rounded using the given method.
func (p PerU16) MulRound(q PerU16, mode arith.Rounding) PerU16 {
	return PerU16{parts: uint16(mulParts(uint64(p.parts), uint64(q.parts), PerU16Denominator, mode))}
}

// Square returns p * p rounded down.
func (p PerU16) Square() PerU16 {
	return p.Mul(p)
}

// SaturatingPow returns p^exp, rounded down after every multiplication.
func (p PerU16) SaturatingPow(exp uint) PerU16 {
	return PerU16{parts: uint16(powParts(uint64(p.parts), PerU16Denominator, exp))}
}

// CheckedDiv returns p / q rounded down, ok is false if q is 0 or p > q.
func (p PerU16) CheckedDiv(q PerU16) (r PerU16, ok bool) {
	parts, ok := divParts(uint64(p.parts), uint64(q.parts), PerU16Denominator)
	if !ok {
		return PerU16{}, false
	}
	return PerU16{parts: uint16(parts)}, true
}

// SaturatingDiv returns p / q rounded down, clamped to 1.
// See [Permill.SaturatingDiv] for details.
func (p PerU16) SaturatingDiv(q PerU16) PerU16 {
	if p.parts == 0 {
		return PerU16{}
	}
	r, ok := p.CheckedDiv(q)
	if !ok {
		return p.One()
	}
	return r
}

// Complement returns 1 - p exactly.
func (p PerU16) Complement() PerU16 {
	return PerU16{parts: PerU16Denominator - p.parts}
}

// MulFloor returns ⌊p * x⌋.
func (p PerU16) MulFloor(x uint64) uint64 {
	return mulInt(uint64(p.parts), PerU16Denominator, x, arith.RoundDown)
}

// MulCeil returns ⌈p * x⌉.
func (p PerU16) MulCeil(x uint64) uint64 {
	return mulInt(uint64(p.parts), PerU16Denominator, x, arith.RoundUp)
}

// MulIntRound returns p * x rounded using the given method.
func (p PerU16) MulIntRound(x uint64, mode arith.Rounding) uint64 {
	return mulInt(uint64(p.parts), PerU16Denominator, x, mode)
}

// SaturatingReciprocalMul returns x / p rounded half up, clamped to [math.MaxUint64].
// See [Permill.SaturatingReciprocalMul] for details.
func (p PerU16) SaturatingReciprocalMul(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerU16Denominator, x, arith.RoundHalfUp)
}

// SaturatingReciprocalMulFloor returns ⌊x / p⌋, clamped to [math.MaxUint64].
func (p PerU16) SaturatingReciprocalMulFloor(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerU16Denominator, x, arith.RoundDown)
}

// SaturatingReciprocalMulCeil returns ⌈x / p⌉, clamped to [math.MaxUint64].
func (p PerU16) SaturatingReciprocalMulCeil(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerU16Denominator, x, arith.RoundUp)
}
