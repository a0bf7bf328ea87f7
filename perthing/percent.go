package perthing

import (
	"fmt"

	"github.com/govalues/arith"
)

// PercentDenominator is the denominator of [Percent].
const PercentDenominator = 100

// Percent is a fraction in [0, 1] with a precision of one hundredth.
// The zero value is the numeric value of 0.
// See [Permill] for details.
type Percent struct {
	parts uint8 // numerator, at most PercentDenominator
}

// NewPercent returns a fraction equal to parts / [PercentDenominator].
// See [NewPermill] for details.
func NewPercent(parts uint8) (Percent, error) {
	if parts > PercentDenominator {
		return Percent{}, fmt.Errorf("%v/%v: %w", parts, PercentDenominator, errNumeratorRange)
	}
	return Percent{parts: parts}, nil
}

// PercentFromParts returns a fraction equal to parts / [PercentDenominator], clamped to 1.
func PercentFromParts(parts uint8) Percent {
	if parts > PercentDenominator {
		parts = PercentDenominator
	}
	return Percent{parts: parts}
}

// PercentFromPercent returns a fraction equal to x / 100, clamped to 1.
func PercentFromPercent(x uint64) Percent {
	return Percent{parts: uint8(fromPercent(x, PercentDenominator))}
}

// PercentFromRational returns a fraction equal to p / q rounded down, clamped to 1.
// See [PermillFromRational] for details.
func PercentFromRational(p, q uint64) Percent {
	f, err := PercentFromRationalRounding(p, q, arith.RoundDown)
	if err != nil {
		return Percent{parts: PercentDenominator}
	}
	return f
}

// PercentFromRationalRounding is like [PermillFromRationalRounding] but for [Percent].
func PercentFromRationalRounding(p, q uint64, mode arith.Rounding) (Percent, error) {
	parts, err := scale(p, q, PercentDenominator, mode)
	if err != nil {
		return Percent{}, fmt.Errorf("converting %v/%v to %T: %w", p, q, Percent{}, err)
	}
	return Percent{parts: uint8(parts)}, nil
}

// Zero returns a fraction equal to 0.
func (p Percent) Zero() Percent {
	return Percent{}
}

// One returns a fraction equal to 1.
func (p Percent) One() Percent {
	return Percent{parts: PercentDenominator}
}

// Parts returns the numerator of p.
func (p Percent) Parts() uint8 {
	return p.parts
}

// Numerator implements the [Fraction] interface.
func (p Percent) Numerator() uint64 {
	return uint64(p.parts)
}

// Denominator implements the [Fraction] interface.
func (p Percent) Denominator() uint64 {
	return PercentDenominator
}

// IsZero returns true if p == 0.
func (p Percent) IsZero() bool {
	return p.parts == 0
}

// IsOne returns true if p == 1.
func (p Percent) IsOne() bool {
	return p.parts == PercentDenominator
}

// Cmp compares p and q numerically.
func (p Percent) Cmp(q Percent) int {
	return cmpParts(uint64(p.parts), uint64(q.parts))
}

// String implements the [fmt.Stringer] interface.
func (p Percent) String() string {
	return fmt.Sprintf("%v/%v", p.parts, PercentDenominator)
}

// CheckedAdd returns p + q, ok is false if the sum is greater than 1.
func (p Percent) CheckedAdd(q Percent) (r Percent, ok bool) {
	s := uint64(p.parts) + uint64(q.parts) // at most 2 * PercentDenominator
	if s > PercentDenominator {
		return Percent{}, false
	}
	return Percent{parts: uint8(s)}, true
}

// SaturatingAdd returns p + q, clamped to 1.
func (p Percent) SaturatingAdd(q Percent) Percent {
	r, ok := p.CheckedAdd(q)
	if !ok {
		return p.One()
	}
	return r
}

// CheckedSub returns p - q, ok is false if the difference is negative.
func (p Percent) CheckedSub(q Percent) (r Percent, ok bool) {
	if p.parts < q.parts {
		return Percent{}, false
	}
	return Percent{parts: p.parts - q.parts}, true
}

// SaturatingSub returns p - q, clamped to 0.
func (p Percent) SaturatingSub(q Percent) Percent {
	r, ok := p.CheckedSub(q)
	if !ok {
		return Percent{}
	}
	return r
}

// Mul returns p * q rounded down.
func (p Percent) Mul(q Percent) Percent {
	return p.MulRound(q, arith.RoundDown)
}

// MulRound returns p * q rounded using the given method.
func (p Percent) MulRound(q Percent, mode arith.Rounding) Percent {
	return Percent{parts: uint8(mulParts(uint64(p.parts), uint64(q.parts), PercentDenominator, mode))}
}

// Square returns p * p rounded down.
func (p Percent) Square() Percent {
	return p.Mul(p)
}

// SaturatingPow returns p^exp, rounded down after every multiplication.
func (p Percent) SaturatingPow(exp uint) Percent {
	return Percent{parts: uint8(powParts(uint64(p.parts), PercentDenominator, exp))}
}

// CheckedDiv returns p / q rounded down, ok is false if q is 0 or p > q.
func (p Percent) CheckedDiv(q Percent) (r Percent, ok bool) {
	parts, ok := divParts(uint64(p.parts), uint64(q.parts), PercentDenominator)
	if !ok {
		return Percent{}, false
	}
	return Percent{parts: uint8(parts)}, true
}

// SaturatingDiv returns p / q rounded down, clamped to 1.
// See [Permill.SaturatingDiv] for details.
func (p Percent) SaturatingDiv(q Percent) Percent {
	if p.parts == 0 {
		return Percent{}
	}
	r, ok := p.CheckedDiv(q)
	if !ok {
		return p.One()
	}
	return r
}

// Complement returns 1 - p exactly.
func (p Percent) Complement() Percent {
	return Percent{parts: PercentDenominator - p.parts}
}

// MulFloor returns ⌊p * x⌋.
func (p Percent) MulFloor(x uint64) uint64 {
	return mulInt(uint64(p.parts), PercentDenominator, x, arith.RoundDown)
}

// MulCeil returns ⌈p * x⌉.
func (p Percent) MulCeil(x uint64) uint64 {
	return mulInt(uint64(p.parts), PercentDenominator, x, arith.RoundUp)
}

// MulIntRound returns p * x rounded using the given method.
func (p Percent) MulIntRound(x uint64, mode arith.Rounding) uint64 {
	return mulInt(uint64(p.parts), PercentDenominator, x, mode)
}

// SaturatingReciprocalMul returns x / p rounded half up, clamped to [math.MaxUint64].
// See [Permill.SaturatingReciprocalMul] for details.
func (p Percent) SaturatingReciprocalMul(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PercentDenominator, x, arith.RoundHalfUp)
}

// SaturatingReciprocalMulFloor returns ⌊x / p⌋, clamped to [math.MaxUint64].
func (p Percent) SaturatingReciprocalMulFloor(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PercentDenominator, x, arith.RoundDown)
}

// SaturatingReciprocalMulCeil returns ⌈x / p⌉, clamped to [math.MaxUint64].
func (p Percent) SaturatingReciprocalMulCeil(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PercentDenominator, x, arith.RoundUp)
}
