package perthing

import (
	"fmt"

	"github.com/govalues/arith"
)

// PerquintillDenominator is the denominator of [Perquintill].
const PerquintillDenominator = 1_000_000_000_000_000_000

// Perquintill is a fraction in [0, 1] with a precision of one quintillionth.
// The zero value is the numeric value of 0.
// See [Permill] for details.
type Perquintill struct {
	parts uint64 // numerator, at most PerquintillDenominator
}

// NewPerquintill returns a fraction equal to parts / [PerquintillDenominator].
// See [NewPermill] for details.
func NewPerquintill(parts uint64) (Perquintill, error) {
	if parts > PerquintillDenominator {
		return Perquintill{}, fmt.Errorf("%v/%v: %w", parts, PerquintillDenominator, errNumeratorRange)
	}
	return Perquintill{parts: parts}, nil
}

// PerquintillFromParts returns a fraction equal to parts / [PerquintillDenominator], clamped to 1.
func PerquintillFromParts(parts uint64) Perquintill {
	if parts > PerquintillDenominator {
		parts = PerquintillDenominator
	}
	return Perquintill{parts: parts}
}

// PerquintillFromPercent returns a fraction equal to x / 100, clamped to 1.
func PerquintillFromPercent(x uint64) Perquintill {
	return Perquintill{parts: uint64(fromPercent(x, PerquintillDenominator))}
}

// PerquintillFromPerthousand returns a fraction equal to x / 1000, clamped to 1.
func PerquintillFromPerthousand(x uint64) Perquintill {
	return Perquintill{parts: uint64(fromPerthousand(x, PerquintillDenominator))}
}

// PerquintillFromRational returns a fraction equal to p / q rounded down, clamped to 1.
// See [PermillFromRational] for details.
func PerquintillFromRational(p, q uint64) Perquintill {
	f, err := PerquintillFromRationalRounding(p, q, arith.RoundDown)
	if err != nil {
		return Perquintill{parts: PerquintillDenominator}
	}
	return f
}

// PerquintillFromRationalRounding is like [PermillFromRationalRounding] but for [Perquintill].
func PerquintillFromRationalRounding(p, q uint64, mode arith.Rounding) (Perquintill, error) {
	parts, err := scale(p, q, PerquintillDenominator, mode)
	if err != nil {
		return Perquintill{}, fmt.Errorf("converting %v/%v to %T: %w", p, q, Perquintill{}, err)
	}
	return Perquintill{parts: uint64(parts)}, nil
}

// Zero returns a fraction equal to 0.
func (p Perquintill) Zero() Perquintill {
	return Perquintill{}
}

// One returns a fraction equal to 1.
func (p Perquintill) One() Perquintill {
	return Perquintill{parts: PerquintillDenominator}
}

// Parts returns the numerator of p.
func (p Perquintill) Parts() uint64 {
	return p.parts
}

// Numerator implements the [Fraction] interface.
func (p Perquintill) Numerator() uint64 {
	return uint64(p.parts)
}

// Denominator implements the [Fraction] interface.
func (p Perquintill) Denominator() uint64 {
	return PerquintillDenominator
}

// IsZero returns true if p == 0.
func (p Perquintill) IsZero() bool {
	return p.parts == 0
}

// IsOne returns true if p == 1.
func (p Perquintill) IsOne() bool {
	return p.parts == PerquintillDenominator
}

// Cmp compares p and q numerically.
func (p Perquintill) Cmp(q Perquintill) int {
	return cmpParts(uint64(p.parts), uint64(q.parts))
}

// String implements the [fmt.Stringer] interface.
func (p Perquintill) String() string {
	return fmt.Sprintf("%v/%v", p.parts, PerquintillDenominator)
}

// CheckedAdd returns p + q, ok is false if the sum is greater than 1.
func (p Perquintill) CheckedAdd(q Perquintill) (r Perquintill, ok bool) {
	s := uint64(p.parts) + uint64(q.parts) // at most 2 * PerquintillDenominator
	if s > PerquintillDenominator {
		return Perquintill{}, false
	}
	return Perquintill{parts: uint64(s)}, true
}

// SaturatingAdd returns p + q, clamped to 1.
func (p Perquintill) SaturatingAdd(q Perquintill) Perquintill {
	r, ok := p.CheckedAdd(q)
	if !ok {
		return p.One()
	}
	return r
}

// CheckedSub returns p - q, ok is false if the difference is negative.
func (p Perquintill) CheckedSub(q Perquintill) (r Perquintill, ok bool) {
	if p.parts < q.parts {
		return Perquintill{}, false
	}
	return Perquintill{parts: p.parts - q.parts}, true
}

// SaturatingSub returns p - q, clamped to 0.
func (p Perquintill) SaturatingSub(q Perquintill) Perquintill {
	r, ok := p.CheckedSub(q)
	if !ok {
		return Perquintill{}
	}
	return r
}

// Mul returns p * q rounded down.
func (p Perquintill) Mul(q Perquintill) Perquintill {
	return p.MulRound(q, arith.RoundDown)
}

// MulRound returns p * q rounded using the given method.
func (p Perquintill) MulRound(q Perquintill, mode arith.Rounding) Perquintill {
	return Perquintill{parts: uint64(mulParts(uint64(p.parts), uint64(q.parts), PerquintillDenominator, mode))}
}

// Square returns p * p rounded down.
func (p Perquintill) Square() Perquintill {
	return p.Mul(p)
}

// SaturatingPow returns p^exp, rounded down after every multiplication.
func (p Perquintill) SaturatingPow(exp uint) Perquintill {
	return Perquintill{parts: uint64(powParts(uint64(p.parts), PerquintillDenominator, exp))}
}

// CheckedDiv returns p / q rounded down, ok is false if q is 0 or p > q.
func (p Perquintill) CheckedDiv(q Perquintill) (r Perquintill, ok bool) {
	parts, ok := divParts(uint64(p.parts), uint64(q.parts), PerquintillDenominator)
	if !ok {
		return Perquintill{}, false
	}
	return Perquintill{parts: uint64(parts)}, true
}

// SaturatingDiv returns p / q rounded down, clamped to 1.
// See [Permill.SaturatingDiv] for details.
func (p Perquintill) SaturatingDiv(q Perquintill) Perquintill {
	if p.parts == 0 {
		return Perquintill{}
	}
	r, ok := p.CheckedDiv(q)
	if !ok {
		return p.One()
	}
	return r
}

// Complement returns 1 - p exactly.
func (p Perquintill) Complement() Perquintill {
	return Perquintill{parts: PerquintillDenominator - p.parts}
}

// MulFloor returns ⌊p * x⌋.
func (p Perquintill) MulFloor(x uint64) uint64 {
	return mulInt(uint64(p.parts), PerquintillDenominator, x, arith.RoundDown)
}

// MulCeil returns ⌈p * x⌉.
func (p Perquintill) MulCeil(x uint64) uint64 {
	return mulInt(uint64(p.parts), PerquintillDenominator, x, arith.RoundUp)
}

// MulIntRound returns p * x rounded using the given method.
func (p Perquintill) MulIntRound(x uint64, mode arith.Rounding) uint64 {
	return mulInt(uint64(p.parts), PerquintillDenominator, x, mode)
}

// SaturatingReciprocalMul returns x / p rounded half up, clamped to [math.MaxUint64].
// See [Permill.SaturatingReciprocalMul] for details.
func (p Perquintill) SaturatingReciprocalMul(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerquintillDenominator, x, arith.RoundHalfUp)
}

// SaturatingReciprocalMulFloor returns ⌊x / p⌋, clamped to [math.MaxUint64].
func (p Perquintill) SaturatingReciprocalMulFloor(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerquintillDenominator, x, arith.RoundDown)
}

// SaturatingReciprocalMulCeil returns ⌈x / p⌉, clamped to [math.MaxUint64].
func (p Perquintill) SaturatingReciprocalMulCeil(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerquintillDenominator, x, arith.RoundUp)
}
