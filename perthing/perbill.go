package perthing

import (
	"fmt"

	"github.com/govalues/arith"
)

// PerbillDenominator is the denominator of [Perbill].
const PerbillDenominator = 1_000_000_000

// Perbill is a fraction in [0, 1] with a precision of one billionth.
// The zero value is the numeric value of 0.
// See [Permill] for details.
type Perbill struct {
	parts uint32 // numerator, at most PerbillDenominator
}

// NewPerbill returns a fraction equal to parts / [PerbillDenominator].
// See [NewPermill] for details.
func NewPerbill(parts uint32) (Perbill, error) {
	if parts > PerbillDenominator {
		return Perbill{}, fmt.Errorf("%v/%v: %w", parts, PerbillDenominator, errNumeratorRange)
	}
	return Perbill{parts: parts}, nil
}

// PerbillFromParts returns a fraction equal to parts / [PerbillDenominator], clamped to 1.
func PerbillFromParts(parts uint32) Perbill {
	if parts > PerbillDenominator {
		parts = PerbillDenominator
	}
	return Perbill{parts: parts}
}

// PerbillFromPercent returns a fraction equal to x / 100, clamped to 1.
func PerbillFromPercent(x uint64) Perbill {
	return Perbill{parts: uint32(fromPercent(x, PerbillDenominator))}
}

// PerbillFromPerthousand returns a fraction equal to x / 1000, clamped to 1.
func PerbillFromPerthousand(x uint64) Perbill {
	return Perbill{parts: uint32(fromPerthousand(x, PerbillDenominator))}
}

// PerbillFromRational returns a fraction equal to p / q rounded down, clamped to 1.
// See [PermillFromRational] for details.
func PerbillFromRational(p, q uint64) Perbill {
	f, err := PerbillFromRationalRounding(p, q, arith.RoundDown)
	if err != nil {
		return Perbill{parts: PerbillDenominator}
	}
	return f
}

// PerbillFromRationalRounding is like [PermillFromRationalRounding] but for [Perbill].
func PerbillFromRationalRounding(p, q uint64, mode arith.Rounding) (Perbill, error) {
	parts, err := scale(p, q, PerbillDenominator, mode)
	if err != nil {
		return Perbill{}, fmt.Errorf("converting %v/%v to %T: %w", p, q, Perbill{}, err)
	}
	return Perbill{parts: uint32(parts)}, nil
}

// Zero returns a fraction equal to 0.
func (p Perbill) Zero() Perbill {
	return Perbill{}
}

// One returns a fraction equal to 1.
func (p Perbill) One() Perbill {
	return Perbill{parts: PerbillDenominator}
}

// Parts returns the numerator of p.
func (p Perbill) Parts() uint32 {
	return p.parts
}

// Numerator implements the [Fraction] interface.
func (p Perbill) Numerator() uint64 {
	return uint64(p.parts)
}

// Denominator implements the [Fraction] interface.
func (p Perbill) Denominator() uint64 {
	return PerbillDenominator
}

// IsZero returns true if p == 0.
func (p Perbill) IsZero() bool {
	return p.parts == 0
}

// IsOne returns true if p == 1.
func (p Perbill) IsOne() bool {
	return p.parts == PerbillDenominator
}

// Cmp compares p and q numerically.
func (p Perbill) Cmp(q Perbill) int {
	return cmpParts(uint64(p.parts), uint64(q.parts))
}

// String implements the [fmt.Stringer] interface.
func (p Perbill) String() string {
	return fmt.Sprintf("%v/%v", p.parts, PerbillDenominator)
}

// CheckedAdd returns p + q, ok is false if the sum is greater than 1.
func (p Perbill) CheckedAdd(q Perbill) (r Perbill, ok bool) {
	s := uint64(p.parts) + uint64(q.parts) // at most 2 * PerbillDenominator
	if s > PerbillDenominator {
		return Perbill{}, false
	}
	return Perbill{parts: uint32(s)}, true
}

// SaturatingAdd returns p + q, clamped to 1.
func (p Perbill) SaturatingAdd(q Perbill) Perbill {
	r, ok := p.CheckedAdd(q)
	if !ok {
		return p.One()
	}
	return r
}

// CheckedSub returns p - q, ok is false if the difference is negative.
func (p Perbill) CheckedSub(q Perbill) (r Perbill, ok bool) {
	if p.parts < q.parts {
		return Perbill{}, false
	}
	return Perbill{parts: p.parts - q.parts}, true
}

// SaturatingSub returns p - q, clamped to 0.
func (p Perbill) SaturatingSub(q Perbill) Perbill {
	r, ok := p.CheckedSub(q)
	if !ok {
		return Perbill{}
	}
	return r
}

// Mul returns p * q rounded down.
func (p Perbill) Mul(q Perbill) Perbill {
	return p.MulRound(q, arith.RoundDown)
}

// MulRound returns p * q rounded using the given method.
func (p Perbill) MulRound(q Perbill, mode arith.Rounding) Perbill {
	return Perbill{parts: uint32(mulParts(uint64(p.parts), uint64(q.parts), PerbillDenominator, mode))}
}

// Square returns p * p rounded down.
func (p Perbill) Square() Perbill {
	return p.Mul(p)
}

// SaturatingPow returns p^exp, rounded down after every multiplication.
func (p Perbill) SaturatingPow(exp uint) Perbill {
	return Perbill{parts: uint32(powParts(uint64(p.parts), PerbillDenominator, exp))}
}

// CheckedDiv returns p / q rounded down, ok is false if q is 0 or p > q.
func (p Perbill) CheckedDiv(q Perbill) (r Perbill, ok bool) {
	parts, ok := divParts(uint64(p.parts), uint64(q.parts), PerbillDenominator)
	if !ok {
		return Perbill{}, false
	}
	return Perbill{parts: uint32(parts)}, true
}

// SaturatingDiv returns p / q rounded down, clamped to 1.
// See [Permill.SaturatingDiv] for details.
func (p Perbill) SaturatingDiv(q Perbill) Perbill {
	if p.parts == 0 {
		return Perbill{}
	}
	r, ok := p.CheckedDiv(q)
	if !ok {
		return p.One()
	}
	return r
}

// Complement returns 1 - p exactly.
func (p Perbill) Complement() Perbill {
	return Perbill{parts: PerbillDenominator - p.parts}
}

// MulFloor returns ⌊p * x⌋.
func (p Perbill) MulFloor(x uint64) uint64 {
	return mulInt(uint64(p.parts), PerbillDenominator, x, arith.RoundDown)
}

// MulCeil returns ⌈p * x⌉.
func (p Perbill) MulCeil(x uint64) uint64 {
	return mulInt(uint64(p.parts), PerbillDenominator, x, arith.RoundUp)
}

// MulIntRound returns p * x rounded using the given method.
func (p Perbill) MulIntRound(x uint64, mode arith.Rounding) uint64 {
	return mulInt(uint64(p.parts), PerbillDenominator, x, mode)
}

// SaturatingReciprocalMul returns x / p rounded half up, clamped to [math.MaxUint64].
// See [Permill.SaturatingReciprocalMul] for details.
func (p Perbill) SaturatingReciprocalMul(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerbillDenominator, x, arith.RoundHalfUp)
}

// SaturatingReciprocalMulFloor returns ⌊x / p⌋, clamped to [math.MaxUint64].
func (p Perbill) SaturatingReciprocalMulFloor(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerbillDenominator, x, arith.RoundDown)
}

// SaturatingReciprocalMulCeil returns ⌈x / p⌉, clamped to [math.MaxUint64].
func (p Perbill) SaturatingReciprocalMulCeil(x uint64) uint64 {
	return reciprocalMulInt(uint64(p.parts), PerbillDenominator, x, arith.RoundUp)
}
