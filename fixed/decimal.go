package fixed

import (
	"fmt"

	"github.com/govalues/arith"
	"github.com/govalues/decimal"
)

// FixedU64FromDecimal converts a decimal to a fixed-point number.
// The decimal is rounded to 9 digits after the decimal point
// using "half to even" rounding.
//
// FixedU64FromDecimal returns an error if:
//   - the rounded decimal is negative;
//   - the rounded decimal is greater than [FixedU64.MaxValue].
func FixedU64FromDecimal(d decimal.Decimal) (FixedU64, error) {
	whole, frac, ok := d.Int64(prec64)
	if !ok {
		return FixedU64{}, fmt.Errorf("converting %v to %T: %w", d, FixedU64{}, arith.ErrOverflow)
	}
	if whole < 0 || frac < 0 {
		return FixedU64{}, fmt.Errorf("converting %v to %T: %w", d, FixedU64{}, errNegative)
	}
	x, ok := CheckedFixedU64FromInt(uint64(whole))
	if ok {
		x, ok = x.CheckedAdd(FixedU64FromInner(uint64(frac)))
	}
	if !ok {
		return FixedU64{}, fmt.Errorf("converting %v to %T: %w", d, FixedU64{}, arith.ErrOverflow)
	}
	return x, nil
}

// Decimal returns x as a decimal with 9 digits after the decimal point.
// Numbers with more than 19 significant digits are rounded to 19 digits
// using "half to even" rounding and have fewer digits after the point.
func (x FixedU64) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromInt64(int64(x.inner/div64), int64(x.inner%div64), prec64)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", x, decimal.Decimal{}, err)
	}
	return d.Pad(prec64), nil
}

// FixedI64FromDecimal converts a decimal to a fixed-point number.
// The decimal is rounded to 9 digits after the decimal point
// using "half to even" rounding.
//
// FixedI64FromDecimal returns an error if the rounded decimal is outside
// the range of the type.
func FixedI64FromDecimal(d decimal.Decimal) (FixedI64, error) {
	whole, frac, ok := d.Int64(prec64)
	if ok {
		var x FixedI64
		x, ok = CheckedFixedI64FromInt(whole)
		if ok {
			x, ok = x.CheckedAdd(FixedI64FromInner(frac))
		}
		if ok {
			return x, nil
		}
	}
	return FixedI64{}, fmt.Errorf("converting %v to %T: %w", d, FixedI64{}, arith.ErrOverflow)
}

// Decimal returns x as a decimal with 9 digits after the decimal point.
func (x FixedI64) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromInt64(x.inner/div64, x.inner%div64, prec64)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", x, decimal.Decimal{}, err)
	}
	return d.Pad(prec64), nil
}
