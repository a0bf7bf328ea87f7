package fixed

import (
	"errors"
	"fmt"

	"github.com/govalues/arith"
	"github.com/govalues/arith/perthing"
	"lukechampine.com/uint128"
)

const (
	prec64  = 9                         // digits after the decimal point of 64-bit numbers
	div64   = 1_000_000_000             // 10^prec64
	prec128 = 18                        // digits after the decimal point of 128-bit numbers
	acc128  = 1_000_000_000_000_000_000 // 10^prec128
)

// div128 is acc128 as a 128-bit integer.
var div128 = uint128.From64(acc128)

var (
	errDivisionByZero = errors.New("division by zero")
	errNegative       = errors.New("negative value")
)

// Number is a constraint that permits any fixed-point type.
type Number interface {
	FixedU64 | FixedI64 | FixedU128 | FixedI128
	Accuracy() uint64
	unitParts() uint64
}

// ToFraction returns x as a fraction of tier P, rounded down.
// Negative numbers are clamped to 0, numbers greater than 1 are clamped to 1.
func ToFraction[P perthing.Tier, F Number](x F) P {
	p, err := perthing.FromRational[P](x.unitParts(), x.Accuracy(), arith.RoundDown)
	if err != nil {
		// unitParts is at most Accuracy.
		panic(fmt.Sprintf("ToFraction(%v) failed: %v", x, err))
	}
	return p
}

// checkedPow calculates x^exp using exponentiation by squaring.
// The result is rounded after every multiplication.
func checkedPow[F any](x, one F, exp uint, mul func(a, b F) (F, bool)) (F, bool) {
	var ok bool
	z := one
	for exp > 0 {
		if exp&1 != 0 {
			z, ok = mul(z, x)
			if !ok {
				return z, false
			}
		}
		exp >>= 1
		if exp > 0 {
			x, ok = mul(x, x)
			if !ok {
				return x, false
			}
		}
	}
	return z, true
}

// format returns the decimal representation of a number with the given
// sign, integer part and fractional digits.
func format(neg bool, whole string, frac uint64, prec int) string {
	if neg {
		return fmt.Sprintf("-%v.%0*d", whole, prec, frac)
	}
	return fmt.Sprintf("%v.%0*d", whole, prec, frac)
}
