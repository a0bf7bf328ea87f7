package fixed

import (
	"fmt"

	"github.com/govalues/decimal"
)

// MustFixedU64FromDecimal is like [FixedU64FromDecimal] but panics if the
// decimal cannot be converted.
// It simplifies safe initialization of global variables holding numbers.
func MustFixedU64FromDecimal(d decimal.Decimal) FixedU64 {
	x, err := FixedU64FromDecimal(d)
	if err != nil {
		panic(fmt.Sprintf("FixedU64FromDecimal(%v) failed: %v", d, err))
	}
	return x
}

// MustFixedI64FromDecimal is like [FixedI64FromDecimal] but panics if the
// decimal cannot be converted.
func MustFixedI64FromDecimal(d decimal.Decimal) FixedI64 {
	x, err := FixedI64FromDecimal(d)
	if err != nil {
		panic(fmt.Sprintf("FixedI64FromDecimal(%v) failed: %v", d, err))
	}
	return x
}
