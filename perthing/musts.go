package perthing

import "fmt"

// MustNewPercent is like [NewPercent] but panics if parts is out of range.
// It simplifies safe initialization of global variables holding fractions.
func MustNewPercent(parts uint8) Percent {
	p, err := NewPercent(parts)
	if err != nil {
		panic(fmt.Sprintf("NewPercent(%v) failed: %v", parts, err))
	}
	return p
}

// MustNewPerU16 is like [NewPerU16] but panics if parts is out of range.
func MustNewPerU16(parts uint16) PerU16 {
	p, err := NewPerU16(parts)
	if err != nil {
		panic(fmt.Sprintf("NewPerU16(%v) failed: %v", parts, err))
	}
	return p
}

// MustNewPermill is like [NewPermill] but panics if parts is out of range.
func MustNewPermill(parts uint32) Permill {
	p, err := NewPermill(parts)
	if err != nil {
		panic(fmt.Sprintf("NewPermill(%v) failed: %v", parts, err))
	}
	return p
}

// MustNewPerbill is like [NewPerbill] but panics if parts is out of range.
func MustNewPerbill(parts uint32) Perbill {
	p, err := NewPerbill(parts)
	if err != nil {
		panic(fmt.Sprintf("NewPerbill(%v) failed: %v", parts, err))
	}
	return p
}

// MustNewPerquintill is like [NewPerquintill] but panics if parts is out of range.
func MustNewPerquintill(parts uint64) Perquintill {
	p, err := NewPerquintill(parts)
	if err != nil {
		panic(fmt.Sprintf("NewPerquintill(%v) failed: %v", parts, err))
	}
	return p
}
