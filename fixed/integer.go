package fixed

import (
	"math"

	"github.com/govalues/arith"
	"lukechampine.com/uint128"
)

// split64 returns the sign and the magnitude of x.
func split64(x int64) (neg bool, abs uint64) {
	abs = uint64(x)
	if x < 0 {
		abs = -abs
	}
	return x < 0, abs
}

// join64 returns the integer with the given sign and magnitude.
// If the integer cannot be represented as int64, ok is false.
func join64(neg bool, abs uint64) (x int64, ok bool) {
	if neg {
		if abs > 1<<63 {
			return 0, false
		}
		return int64(-abs), true
	}
	if abs > math.MaxInt64 {
		return 0, false
	}
	return int64(abs), true
}

// sat64 returns the bound of int64 with the given sign.
func sat64(neg bool) int64 {
	if neg {
		return math.MinInt64
	}
	return math.MaxInt64
}

// mulDiv64 calculates a * b / c for signed integers.
// The magnitude of the result is rounded using the given method.
// If the result cannot be represented as int64, mulDiv64 returns the bound
// with the sign of the result and [arith.ErrOverflow].
// mulDiv64 panics if c is 0.
func mulDiv64(a, b, c int64, mode arith.Rounding) (int64, error) {
	aneg, aabs := split64(a)
	bneg, babs := split64(b)
	cneg, cabs := split64(c)
	neg := aneg != bneg != cneg
	abs, err := arith.MulDiv(aabs, babs, cabs, mode)
	if err != nil {
		return sat64(neg), err
	}
	z, ok := join64(neg, abs)
	if !ok {
		return sat64(neg), arith.ErrOverflow
	}
	return z, nil
}

// add128 calculates x + y and checks overflow.
func add128(x, y uint128.Uint128) (z uint128.Uint128, ok bool) {
	z = x.AddWrap(y)
	if z.Cmp(x) < 0 {
		return uint128.Zero, false
	}
	return z, true
}

// sub128 calculates x - y and checks underflow.
func sub128(x, y uint128.Uint128) (z uint128.Uint128, ok bool) {
	if x.Cmp(y) < 0 {
		return uint128.Zero, false
	}
	return x.SubWrap(y), true
}

// split128 returns the sign and the magnitude of a two's complement
// 128-bit integer.
func split128(x uint128.Uint128) (neg bool, abs uint128.Uint128) {
	if x.Hi>>63 == 0 {
		return false, x
	}
	return true, uint128.Zero.SubWrap(x)
}

// join128 returns the two's complement bit pattern of the integer with the
// given sign and magnitude.
func join128(neg bool, abs uint128.Uint128) uint128.Uint128 {
	if !neg {
		return abs
	}
	return uint128.Zero.SubWrap(abs)
}
