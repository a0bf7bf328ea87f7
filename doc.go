/*
Package arith implements deterministic integer arithmetic primitives for
fixed-point and per-unit numbers.
It is specifically designed for replicated state machines, where every node
must compute bit-identical results regardless of compiler, platform, or CPU.
Floating-point arithmetic is never used.

# Multiply-Divide

[MulDiv] computes a * b / c for unsigned integers without intermediate overflow.
The operation is carried out in three steps:

 1. The operands are promoted to 128 bits and multiplied using [bits.Mul64].
 2. The 128-bit product is divided by c using [bits.Div64].
 3. The quotient is rounded and narrowed back to the width of the operands.

If the rounded quotient does not fit the width of the operands, [ErrOverflow]
is returned.
The intermediate product never overflows, because two operands of at most
64 bits always have a product of at most 128 bits.

[MulDiv128] provides the same contract for 128-bit operands.
Its intermediate product is computed with 256-bit integers.

# Rounding

The following rounding methods are available:

	| Method        | Description                                |
	| ------------- | ------------------------------------------ |
	| RoundDown     | discard remainder (floor)                  |
	| RoundUp       | round up if remainder is not zero (ceiling)|
	| RoundHalfUp   | round to nearest, ties away from zero      |
	| RoundHalfEven | round to nearest, ties to even             |

Rounding to nearest compares remainder / c against 1 / 2 using [Compare],
so 2 * remainder is never formed.

# Comparison

[Compare] orders two fractions n1 / d1 and n2 / d2 without computing either
division.
Cross products are formed at 128 bits.
[Compare128] orders fractions of 128-bit operands by incremental long division,
which needs no wider intermediate at all.

# Errors

All functions are pure and never allocate.
A zero divisor or denominator is a violation of the calling contract and
causes a panic, similar to integer division in Go.
An overflow of the mathematical result is reported with [ErrOverflow].

[bits.Mul64]: https://pkg.go.dev/math/bits#Mul64
[bits.Div64]: https://pkg.go.dev/math/bits#Div64
*/
package arith
