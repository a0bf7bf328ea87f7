/*
Package fixed implements immutable fixed-point decimal numbers.
It is specifically designed for replicated state machines, where every node
must compute bit-identical results.

# Representation

Every type in this package is a struct wrapping a single inner integer.
The numerical value is calculated as inner / 10^P, where P is the number of
digits after the decimal point fixed by the type:

	| Type      | Inner            | P  | Minimum                                         | Maximum                                        |
	| --------- | ---------------- | -- | ----------------------------------------------- | ---------------------------------------------- |
	| FixedU64  | uint64           | 9  | 0                                               | 18,446,744,073.709551615                       |
	| FixedI64  | int64            | 9  | -9,223,372,036.854775808                        | 9,223,372,036.854775807                        |
	| FixedU128 | uint128.Uint128  | 18 | 0                                               | 340,282,366,920,938,463,463.374607431768211455 |
	| FixedI128 | sign + magnitude | 18 | -170,141,183,460,469,231,731.687303715884105728 | 170,141,183,460,469,231,731.687303715884105727 |

[FixedI128] has the range of a two's complement 128-bit integer.
Its inner integer, as returned by [FixedI128.Inner], is the two's complement
bit pattern.

# Operations

Addition and subtraction operate directly on the inner integers.
Multiplication computes inner1 * inner2 / 10^P and division computes
inner1 * 10^P / inner2, both through [arith.MulDiv] or [arith.MulDiv128],
so the intermediate product never overflows.
Results of multiplication and division are rounded towards zero.

Arithmetic never wraps around.
Methods with the Saturating prefix clamp the result to the range of the type.
Methods with the Checked prefix return false instead of a result that does not
fit the type.

# Fractions

Numbers are converted from per-unit fractions with [FixedU64FromFraction] and
similar functions, and to fractions with [ToFraction].
Both directions rescale the inner integer with the multiply-divide primitive
and are exact when the denominator of the fraction divides 10^P.

# Decimals

[FixedU64] and [FixedI64] interoperate with [decimal.Decimal] from
github.com/govalues/decimal.
A decimal carries at most 19 significant digits, so conversion to a decimal
may round the last digits of large numbers.

[decimal.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
*/
package fixed
