/*
Package perthing implements per-unit fractions in the range [0, 1].
It is specifically designed for replicated state machines, where every node
must compute bit-identical results.

# Representation

Every type in this package is a struct wrapping a single unsigned integer,
the number of parts.
The numerical value is calculated as parts / D, where D is the denominator
fixed by the type:

	| Type        | Parts  | Denominator               |
	| ----------- | ------ | ------------------------- |
	| Percent     | uint8  | 100                       |
	| Permill     | uint32 | 1,000,000                 |
	| Perbill     | uint32 | 1,000,000,000             |
	| Perquintill | uint64 | 1,000,000,000,000,000,000 |
	| PerU16      | uint16 | 65,535                    |

The zero value of every type is the fraction 0.
Parts never exceed the denominator.

# Encoding

[Permill.Parts] and the similar methods return the raw number of parts, and
[NewPermill] and the similar functions build a fraction from it.
Together they are the boundary for codecs and storage: NewX returns an error
for parts above the denominator, while XFromParts clamps them to one.

# Operations

Fractions are rescaled and applied to integers through [arith.MulDiv],
so intermediate products never overflow.
Multiplication of two fractions rounds down unless a rounding method is given.

Arithmetic never wraps around.
Methods with the Saturating prefix clamp the result to [0, 1] or, for
integer results, to [math.MaxUint64].
Methods with the Checked prefix return false instead of a result outside
the range.

Fractions of different types are converted with [Convert] and built
from any ratio with [FromRational].
*/
package perthing
