package fixed

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
	"lukechampine.com/uint128"

	"github.com/govalues/arith"
	"github.com/govalues/arith/perthing"
)

// bigI128 returns the inner integer of x as a big integer.
func bigI128(x FixedI128) *big.Int {
	b := x.abs.Big()
	if x.neg {
		b.Neg(b)
	}
	return b
}

var (
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
)

func fitsI128(b *big.Int) bool {
	return b.Cmp(minI128) >= 0 && b.Cmp(maxI128) <= 0
}

func TestFixedI128_Inner(t *testing.T) {
	max, min := FixedI128{}.MaxValue(), FixedI128{}.MinValue()
	assert.Equal(t, uint128.New(math.MaxUint64, math.MaxInt64), max.Inner())
	assert.Equal(t, uint128.New(0, 1<<63), min.Inner())
	assert.Equal(t, uint128.Max, FixedI128FromInner(uint128.Max).Inner())
	assert.Equal(t, "-0.000000000000000001", FixedI128FromInner(uint128.Max).String())
	assert.Equal(t, FixedI128{}, FixedI128FromInner(uint128.Zero))

	rnd := rand.New(rand.NewSource(50))
	for i := 0; i < 1_000; i++ {
		inner := uint128.New(rnd.Uint64(), rnd.Uint64())
		require.Equal(t, inner, FixedI128FromInner(inner).Inner())

		q := perthing.PerquintillFromParts(rnd.Uint64() % (perthing.PerquintillDenominator + 1))
		require.Equal(t, q, ToFraction[perthing.Perquintill](FixedI128FromFraction(q)))
	}
	assert.True(t, ToFraction[perthing.Percent](FixedI128FromInt(-1)).IsZero())
	assert.True(t, ToFraction[perthing.Percent](FixedI128FromInt(2)).IsOne())
	assert.Equal(t, FixedI128FromRational(1, 2), FixedI128FromFraction(perthing.PercentFromParts(50)))
}

func TestFixedI128FromInt(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0.000000000000000000"},
		{-5, "-5.000000000000000000"},
		{math.MaxInt64, "9223372036854775807.000000000000000000"},
		{math.MinInt64, "-9223372036854775808.000000000000000000"},
	}
	for _, tt := range tests {
		got := FixedI128FromInt(tt.n)
		assert.Equal(t, tt.want, got.String(), "FixedI128FromInt(%v)", tt.n)
	}
}

func TestFixedI128FromRational(t *testing.T) {
	assert.Equal(t, "-2.500000000000000000", FixedI128FromRational(-5, 2).String())
	assert.Equal(t, "-0.333333333333333333", FixedI128FromRational(1, -3).String())
	assert.Equal(t, "0.333333333333333333", FixedI128FromRational(-1, -3).String())

	got, err := FixedI128FromRationalRounding(-2, 3, arith.RoundUp)
	require.NoError(t, err)
	assert.Equal(t, "-0.666666666666666667", got.String())

	_, err = FixedI128FromRationalRounding(1, 0, arith.RoundDown)
	assert.ErrorIs(t, err, errDivisionByZero)
	_, ok := CheckedFixedI128FromRational(1, 0)
	assert.False(t, ok)
	x, ok := CheckedFixedI128FromRational(math.MinInt64, math.MinInt64)
	require.True(t, ok)
	assert.True(t, x.IsOne())
	assert.Panics(t, func() { FixedI128FromRational(1, 0) })
}

func TestFixedI128_Arithmetic(t *testing.T) {
	max, min := FixedI128{}.MaxValue(), FixedI128{}.MinValue()
	tiny := FixedI128FromInner(uint128.From64(1))
	minusTiny := FixedI128FromInner(uint128.Max)
	two, minusTwo := FixedI128FromInt(2), FixedI128FromInt(-2)

	t.Run("add", func(t *testing.T) {
		z, ok := FixedI128FromRational(-3, 2).CheckedAdd(two)
		require.True(t, ok)
		assert.Equal(t, FixedI128FromRational(1, 2), z)
		z, ok = min.CheckedAdd(max)
		require.True(t, ok)
		assert.Equal(t, minusTiny, z)
		_, ok = max.CheckedAdd(tiny)
		assert.False(t, ok)
		assert.Equal(t, max, max.SaturatingAdd(tiny))
		assert.Equal(t, min, min.SaturatingAdd(minusTiny))
		assert.Equal(t, FixedI128{}, two.SaturatingAdd(minusTwo))
	})

	t.Run("sub", func(t *testing.T) {
		z, ok := FixedI128FromInt(1).CheckedSub(FixedI128FromRational(5, 2))
		require.True(t, ok)
		assert.Equal(t, FixedI128FromRational(-3, 2), z)
		_, ok = min.CheckedSub(tiny)
		assert.False(t, ok)
		assert.Equal(t, min, min.SaturatingSub(tiny))
		assert.Equal(t, max, max.SaturatingSub(minusTiny))
		_, ok = FixedI128{}.CheckedSub(min)
		assert.False(t, ok)
		assert.Equal(t, max, FixedI128{}.SaturatingSub(min))
		z, ok = FixedI128{}.CheckedSub(max)
		require.True(t, ok)
		assert.Equal(t, uint128.New(1, 1<<63), z.Inner())
	})

	t.Run("mul", func(t *testing.T) {
		x := FixedI128FromRational(-3, 2)
		z, ok := x.CheckedMul(FixedI128FromRational(3, 2))
		require.True(t, ok)
		assert.Equal(t, FixedI128FromRational(-9, 4), z)
		assert.Equal(t, FixedI128FromRational(9, 4), x.SaturatingMul(x))
		assert.Equal(t, FixedI128{}, minusTiny.SaturatingMul(tiny))
		_, ok = max.CheckedMul(two)
		assert.False(t, ok)
		assert.Equal(t, max, max.SaturatingMul(two))
		assert.Equal(t, min, max.SaturatingMul(minusTwo))
		assert.Equal(t, min, min.SaturatingMul(FixedI128FromInt(1)))
	})

	t.Run("div", func(t *testing.T) {
		z, ok := FixedI128FromInt(-1).CheckedDiv(FixedI128FromInt(3))
		require.True(t, ok)
		assert.Equal(t, FixedI128FromRational(-1, 3), z)
		_, ok = two.CheckedDiv(FixedI128{})
		assert.False(t, ok)
		assert.Panics(t, func() { two.SaturatingDiv(FixedI128{}) })
		minusOne := FixedI128FromInt(-1)
		_, ok = min.CheckedDiv(minusOne)
		assert.False(t, ok)
		assert.Equal(t, max, min.SaturatingDiv(minusOne))
	})

	t.Run("int", func(t *testing.T) {
		x := FixedI128FromRational(-5, 2)
		assert.Equal(t, int64(-7), x.SaturatingMulInt(3))
		n, ok := x.CheckedMulInt(-3)
		require.True(t, ok)
		assert.Equal(t, int64(7), n)
		_, ok = two.CheckedMulInt(math.MinInt64)
		assert.False(t, ok)
		assert.Equal(t, int64(math.MinInt64), two.SaturatingMulInt(math.MinInt64))
		assert.Equal(t, int64(math.MaxInt64), minusTwo.SaturatingMulInt(math.MinInt64))

		n, ok = FixedI128FromRational(-15, 2).CheckedDivInt(2)
		require.True(t, ok)
		assert.Equal(t, int64(-3), n)
		_, ok = x.CheckedDivInt(0)
		assert.False(t, ok)
		_, ok = max.CheckedDivInt(1)
		assert.False(t, ok)
		n, ok = FixedI128FromInt(math.MinInt64).CheckedDivInt(1)
		require.True(t, ok)
		assert.Equal(t, int64(math.MinInt64), n)
	})

	t.Run("pow", func(t *testing.T) {
		assert.Equal(t, FixedI128FromInt(-8), minusTwo.SaturatingPow(3))
		assert.Equal(t, FixedI128FromInt(16), minusTwo.SaturatingPow(4))
		assert.Equal(t, min, minusTwo.SaturatingPow(71))
		assert.Equal(t, max, minusTwo.SaturatingPow(70))
		_, ok := minusTwo.CheckedPow(70)
		assert.False(t, ok)
		r, ok := FixedI128FromInt(-4).Reciprocal()
		require.True(t, ok)
		assert.Equal(t, FixedI128FromRational(-1, 4), r)
	})

	t.Run("sqrt", func(t *testing.T) {
		z, ok := FixedI128FromInt(4).CheckedSqrt()
		require.True(t, ok)
		assert.Equal(t, two, z)
		_, ok = minusTiny.CheckedSqrt()
		assert.False(t, ok)
	})
}

func TestFixedI128_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(51))
	acc := new(big.Int).SetUint64(acc128)
	next := func() FixedI128 {
		return FixedI128FromInner(uint128.New(rnd.Uint64(), rnd.Uint64()).Rsh(uint(rnd.Intn(128))))
	}
	for i := 0; i < 5_000; i++ {
		x, y := next(), next()
		if rnd.Intn(2) == 0 {
			x = x.SaturatingNeg()
		}
		bx, by := bigI128(x), bigI128(y)

		want := new(big.Int).Add(bx, by)
		got, ok := x.CheckedAdd(y)
		require.Equal(t, fitsI128(want), ok, "%v.CheckedAdd(%v)", x, y)
		if ok {
			require.Equal(t, 0, want.Cmp(bigI128(got)), "%v.CheckedAdd(%v)", x, y)
		}

		want = new(big.Int).Sub(bx, by)
		got, ok = x.CheckedSub(y)
		require.Equal(t, fitsI128(want), ok, "%v.CheckedSub(%v)", x, y)
		if ok {
			require.Equal(t, 0, want.Cmp(bigI128(got)), "%v.CheckedSub(%v)", x, y)
		}

		want = new(big.Int).Mul(bx, by)
		want.Quo(want, acc)
		got, ok = x.CheckedMul(y)
		require.Equal(t, fitsI128(want), ok, "%v.CheckedMul(%v)", x, y)
		if ok {
			require.Equal(t, 0, want.Cmp(bigI128(got)), "%v.CheckedMul(%v)", x, y)
		}

		require.Equal(t, bx.Cmp(by), x.Cmp(y), "%v.Cmp(%v)", x, y)
	}
}

func TestFixedI128_Neg(t *testing.T) {
	max, min := FixedI128{}.MaxValue(), FixedI128{}.MinValue()
	_, ok := min.CheckedNeg()
	assert.False(t, ok)
	assert.Equal(t, max, min.SaturatingNeg())
	_, ok = min.CheckedAbs()
	assert.False(t, ok)
	assert.Equal(t, max, min.SaturatingAbs())

	z, ok := max.CheckedNeg()
	require.True(t, ok)
	assert.Equal(t, uint128.New(1, 1<<63), z.Inner())
	assert.Equal(t, FixedI128FromInt(2), FixedI128FromInt(-2).SaturatingAbs())
	assert.Equal(t, FixedI128{}, FixedI128{}.SaturatingNeg())

	assert.True(t, FixedI128FromInt(-2).IsNeg())
	assert.False(t, FixedI128{}.IsNeg())
	assert.Equal(t, -1, FixedI128FromInt(-2).Sign())
	assert.Equal(t, 0, FixedI128{}.Sign())
	assert.Equal(t, 1, FixedI128FromInt(2).Sign())
	assert.True(t, FixedI128FromInt(1).IsOne())
	assert.False(t, FixedI128FromInt(-1).IsOne())
}

func TestFixedI128_Round(t *testing.T) {
	tests := []struct {
		n, d                                int64
		trunc, frac, floor, ceil, wantRound string
	}{
		{5, 2, "2", "0.5", "2", "3", "3"},
		{-5, 2, "-2", "-0.5", "-3", "-2", "-3"},
		{-12, 5, "-2", "-0.4", "-3", "-2", "-2"},
		{-1, 2, "0", "-0.5", "-1", "0", "-1"},
		{-3, 1, "-3", "0", "-3", "-3", "-3"},
	}
	parse := func(s string) FixedI128 {
		r, ok := new(big.Rat).SetString(s)
		require.True(t, ok)
		return FixedI128FromRational(r.Num().Int64(), r.Denom().Int64())
	}
	for _, tt := range tests {
		x := FixedI128FromRational(tt.n, tt.d)
		assert.Equal(t, parse(tt.trunc), x.Trunc(), "%v.Trunc()", x)
		assert.Equal(t, parse(tt.frac), x.Frac(), "%v.Frac()", x)
		assert.Equal(t, parse(tt.floor), x.Floor(), "%v.Floor()", x)
		assert.Equal(t, parse(tt.ceil), x.Ceil(), "%v.Ceil()", x)
		assert.Equal(t, parse(tt.wantRound), x.Round(), "%v.Round()", x)
	}
	max, min := FixedI128{}.MaxValue(), FixedI128{}.MinValue()
	assert.Equal(t, min, min.Floor())
	assert.Equal(t, min, min.Round())
	assert.Equal(t, max, max.Ceil())
	assert.Equal(t, max, max.Round())
}

func TestFixedI128_String(t *testing.T) {
	assert.Equal(t, "170141183460469231731.687303715884105727", FixedI128{}.MaxValue().String())
	assert.Equal(t, "-170141183460469231731.687303715884105728", FixedI128{}.MinValue().String())
	assert.Equal(t, "0.000000000000000000", FixedI128{}.String())
}
