package perthing

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/govalues/arith"
)

func TestNew(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		p, err := NewPermill(500_000)
		require.NoError(t, err)
		assert.Equal(t, uint32(500_000), p.Parts())

		q, err := NewPercent(100)
		require.NoError(t, err)
		assert.True(t, q.IsOne())

		r, err := NewPerU16(math.MaxUint16)
		require.NoError(t, err)
		assert.True(t, r.IsOne())

		s, err := NewPerquintill(0)
		require.NoError(t, err)
		assert.True(t, s.IsZero())
	})

	t.Run("error", func(t *testing.T) {
		_, err := NewPercent(101)
		assert.ErrorIs(t, err, errNumeratorRange)
		_, err = NewPermill(1_000_001)
		assert.ErrorIs(t, err, errNumeratorRange)
		_, err = NewPerbill(math.MaxUint32)
		assert.ErrorIs(t, err, errNumeratorRange)
		_, err = NewPerquintill(PerquintillDenominator + 1)
		assert.ErrorIs(t, err, errNumeratorRange)
	})
}

func TestMustNew(t *testing.T) {
	assert.Equal(t, uint8(42), MustNewPercent(42).Parts())
	assert.Panics(t, func() { MustNewPercent(101) })
	assert.Panics(t, func() { MustNewPermill(1_000_001) })
	assert.Panics(t, func() { MustNewPerbill(1_000_000_001) })
	assert.Panics(t, func() { MustNewPerquintill(math.MaxUint64) })
	assert.NotPanics(t, func() { MustNewPerU16(math.MaxUint16) })
}

func TestFromParts(t *testing.T) {
	assert.True(t, PercentFromParts(math.MaxUint8).IsOne())
	assert.True(t, PermillFromParts(math.MaxUint32).IsOne())
	assert.True(t, PerbillFromParts(math.MaxUint32).IsOne())
	assert.True(t, PerquintillFromParts(math.MaxUint64).IsOne())
	assert.Equal(t, uint32(999_999), PermillFromParts(999_999).Parts())
}

func TestFromPercent(t *testing.T) {
	assert.Equal(t, uint8(37), PercentFromPercent(37).Parts())
	assert.Equal(t, uint16(32_767), PerU16FromPercent(50).Parts())
	assert.Equal(t, uint32(500_000), PermillFromPercent(50).Parts())
	assert.Equal(t, uint32(10_000_000), PerbillFromPercent(1).Parts())
	assert.Equal(t, uint64(10_000_000_000_000_000), PerquintillFromPercent(1).Parts())
	assert.True(t, PerbillFromPercent(101).IsOne())
	assert.True(t, PercentFromPercent(math.MaxUint64).IsOne())

	assert.Equal(t, uint32(5_000), PermillFromPerthousand(5).Parts())
	assert.True(t, PerbillFromPerthousand(1_000).IsOne())
	assert.Equal(t, uint64(1_000_000_000_000_000), PerquintillFromPerthousand(1).Parts())
}

func TestFromRational(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			p, q                         uint64
			wantDown, wantUp, wantHalfUp uint32
		}{
			{0, 5, 0, 0, 0},
			{1, 3, 333_333, 333_334, 333_333},
			{2, 3, 666_666, 666_667, 666_667},
			{1, 2, 500_000, 500_000, 500_000},
			{7, 7, 1_000_000, 1_000_000, 1_000_000},
			{math.MaxUint64 - 1, math.MaxUint64, 999_999, 1_000_000, 1_000_000},
		}
		for _, tt := range tests {
			modes := []arith.Rounding{arith.RoundDown, arith.RoundUp, arith.RoundHalfUp}
			wants := []uint32{tt.wantDown, tt.wantUp, tt.wantHalfUp}
			for i, mode := range modes {
				got, err := PermillFromRationalRounding(tt.p, tt.q, mode)
				require.NoError(t, err)
				assert.Equal(t, wants[i], got.Parts(), "PermillFromRationalRounding(%v, %v, %v)", tt.p, tt.q, mode)
			}
		}
		assert.Equal(t, uint64(999_999_999_999_999_999), PerquintillFromRational(math.MaxUint64-1, math.MaxUint64).Parts())
		assert.Equal(t, uint8(33), PercentFromRational(1, 3).Parts())
	})

	t.Run("saturating", func(t *testing.T) {
		assert.True(t, PermillFromRational(5, 3).IsOne())
		assert.True(t, PermillFromRational(1, 0).IsOne())
		assert.True(t, PerU16FromRational(0, 0).IsOne())
		assert.True(t, PercentFromRational(0, 5).IsZero())
	})

	t.Run("error", func(t *testing.T) {
		_, err := PermillFromRationalRounding(1, 0, arith.RoundDown)
		assert.ErrorIs(t, err, errDivisionByZero)
		_, err = PerbillFromRationalRounding(2, 1, arith.RoundDown)
		assert.ErrorIs(t, err, errNumeratorRange)
		_, err = FromRational[Perquintill](math.MaxUint64, 1, arith.RoundDown)
		assert.ErrorIs(t, err, errNumeratorRange)
	})

	t.Run("generic", func(t *testing.T) {
		b, err := FromRational[Perbill](1, 4, arith.RoundDown)
		require.NoError(t, err)
		assert.Equal(t, uint32(250_000_000), b.Parts())

		c, err := FromRational[Percent](2, 3, arith.RoundHalfUp)
		require.NoError(t, err)
		assert.Equal(t, uint8(67), c.Parts())

		u, err := FromRational[PerU16](1, 1, arith.RoundDown)
		require.NoError(t, err)
		assert.True(t, u.IsOne())
	})
}

func TestConvert(t *testing.T) {
	assert.Equal(t, uint32(123_456), Convert[Permill](PerbillFromParts(123_456_789), arith.RoundDown).Parts())
	assert.Equal(t, uint32(123_457), Convert[Permill](PerbillFromParts(123_456_789), arith.RoundHalfUp).Parts())
	assert.Equal(t, uint32(123_456_000), Convert[Perbill](PermillFromParts(123_456), arith.RoundDown).Parts())
	assert.Equal(t, uint16(32_767), Convert[PerU16](PercentFromParts(50), arith.RoundDown).Parts())
	assert.Equal(t, uint8(50), Convert[Percent](PerU16FromParts(32_768), arith.RoundHalfUp).Parts())
	assert.True(t, Convert[Perquintill](PercentFromParts(100), arith.RoundDown).IsOne())
}

func TestPermill_Scenario(t *testing.T) {
	p := PermillFromPercent(50)
	assert.Equal(t, uint64(500_000), p.Numerator())
	assert.Equal(t, uint64(1_000_000), p.Denominator())
	assert.Equal(t, uint64(3), p.MulFloor(7))
	assert.Equal(t, uint64(4), p.MulCeil(7))
	assert.Equal(t, "500000/1000000", p.String())
}

func TestAdd(t *testing.T) {
	a, b := PercentFromParts(60), PercentFromParts(50)
	assert.True(t, a.SaturatingAdd(b).IsOne())
	_, ok := a.CheckedAdd(b)
	assert.False(t, ok)

	c, ok := PercentFromParts(30).CheckedAdd(PercentFromParts(20))
	require.True(t, ok)
	assert.Equal(t, uint8(50), c.Parts())

	one := Perquintill{}.One()
	assert.True(t, one.SaturatingAdd(one).IsOne())
	d, ok := one.CheckedAdd(Perquintill{})
	require.True(t, ok)
	assert.True(t, d.IsOne())
	_, ok = one.CheckedAdd(PerquintillFromParts(1))
	assert.False(t, ok)
}

func TestSub(t *testing.T) {
	a, b := PercentFromParts(30), PercentFromParts(50)
	assert.True(t, a.SaturatingSub(b).IsZero())
	_, ok := a.CheckedSub(b)
	assert.False(t, ok)

	c, ok := b.CheckedSub(a)
	require.True(t, ok)
	assert.Equal(t, uint8(20), c.Parts())

	zero := Perbill{}
	assert.True(t, zero.SaturatingSub(zero.One()).IsZero())
}

func TestMul(t *testing.T) {
	assert.Equal(t, uint32(250_000), PermillFromParts(500_000).Mul(PermillFromParts(500_000)).Parts())

	p := PercentFromParts(33)
	assert.Equal(t, uint8(10), p.Mul(p).Parts())
	assert.Equal(t, uint8(11), p.MulRound(p, arith.RoundHalfUp).Parts())
	assert.Equal(t, uint8(11), p.MulRound(p, arith.RoundUp).Parts())
	assert.Equal(t, uint8(25), PercentFromParts(50).Square().Parts())

	one := PerquintillFromParts(PerquintillDenominator)
	assert.True(t, one.Mul(one).IsOne())
	assert.True(t, one.Mul(Perquintill{}).IsZero())
}

func TestSaturatingPow(t *testing.T) {
	p := PercentFromParts(50)
	tests := []struct {
		exp  uint
		want uint8
	}{
		{0, 100},
		{1, 50},
		{2, 25},
		{3, 12},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.SaturatingPow(tt.exp).Parts(), "%v.SaturatingPow(%v)", p, tt.exp)
	}
	assert.True(t, PercentFromParts(0).SaturatingPow(0).IsOne())
	assert.True(t, PercentFromParts(100).SaturatingPow(1_000).IsOne())
	assert.True(t, PercentFromParts(99).SaturatingPow(1_000).IsZero())
	assert.Equal(t, uint32(999_999_998), PerbillFromParts(999_999_999).SaturatingPow(2).Parts())
}

func TestDiv(t *testing.T) {
	a, b := PercentFromParts(25), PercentFromParts(50)
	c, ok := a.CheckedDiv(b)
	require.True(t, ok)
	assert.Equal(t, uint8(50), c.Parts())
	assert.Equal(t, uint8(50), a.SaturatingDiv(b).Parts())

	_, ok = b.CheckedDiv(a)
	assert.False(t, ok)
	assert.True(t, b.SaturatingDiv(a).IsOne())

	_, ok = a.CheckedDiv(Percent{})
	assert.False(t, ok)
	assert.True(t, a.SaturatingDiv(Percent{}).IsOne())
	assert.True(t, Percent{}.SaturatingDiv(Percent{}).IsZero())

	third, ok := PermillFromParts(1).CheckedDiv(PermillFromParts(3))
	require.True(t, ok)
	assert.Equal(t, uint32(333_333), third.Parts())
}

func TestComplement(t *testing.T) {
	assert.Equal(t, uint32(700_000), PermillFromParts(300_000).Complement().Parts())
	assert.True(t, Percent{}.Complement().IsOne())
	assert.True(t, Perquintill{}.One().Complement().IsZero())
}

func TestMulInt(t *testing.T) {
	half := PercentFromParts(50)
	assert.Equal(t, uint64(4), half.MulIntRound(7, arith.RoundHalfUp))
	assert.Equal(t, uint64(4), half.MulIntRound(7, arith.RoundHalfEven))
	assert.Equal(t, uint64(2), half.MulIntRound(5, arith.RoundHalfEven))

	one := PerquintillFromParts(PerquintillDenominator)
	assert.Equal(t, uint64(math.MaxUint64), one.MulFloor(math.MaxUint64))
	assert.Equal(t, uint64(math.MaxUint64), one.MulCeil(math.MaxUint64))

	tiny := PerquintillFromParts(1)
	assert.Equal(t, uint64(0), tiny.MulFloor(1))
	assert.Equal(t, uint64(1), tiny.MulCeil(1))
	assert.Equal(t, uint64(18), tiny.MulFloor(math.MaxUint64))
	assert.Equal(t, uint64(19), tiny.MulCeil(math.MaxUint64))

	u := PerU16FromParts(math.MaxUint16)
	assert.Equal(t, uint64(math.MaxUint64), u.MulFloor(math.MaxUint64))
}

func TestReciprocalMul(t *testing.T) {
	assert.Equal(t, uint64(14), PercentFromParts(50).SaturatingReciprocalMul(7))

	p := PercentFromParts(30)
	assert.Equal(t, uint64(33), p.SaturatingReciprocalMul(10))
	assert.Equal(t, uint64(33), p.SaturatingReciprocalMulFloor(10))
	assert.Equal(t, uint64(34), p.SaturatingReciprocalMulCeil(10))
	assert.Equal(t, uint64(17), p.SaturatingReciprocalMul(5))

	zero := Percent{}
	assert.Equal(t, uint64(math.MaxUint64), zero.SaturatingReciprocalMul(1))
	assert.Equal(t, uint64(0), zero.SaturatingReciprocalMul(0))
	assert.Equal(t, uint64(math.MaxUint64), PerbillFromParts(1).SaturatingReciprocalMul(math.MaxUint64))
	assert.Equal(t, uint64(math.MaxUint64), Perbill{}.One().SaturatingReciprocalMulCeil(math.MaxUint64))
}

func TestCmp(t *testing.T) {
	a, b := PermillFromParts(1), PermillFromParts(2)
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 1, b.Cmp(a))
	assert.Equal(t, 0, a.Cmp(a))
}

func TestString(t *testing.T) {
	assert.Equal(t, "37/100", PercentFromParts(37).String())
	assert.Equal(t, "65535/65535", PerU16{}.One().String())
	assert.Equal(t, "1/1000000000", PerbillFromParts(1).String())
	assert.Equal(t, "0/1000000000000000000", Perquintill{}.String())
}

// propertyTier is the set of methods shared by every tier.
type propertyTier[P any] interface {
	Tier
	MulFloor(x uint64) uint64
	MulCeil(x uint64) uint64
	Complement() P
	SaturatingAdd(q P) P
	CheckedAdd(q P) (P, bool)
	SaturatingSub(q P) P
	CheckedSub(q P) (P, bool)
	Mul(q P) P
	IsZero() bool
	IsOne() bool
	One() P
}

func checkTierProperties[P propertyTier[P]](t *testing.T, seed uint64) {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	var zero P
	denom := zero.Denominator()
	for i := 0; i < 5_000; i++ {
		q := rnd.Uint64()>>uint(rnd.Intn(64)) | 1
		n := rnd.Uint64()
		if q < math.MaxUint64 {
			n %= q + 1
		}
		p, err := FromRational[P](n, q, arith.RoundDown)
		require.NoError(t, err)
		require.LessOrEqual(t, p.Numerator(), denom)

		// Codec round trip
		back, err := FromRational[P](p.Numerator(), p.Denominator(), arith.RoundDown)
		require.NoError(t, err)
		require.Equal(t, p, back)

		// ⌊p·x⌋ ≤ p·x ≤ ⌈p·x⌉
		x := rnd.Uint64() >> uint(rnd.Intn(64))
		exact := new(big.Rat).SetFrac(
			new(big.Int).Mul(new(big.Int).SetUint64(x), new(big.Int).SetUint64(p.Numerator())),
			new(big.Int).SetUint64(denom),
		)
		lo := new(big.Rat).SetInt(new(big.Int).SetUint64(p.MulFloor(x)))
		hi := new(big.Rat).SetInt(new(big.Int).SetUint64(p.MulCeil(x)))
		require.LessOrEqual(t, lo.Cmp(exact), 0, "%v.MulFloor(%v)", p, x)
		require.GreaterOrEqual(t, hi.Cmp(exact), 0, "%v.MulCeil(%v)", p, x)
		if exact.IsInt() {
			require.Equal(t, 0, lo.Cmp(hi), "%v.MulFloor(%v) != %v.MulCeil(%v)", p, x, p, x)
		} else {
			require.Equal(t, p.MulFloor(x)+1, p.MulCeil(x))
		}

		// p + (1 - p) = 1
		require.True(t, p.SaturatingAdd(p.Complement()).IsOne(), "%v + %v", p, p.Complement())
		s, ok := p.CheckedAdd(p.Complement())
		require.True(t, ok)
		require.True(t, s.IsOne())

		// Bounds
		one := p.One()
		require.True(t, p.SaturatingAdd(one).IsOne())
		require.True(t, p.SaturatingSub(one).IsZero())
		_, ok = p.CheckedAdd(one)
		require.Equal(t, p.IsZero(), ok)
		_, ok = zero.CheckedSub(p)
		require.Equal(t, p.IsZero(), ok)
		require.LessOrEqual(t, p.Mul(p).Numerator(), p.Numerator())
	}
}

func TestProperties(t *testing.T) {
	t.Run("Percent", func(t *testing.T) { checkTierProperties[Percent](t, 10) })
	t.Run("PerU16", func(t *testing.T) { checkTierProperties[PerU16](t, 11) })
	t.Run("Permill", func(t *testing.T) { checkTierProperties[Permill](t, 12) })
	t.Run("Perbill", func(t *testing.T) { checkTierProperties[Perbill](t, 13) })
	t.Run("Perquintill", func(t *testing.T) { checkTierProperties[Perquintill](t, 14) })
}
