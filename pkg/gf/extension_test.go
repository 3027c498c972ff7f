package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// GF(2^3) modulo x^3 + x + 1.
func setupGF8(t *testing.T) *ExtensionField {
	t.Helper()
	f, err := NewExtensionField(newPrime(t, 2), []uint64{1, 0, 1, 1})
	require.NoError(t, err)
	return f
}

// GF(5^3) modulo x^3 + 3x + 2.
func setupGF125(t *testing.T) *ExtensionField {
	t.Helper()
	f, err := NewExtensionField(newPrime(t, 5), []uint64{1, 0, 3, 2})
	require.NoError(t, err)
	return f
}

func mustElement(t *testing.T, f *ExtensionField, digits ...uint64) ExtElement {
	t.Helper()
	e, err := f.Element(digits...)
	require.NoError(t, err)
	return e
}

func TestNewExtensionFieldErrors(t *testing.T) {
	gf5 := newPrime(t, 5)

	tests := []struct {
		name    string
		base    *PrimeField
		modulus []uint64
		opts    []Option
		wantErr error
	}{
		{"Nil base", nil, []uint64{1, 0, 1}, nil, ErrInvalidConstruction},
		{"Constant modulus", gf5, []uint64{1}, nil, ErrInvalidConstruction},
		{"Zero leading coefficient", gf5, []uint64{5, 1, 1}, nil, ErrInvalidConstruction},
		{"Order overflow", newPrime(t, 65537), []uint64{1, 0, 3}, nil, ErrInvalidConstruction},
		{"Reducible modulus", newPrime(t, 2), []uint64{1, 0, 1}, nil, ErrPrimitiveSearchExhausted},
		{"Search start wrong length", gf5, []uint64{1, 0, 3, 2}, []Option{WithSearchStart([]uint64{1})}, ErrInvalidConstruction},
		{"Search limit", gf5, []uint64{1, 0, 3, 2}, []Option{WithSearchLimit(10)}, ErrSearchLimitExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewExtensionField(tt.base, tt.modulus, tt.opts...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExtensionFieldProperties(t *testing.T) {
	f := setupGF125(t)

	assert.Equal(t, 3, f.Degree())
	assert.Equal(t, uint64(125), f.Order())
	assert.Equal(t, uint64(5), f.Characteristic())
	assert.Equal(t, []uint64{1, 0, 3, 2}, f.Modulus())
	assert.Equal(t, "GF(5^3) mod x^3 + 3*x + 2", f.String())
	assert.Equal(t, []uint64{0, 1, 0}, f.Primitive().Digits())
	assert.True(t, f.One().IsOne())
	assert.True(t, f.Zero().IsZero())
}

func TestExtensionElementConstruction(t *testing.T) {
	f := setupGF125(t)

	e := mustElement(t, f, 6, 7, 10)
	assert.Equal(t, []uint64{1, 2, 0}, e.Digits())

	_, err := f.Element(1, 2)
	assert.ErrorIs(t, err, ErrInvalidConstruction)

	_, err = f.FromElements(elems(newPrime(t, 7), 1, 2, 3))
	assert.ErrorIs(t, err, ErrFieldMismatch)

	g, err := f.FromElements(elems(f.Base(), 1, 2, 0))
	require.NoError(t, err)
	assert.True(t, g.Equal(e))

	assert.Equal(t, uint64(35), e.Encode())
	d, err := f.Decode(35)
	require.NoError(t, err)
	assert.True(t, d.Equal(e))

	_, err = f.Decode(125)
	assert.ErrorIs(t, err, ErrInvalidConstruction)
}

func TestExtensionFieldMultiplicationGF8(t *testing.T) {
	f := setupGF8(t)

	tests := []struct {
		name string
		a, b []uint64
		want []uint64
	}{
		{"x * (x + 1)", []uint64{0, 1, 0}, []uint64{0, 1, 1}, []uint64{1, 1, 0}},
		{"Times zero", []uint64{0, 1, 0}, []uint64{0, 0, 0}, []uint64{0, 0, 0}},
		{"Times identity", []uint64{0, 1, 0}, []uint64{0, 0, 1}, []uint64{0, 1, 0}},
		{"Wraps via modulus", []uint64{1, 1, 0}, []uint64{1, 0, 1}, []uint64{0, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustElement(t, f, tt.a...)
			b := mustElement(t, f, tt.b...)
			assert.Equal(t, tt.want, a.Mul(b).Digits())
		})
	}

	x := mustElement(t, f, 1, 1, 0)
	assert.Equal(t, []uint64{1, 1, 1}, x.Pow(3).Digits())
}

func TestExtensionFieldArithmeticGF125(t *testing.T) {
	f := setupGF125(t)

	a := mustElement(t, f, 1, 2, 0)
	b := mustElement(t, f, 0, 1, 1)

	assert.Equal(t, []uint64{1, 3, 1}, a.Add(b).Digits())
	assert.Equal(t, []uint64{1, 1, 4}, a.Sub(b).Digits())
	assert.Equal(t, []uint64{4, 3, 0}, a.Neg().Digits())
	assert.Equal(t, []uint64{3, 4, 3}, a.Mul(b).Digits())

	inv, ok := a.Inv()
	require.True(t, ok)
	assert.Equal(t, []uint64{2, 3, 0}, inv.Digits())

	q, err := a.Mul(b).Div(b)
	require.NoError(t, err)
	assert.True(t, q.Equal(a))

	_, err = a.Div(f.Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, ok = f.Zero().Inv()
	assert.False(t, ok)
}

func TestExtensionFieldRingLaws(t *testing.T) {
	f := setupGF8(t)
	one, zero := f.One(), f.Zero()

	for a := range f.Elements() {
		assert.True(t, a.Mul(one).Equal(a))
		assert.True(t, a.Mul(zero).Equal(zero))
		assert.True(t, a.Sub(a).IsZero())
		for b := range f.Elements() {
			assert.True(t, a.Mul(b).Equal(b.Mul(a)))
			for c := range f.Elements() {
				assert.True(t, a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c))))
				assert.True(t, a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))))
			}
		}
	}
}

func TestExtensionFieldInverseEverywhere(t *testing.T) {
	f := setupGF125(t)

	count := 0
	for e := range f.Elements() {
		count++
		if e.IsZero() {
			continue
		}
		inv, ok := e.Inv()
		require.True(t, ok)
		assert.True(t, e.Mul(inv).IsOne(), "%s * %s", e, inv)
	}
	assert.Equal(t, 125, count)
}

func TestPrimitiveGeneratesGroup(t *testing.T) {
	for _, f := range []*ExtensionField{setupGF8(t), setupGF125(t)} {
		g := f.Primitive()
		n := f.Order() - 1

		seen := map[uint64]bool{}
		x := g
		for k := uint64(1); k <= n; k++ {
			require.False(t, x.IsZero())
			require.False(t, seen[x.Encode()], "%s repeats at power %d", x, k)
			seen[x.Encode()] = true
			x = x.Mul(g)
		}
		assert.Len(t, seen, int(n))
		assert.True(t, g.Pow(n).IsOne())

		order, err := g.Order()
		require.NoError(t, err)
		assert.Equal(t, n, order)
	}
}

func TestPrimitivePower(t *testing.T) {
	f := setupGF125(t)
	g := f.Primitive()

	k, err := mustElement(t, f, 1, 2, 0).PrimitivePower()
	require.NoError(t, err)
	assert.Equal(t, uint64(120), k)

	k, err = f.One().PrimitivePower()
	require.NoError(t, err)
	assert.Equal(t, uint64(124), k)

	_, err = f.Zero().PrimitivePower()
	assert.ErrorIs(t, err, ErrPrimitivePowerOfZero)

	_, err = f.Zero().Order()
	assert.ErrorIs(t, err, ErrPrimitivePowerOfZero)

	for e := range f.Elements() {
		if e.IsZero() {
			continue
		}
		k, err := e.PrimitivePower()
		require.NoError(t, err)
		assert.True(t, g.Pow(k).Equal(e), "g^%d != %s", k, e)
	}
}

func TestPowEdgeCases(t *testing.T) {
	f := setupGF125(t)
	a := mustElement(t, f, 1, 2, 0)

	assert.True(t, a.Pow(0).IsOne())
	assert.True(t, f.Zero().Pow(0).IsOne())
	assert.True(t, a.Pow(1).Equal(a))
	assert.True(t, a.Pow(125).Equal(a))
	assert.True(t, a.Pow(7).Equal(a.Mul(a).Mul(a).Mul(a).Mul(a).Mul(a).Mul(a)))
}

func TestSearchStartOption(t *testing.T) {
	f, err := NewExtensionField(newPrime(t, 5), []uint64{1, 0, 3, 2}, WithSearchStart([]uint64{0, 1, 1}))
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 1}, f.Primitive().Digits())
}

func TestNonMonicModulus(t *testing.T) {
	monic := setupGF125(t)
	scaled, err := NewExtensionField(newPrime(t, 5), []uint64{2, 0, 1, 4})
	require.NoError(t, err)

	assert.Equal(t, []uint64{0, 1, 0}, scaled.Primitive().Digits())
	for a := range monic.Elements() {
		b := mustElement(t, monic, 0, 1, 1)
		want := a.Mul(b).Digits()
		got := mustElement(t, scaled, a.Digits()...).Mul(mustElement(t, scaled, 0, 1, 1)).Digits()
		assert.Equal(t, want, got)
	}
}

func TestLargeCharacteristic(t *testing.T) {
	// x^2 - 2 is irreducible over GF(101) since 2 is a non-residue.
	f, err := NewExtensionField(newPrime(t, 101), []uint64{1, 0, 99})
	require.NoError(t, err)

	x := mustElement(t, f, 1, 0)
	assert.Equal(t, []uint64{0, 2}, x.Mul(x).Digits())
	assert.Equal(t, []uint64{68, 97}, mustElement(t, f, 3, 5).Mul(mustElement(t, f, 7, 11)).Digits())
	assert.Equal(t, []uint64{1, 2}, f.Primitive().Digits())

	inv, ok := mustElement(t, f, 3, 5).Inv()
	require.True(t, ok)
	assert.True(t, inv.Mul(mustElement(t, f, 3, 5)).IsOne())
}

func TestDegreeOneExtension(t *testing.T) {
	f, err := NewExtensionField(newPrime(t, 7), []uint64{1, 0})
	require.NoError(t, err)

	assert.Equal(t, []uint64{3}, f.Primitive().Digits())
	assert.Equal(t, []uint64{6}, mustElement(t, f, 3).Mul(mustElement(t, f, 2)).Digits())
}

func TestGF9(t *testing.T) {
	f, err := NewExtensionField(newPrime(t, 3), []uint64{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 1}, f.Primitive().Digits())
}

func TestMixingFieldsPanics(t *testing.T) {
	a := setupGF125(t).One()
	b := setupGF125(t).One()

	assert.False(t, a.Equal(b))
	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.Mul(b) })
	assert.Panics(t, func() { _, _ = a.Div(b) })
}
