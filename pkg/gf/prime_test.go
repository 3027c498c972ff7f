package gf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrime(t *testing.T, p uint64) *PrimeField {
	t.Helper()
	f, err := NewPrimeField(p)
	require.NoError(t, err)
	return f
}

func TestNewPrimeField(t *testing.T) {
	tests := []struct {
		name      string
		p         uint64
		wantError bool
	}{
		{"Smallest prime", 2, false},
		{"Small prime", 101, false},
		{"Largest 32-bit prime", 4_294_967_291, false},
		{"Zero", 0, true},
		{"One", 1, true},
		{"Too large", 1 << 32, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewPrimeField(tt.p)
			if tt.wantError {
				assert.ErrorIs(t, err, ErrInvalidConstruction)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.p, f.Order())
		})
	}
}

func TestPrimeFieldBasic(t *testing.T) {
	f := newPrime(t, 101)

	tests := []struct {
		name     string
		a, b     uint64
		expected uint64
		op       string
	}{
		{"add_basic", 25, 30, 55, "add"},
		{"add_with_reduction", 80, 50, 29, "add"},
		{"sub_basic", 50, 30, 20, "sub"},
		{"sub_with_reduction", 20, 30, 91, "sub"},
		{"mul_basic", 7, 9, 63, "mul"},
		{"mul_with_reduction", 15, 12, 79, "mul"},
		{"div_basic", 63, 9, 7, "div"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := f.Element(tt.a), f.Element(tt.b)

			var result Element
			switch tt.op {
			case "add":
				result = a.Add(b)
			case "sub":
				result = a.Sub(b)
			case "mul":
				result = a.Mul(b)
			case "div":
				var err error
				result, err = a.Div(b)
				require.NoError(t, err)
			default:
				t.Fatalf("unknown operation: %s", tt.op)
			}

			assert.Equal(t, tt.expected, result.Uint64())
		})
	}
}

func TestPrimeFieldConstruction(t *testing.T) {
	f := newPrime(t, 7)

	assert.Equal(t, uint64(3), f.Element(10).Uint64())
	assert.Equal(t, uint64(4), f.FromInt(-3).Uint64())
	assert.Equal(t, uint64(0), f.FromInt(-14).Uint64())
	assert.True(t, f.Zero().IsZero())
	assert.Equal(t, "1", f.One().String())
	assert.Equal(t, "GF(7)", f.String())
	assert.Len(t, f.Elements(), 7)
}

func TestPrimeFieldInverse(t *testing.T) {
	for _, p := range []uint64{2, 3, 5, 7, 101} {
		f := newPrime(t, p)
		one := f.One()
		for a := uint64(1); a < p; a++ {
			x := f.Element(a)
			inv, ok := x.Inv()
			require.True(t, ok)
			assert.True(t, x.Mul(inv).Equal(one), "GF(%d): %d * %d != 1", p, a, inv.Uint64())
		}
	}
}

func TestPrimeFieldZeroInverse(t *testing.T) {
	f := newPrime(t, 5)

	_, ok := f.Zero().Inv()
	assert.False(t, ok)

	_, err := f.One().Div(f.Zero())
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestPrimeFieldIdentities(t *testing.T) {
	f := newPrime(t, 13)

	for _, a := range f.Elements() {
		assert.True(t, a.Add(a.Neg()).IsZero())
		for _, b := range f.Elements() {
			assert.True(t, a.Sub(b).Add(b).Equal(a))

			q, err := a.Div(b)
			if b.IsZero() {
				assert.ErrorIs(t, err, ErrDivisionByZero)
				continue
			}
			require.NoError(t, err)
			inv, _ := b.Inv()
			assert.True(t, q.Equal(a.Mul(inv)))
		}
	}
}

func TestPrimeFieldPow(t *testing.T) {
	f := newPrime(t, 11)

	assert.Equal(t, uint64(1), f.Element(2).Pow(10).Uint64())
	assert.Equal(t, uint64(1), f.Zero().Pow(0).Uint64())
	assert.Equal(t, uint64(0), f.Zero().Pow(3).Uint64())
	assert.Equal(t, uint64(8), f.Element(2).Pow(3).Uint64())
}

func TestPrimeFieldMismatchPanics(t *testing.T) {
	a := newPrime(t, 5).One()
	b := newPrime(t, 7).One()

	assert.False(t, a.Equal(b))
	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.Mul(b) })
}
