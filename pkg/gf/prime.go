// Package gf implements arithmetic in prime fields GF(p) and their extensions
// GF(p^m), built as polynomials over GF(p) modulo a fixed irreducible
// polynomial of degree m.
//
// The package is meant for exploring small fields: primitive elements are
// found by exhaustive search and discrete logarithms by repeated
// multiplication, so p^m must stay small.
package gf

import (
	"fmt"
	"strconv"
)

// MaxPrime bounds the characteristic so products of two reduced values fit in a uint64.
const MaxPrime = 1 << 32

// PrimeField is the field of integers modulo p.
type PrimeField struct {
	p uint64
}

// NewPrimeField creates GF(p). p is assumed to be prime; only its range is checked.
func NewPrimeField(p uint64) (*PrimeField, error) {
	if p < 2 || p >= MaxPrime {
		return nil, fmt.Errorf("%w: prime %d out of range [2, 2^32)", ErrInvalidConstruction, p)
	}
	return &PrimeField{p: p}, nil
}

// Element returns v mod p.
func (f *PrimeField) Element(v uint64) Element {
	return Element{value: v % f.p, p: f.p}
}

// FromInt returns v mod p, mapping negative values into [0, p).
func (f *PrimeField) FromInt(v int64) Element {
	r := v % int64(f.p)
	if r < 0 {
		r += int64(f.p)
	}
	return Element{value: uint64(r), p: f.p}
}

// Zero returns the additive identity.
func (f *PrimeField) Zero() Element {
	return Element{value: 0, p: f.p}
}

// One returns the multiplicative identity.
func (f *PrimeField) One() Element {
	return Element{value: 1, p: f.p}
}

// Order returns p.
func (f *PrimeField) Order() uint64 {
	return f.p
}

// Elements returns 0, 1, ..., p-1.
func (f *PrimeField) Elements() []Element {
	out := make([]Element, f.p)
	for i := range out {
		out[i] = Element{value: uint64(i), p: f.p}
	}
	return out
}

func (f *PrimeField) String() string {
	return "GF(" + strconv.FormatUint(f.p, 10) + ")"
}

// Element is a value of GF(p), always reduced into [0, p).
// Elements are values: every operation returns a fresh result.
type Element struct {
	value uint64
	p     uint64
}

func (a Element) check(b Element) {
	if a.p != b.p {
		panic(fmt.Errorf("%w: GF(%d) and GF(%d)", ErrFieldMismatch, a.p, b.p))
	}
}

// Add returns a + b.
func (a Element) Add(b Element) Element {
	a.check(b)
	return Element{value: (a.value + b.value) % a.p, p: a.p}
}

// Sub returns a - b. The modulus is added first so the unsigned difference never underflows.
func (a Element) Sub(b Element) Element {
	a.check(b)
	return Element{value: (a.value + a.p - b.value) % a.p, p: a.p}
}

// Mul returns a * b.
func (a Element) Mul(b Element) Element {
	a.check(b)
	return Element{value: a.value * b.value % a.p, p: a.p}
}

// Neg returns -a.
func (a Element) Neg() Element {
	return Element{value: (a.p - a.value) % a.p, p: a.p}
}

// Pow returns a^n by square-and-multiply. 0^0 is 1.
func (a Element) Pow(n uint64) Element {
	result := uint64(1) % a.p
	base := a.value
	for n > 0 {
		if n&1 == 1 {
			result = result * base % a.p
		}
		base = base * base % a.p
		n >>= 1
	}
	return Element{value: result, p: a.p}
}

// Inv returns a^(p-2), the inverse of a by Fermat's little theorem, and false
// when a is zero. For a composite modulus the result is meaningless.
func (a Element) Inv() (Element, bool) {
	if a.value == 0 {
		return Element{}, false
	}
	return a.Pow(a.p - 2), true
}

// Div returns a * b^-1.
func (a Element) Div(b Element) (Element, error) {
	a.check(b)
	inv, ok := b.Inv()
	if !ok {
		return Element{}, fmt.Errorf("%w in GF(%d)", ErrDivisionByZero, a.p)
	}
	return a.Mul(inv), nil
}

// IsZero reports whether a is the additive identity.
func (a Element) IsZero() bool {
	return a.value == 0
}

// Equal reports whether a and b are the same element of the same field.
func (a Element) Equal(b Element) bool {
	return a.p == b.p && a.value == b.value
}

// Uint64 returns the representative in [0, p).
func (a Element) Uint64() uint64 {
	return a.value
}

// Modulus returns the characteristic of the element's field.
func (a Element) Modulus() uint64 {
	return a.p
}

func (a Element) String() string {
	return strconv.FormatUint(a.value, 10)
}
