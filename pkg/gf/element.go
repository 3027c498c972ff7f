package gf

import "fmt"

// ExtElement is an element of an ExtensionField: m coefficients over GF(p),
// highest degree first, bound to the field that created it. Elements are
// values and every operation returns a new one.
//
// Combining elements of two different field instances panics.
type ExtElement struct {
	coeffs []Element
	field  *ExtensionField
}

func (e ExtElement) check(o ExtElement) {
	if e.field != o.field {
		panic(fmt.Errorf("%w: %v and %v", ErrFieldMismatch, e.field, o.field))
	}
}

// Field returns the field e belongs to.
func (e ExtElement) Field() *ExtensionField {
	return e.field
}

// Add returns e + o.
func (e ExtElement) Add(o ExtElement) ExtElement {
	e.check(o)
	out := make([]Element, len(e.coeffs))
	for i := range out {
		out[i] = e.coeffs[i].Add(o.coeffs[i])
	}
	return e.field.wrap(out)
}

// Sub returns e - o.
func (e ExtElement) Sub(o ExtElement) ExtElement {
	e.check(o)
	out := make([]Element, len(e.coeffs))
	for i := range out {
		out[i] = e.coeffs[i].Sub(o.coeffs[i])
	}
	return e.field.wrap(out)
}

// Neg returns -e.
func (e ExtElement) Neg() ExtElement {
	out := make([]Element, len(e.coeffs))
	for i := range out {
		out[i] = e.coeffs[i].Neg()
	}
	return e.field.wrap(out)
}

// Mul returns e * o: the convolution of both coefficient vectors reduced
// modulo the field's defining polynomial.
func (e ExtElement) Mul(o ExtElement) ExtElement {
	e.check(o)
	return e.field.wrap(e.field.mulCoeffs(e.coeffs, o.coeffs))
}

func (f *ExtensionField) mulCoeffs(a, b []Element) []Element {
	return f.reduce(Convolve(a, b))
}

// Pow returns e^n. e^0 is one, including for zero.
func (e ExtElement) Pow(n uint64) ExtElement {
	switch {
	case n == 0:
		return e.field.One()
	case n == 1:
		return e
	case n%2 == 0:
		half := e.Pow(n / 2)
		return half.Mul(half)
	default:
		return e.Mul(e.Pow(n - 1))
	}
}

// Inv returns e^(p^m - 2) and false when e is zero.
func (e ExtElement) Inv() (ExtElement, bool) {
	if e.IsZero() {
		return ExtElement{}, false
	}
	return e.Pow(e.field.order - 2), true
}

// Div returns e * o^-1.
func (e ExtElement) Div(o ExtElement) (ExtElement, error) {
	e.check(o)
	inv, ok := o.Inv()
	if !ok {
		return ExtElement{}, fmt.Errorf("%w in %v", ErrDivisionByZero, e.field)
	}
	return e.Mul(inv), nil
}

// PrimitivePower returns the smallest k >= 1 with g^k == e, where g is the
// field's primitive element. The identity yields p^m - 1. Zero has no
// logarithm and returns ErrPrimitivePowerOfZero.
//
// This multiplies up to p^m - 1 times; use BuildDiscreteLogTable for repeated queries.
func (e ExtElement) PrimitivePower() (uint64, error) {
	if e.IsZero() {
		return 0, ErrPrimitivePowerOfZero
	}
	g := e.field.primitive
	x := g
	for k := uint64(1); k < e.field.order; k++ {
		if equalCoeffs(x, e.coeffs) {
			return k, nil
		}
		x = e.field.mulCoeffs(x, g)
	}
	// unreachable while the cached element really is primitive
	return 0, fmt.Errorf("%s is not a power of %s: %w",
		e, RenderPolynomial(digitsOf(g)), ErrPrimitiveSearchExhausted)
}

// Order returns the multiplicative order of e, the smallest k >= 1 with e^k == 1.
func (e ExtElement) Order() (uint64, error) {
	if e.IsZero() {
		return 0, ErrPrimitivePowerOfZero
	}
	x := e
	for k := uint64(1); ; k++ {
		if x.IsOne() {
			return k, nil
		}
		x = x.Mul(e)
	}
}

// IsZero reports whether every coefficient is zero.
func (e ExtElement) IsZero() bool {
	return Degree(e.coeffs) < 0
}

// IsOne reports whether e is the multiplicative identity.
func (e ExtElement) IsOne() bool {
	last := len(e.coeffs) - 1
	return Degree(e.coeffs) == 0 && e.coeffs[last].value == 1
}

// Equal reports whether e and o are the same element of the same field.
func (e ExtElement) Equal(o ExtElement) bool {
	return e.field == o.field && equalCoeffs(e.coeffs, o.coeffs)
}

func equalCoeffs(a, b []Element) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Digits returns the coefficients as integers, highest degree first.
func (e ExtElement) Digits() []uint64 {
	return digitsOf(e.coeffs)
}

// Coefficients returns a copy of the coefficients, highest degree first.
func (e ExtElement) Coefficients() []Element {
	return append([]Element(nil), e.coeffs...)
}

// Encode returns the canonical integer of e: its digits read as a base-p
// number, highest degree most significant. Zero encodes to 0.
func (e ExtElement) Encode() uint64 {
	return encode(e.coeffs, e.field.base.p)
}

// Polynomial renders e as a polynomial in x, e.g. "x^2 + 2*x".
func (e ExtElement) Polynomial() string {
	return RenderPolynomial(e.Digits())
}

func (e ExtElement) String() string {
	return e.Polynomial()
}
