package gf

import (
	"fmt"
	"iter"
	"log/slog"
	"math"
)

// ExtensionField is GF(p^m): polynomials over GF(p) of degree below m, taken
// modulo a fixed degree-m polynomial. The modulus is assumed irreducible.
//
// The primitive element is found once by NewExtensionField and never changes,
// so a field may be shared freely between goroutines.
type ExtensionField struct {
	base    *PrimeField
	modulus []Element // m+1 coefficients, highest degree first
	degree  int
	order   uint64

	wide        []Element // modulus left-padded to the width of an unreduced product
	leadInv     Element
	subtractive bool

	primitive []Element
	logger    *slog.Logger
}

// NewExtensionField builds GF(p^m) from the m+1 modulus coefficients, highest
// degree first, and searches for a primitive element.
func NewExtensionField(base *PrimeField, modulus []uint64, opts ...Option) (*ExtensionField, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if base == nil {
		return nil, fmt.Errorf("%w: nil base field", ErrInvalidConstruction)
	}
	if len(modulus) < 2 {
		return nil, fmt.Errorf("%w: modulus needs at least 2 coefficients, got %d",
			ErrInvalidConstruction, len(modulus))
	}

	coeffs := make([]Element, len(modulus))
	for i, c := range modulus {
		coeffs[i] = base.Element(c)
	}
	if coeffs[0].IsZero() {
		return nil, fmt.Errorf("%w: leading coefficient of the modulus is zero mod %d",
			ErrInvalidConstruction, base.p)
	}

	m := len(modulus) - 1
	order, ok := fieldOrder(base.p, m)
	if !ok {
		return nil, fmt.Errorf("%w: %d^%d does not fit in 32 bits", ErrInvalidConstruction, base.p, m)
	}

	width := max(2*m-1, m+1)
	leadInv, _ := coeffs[0].Inv()
	f := &ExtensionField{
		base:        base,
		modulus:     coeffs,
		degree:      m,
		order:       order,
		wide:        upcast(coeffs, width),
		leadInv:     leadInv,
		subtractive: base.p <= subtractiveCutoff,
		logger:      cfg.logger,
	}

	start := make([]uint64, m)
	start[m-1] = 1
	if cfg.searchStart != nil {
		if len(cfg.searchStart) != m {
			return nil, fmt.Errorf("%w: search start has %d digits, field degree is %d",
				ErrInvalidConstruction, len(cfg.searchStart), m)
		}
		start = cfg.searchStart
	}

	g, err := searchPrimitive(f, start, cfg.searchLimit)
	if err != nil {
		return nil, fmt.Errorf("GF(%d^%d) modulus %s: %w", base.p, m, RenderPolynomial(digitsOf(coeffs)), err)
	}
	f.primitive = g

	f.logger.Debug("extension field ready",
		"p", base.p, "m", m, "order", order,
		"primitive", RenderPolynomial(digitsOf(g)))

	return f, nil
}

func fieldOrder(p uint64, m int) (uint64, bool) {
	order := uint64(1)
	for i := 0; i < m; i++ {
		order *= p
		if order > math.MaxUint32 {
			return 0, false
		}
	}
	return order, true
}

// Element builds the element with the given m digits, highest degree first.
// Each digit is reduced mod p.
func (f *ExtensionField) Element(digits ...uint64) (ExtElement, error) {
	if len(digits) != f.degree {
		return ExtElement{}, fmt.Errorf("%w: got %d digits, field degree is %d",
			ErrInvalidConstruction, len(digits), f.degree)
	}
	coeffs := make([]Element, f.degree)
	for i, d := range digits {
		coeffs[i] = f.base.Element(d)
	}
	return ExtElement{coeffs: coeffs, field: f}, nil
}

// FromElements builds an element from m base-field coefficients.
func (f *ExtensionField) FromElements(coeffs []Element) (ExtElement, error) {
	if len(coeffs) != f.degree {
		return ExtElement{}, fmt.Errorf("%w: got %d coefficients, field degree is %d",
			ErrInvalidConstruction, len(coeffs), f.degree)
	}
	for _, c := range coeffs {
		if c.p != f.base.p {
			return ExtElement{}, fmt.Errorf("%w: coefficient from GF(%d) in a field over GF(%d)",
				ErrFieldMismatch, c.p, f.base.p)
		}
	}
	return ExtElement{coeffs: append([]Element(nil), coeffs...), field: f}, nil
}

// Decode returns the element whose canonical encoding is n, the inverse of ExtElement.Encode.
func (f *ExtensionField) Decode(n uint64) (ExtElement, error) {
	if n >= f.order {
		return ExtElement{}, fmt.Errorf("%w: encoding %d out of range for a field of order %d",
			ErrInvalidConstruction, n, f.order)
	}
	return f.wrap(decode(n, f.base.p, f.degree)), nil
}

// Zero returns the additive identity.
func (f *ExtensionField) Zero() ExtElement {
	return f.wrap(f.zeros(f.degree))
}

// One returns the multiplicative identity, the constant polynomial 1.
func (f *ExtensionField) One() ExtElement {
	coeffs := f.zeros(f.degree)
	coeffs[f.degree-1] = f.base.One()
	return f.wrap(coeffs)
}

// Primitive returns the cached generator of the multiplicative group.
func (f *ExtensionField) Primitive() ExtElement {
	return f.wrap(append([]Element(nil), f.primitive...))
}

// Degree returns m.
func (f *ExtensionField) Degree() int {
	return f.degree
}

// Order returns p^m, the number of elements.
func (f *ExtensionField) Order() uint64 {
	return f.order
}

// Characteristic returns p.
func (f *ExtensionField) Characteristic() uint64 {
	return f.base.p
}

// Base returns the prime field the coefficients live in.
func (f *ExtensionField) Base() *PrimeField {
	return f.base
}

// Modulus returns a copy of the defining polynomial's digits, highest degree first.
func (f *ExtensionField) Modulus() []uint64 {
	return digitsOf(f.modulus)
}

// Elements yields every element in canonical order, starting from zero.
func (f *ExtensionField) Elements() iter.Seq[ExtElement] {
	return func(yield func(ExtElement) bool) {
		digits := make([]uint64, f.degree)
		for {
			e, _ := f.Element(digits...)
			if !yield(e) {
				return
			}
			if Increment(digits, f.base.p) {
				return
			}
		}
	}
}

func (f *ExtensionField) String() string {
	return fmt.Sprintf("GF(%d^%d) mod %s", f.base.p, f.degree, RenderPolynomial(f.Modulus()))
}

// reduce returns poly mod the field modulus as m coefficients.
func (f *ExtensionField) reduce(poly []Element) []Element {
	if len(poly) < len(f.wide) {
		poly = upcast(poly, len(f.wide))
	}
	_, r := divRem(poly, f.wide, f.leadInv, f.subtractive)
	return r[len(r)-f.degree:]
}

func (f *ExtensionField) zeros(n int) []Element {
	out := make([]Element, n)
	for i := range out {
		out[i] = f.base.Zero()
	}
	return out
}

func (f *ExtensionField) wrap(coeffs []Element) ExtElement {
	return ExtElement{coeffs: coeffs, field: f}
}

func digitsOf(coeffs []Element) []uint64 {
	out := make([]uint64, len(coeffs))
	for i, c := range coeffs {
		out[i] = c.value
	}
	return out
}
