package gf

import (
	"fmt"
	"strconv"
	"strings"
)

// Coefficient vectors in this package are ordered highest degree first: the
// last entry is the constant term.

// subtractiveCutoff is the largest characteristic for which DivRem finds
// quotient digits by repeated subtraction. Above it the digit is computed
// with the inverse of the divisor's leading coefficient. Both give the same result.
const subtractiveCutoff = 64

// Convolve returns the unreduced product of a and b, of length len(a)+len(b)-1.
func Convolve(a, b []Element) []Element {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	zero := Element{p: a[0].p}
	out := make([]Element, len(a)+len(b)-1)
	for i := range out {
		out[i] = zero
	}
	for i := range a {
		if a[i].IsZero() {
			continue
		}
		for j := range b {
			out[i+j] = out[i+j].Add(a[i].Mul(b[j]))
		}
	}
	return out
}

// Degree returns the degree of the polynomial, or -1 when every coefficient is zero.
func Degree(a []Element) int {
	for i, c := range a {
		if !c.IsZero() {
			return len(a) - 1 - i
		}
	}
	return -1
}

// Increment advances digits as an odometer in the given base, least
// significant digit last. It reports whether the counter wrapped to all zeros.
func Increment(digits []uint64, base uint64) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < base {
			return false
		}
		digits[i] = 0
	}
	return true
}

// DivRem divides dividend by divisor and returns quotient and remainder, both
// as long as the dividend. The divisor is aligned at its natural degree and
// may be shorter than the dividend.
//
// For each position from the dividend's degree down to the divisor's, the
// shifted divisor is subtracted until the coefficient at that position
// vanishes, counting subtractions into the quotient digit.
func DivRem(dividend, divisor []Element) (quotient, remainder []Element, err error) {
	if len(divisor) > len(dividend) {
		return nil, nil, fmt.Errorf("%w: divisor has %d coefficients, dividend %d",
			ErrInvalidConstruction, len(divisor), len(dividend))
	}
	d := Degree(divisor)
	if d < 0 {
		return nil, nil, ErrDivisionByZero
	}
	lead := divisor[len(divisor)-1-d]
	leadInv, _ := lead.Inv()
	wide := upcast(divisor, len(dividend))
	quotient, remainder = divRem(dividend, wide, leadInv, lead.p <= subtractiveCutoff)
	return quotient, remainder, nil
}

// divRem expects len(divisor) == len(dividend), a nonzero divisor, and a
// nonempty dividend. leadInv is only read when subtractive is false.
func divRem(dividend, divisor []Element, leadInv Element, subtractive bool) (quotient, remainder []Element) {
	n := len(dividend)
	zero := Element{p: dividend[0].p}
	remainder = append([]Element(nil), dividend...)
	quotient = make([]Element, n)
	for i := range quotient {
		quotient[i] = zero
	}

	dv := Degree(divisor)
	dd := Degree(remainder)
	for k := dd; k >= dv; k-- {
		at := n - 1 - k
		shift := k - dv
		if subtractive {
			for !remainder[at].IsZero() {
				subShifted(remainder, divisor, dv, shift, zero.p, 1)
				quotient[n-1-shift] = quotient[n-1-shift].Add(Element{value: 1, p: zero.p})
			}
			continue
		}
		times := remainder[at].Mul(leadInv)
		if times.IsZero() {
			continue
		}
		subShifted(remainder, divisor, dv, shift, zero.p, times.value)
		quotient[n-1-shift] = quotient[n-1-shift].Add(times)
	}
	return quotient, remainder
}

// subShifted subtracts times * divisor * x^shift from r in place.
func subShifted(r, divisor []Element, dv, shift int, p, times uint64) {
	n := len(r)
	t := Element{value: times % p, p: p}
	for deg := 0; deg <= dv; deg++ {
		c := divisor[n-1-deg]
		if c.IsZero() {
			continue
		}
		at := n - 1 - (deg + shift)
		r[at] = r[at].Sub(c.Mul(t))
	}
}

// upcast left-pads a with zeros to length n.
func upcast(a []Element, n int) []Element {
	if len(a) == n {
		return a
	}
	out := make([]Element, n)
	zero := Element{p: a[0].p}
	pad := n - len(a)
	for i := 0; i < pad; i++ {
		out[i] = zero
	}
	copy(out[pad:], a)
	return out
}

// RenderPolynomial formats a digit vector as a polynomial in x, e.g.
// [1 2 0] renders as "x^2 + 2*x". An all-zero vector renders as "0".
func RenderPolynomial(digits []uint64) string {
	var terms []string
	for i, d := range digits {
		if d == 0 {
			continue
		}
		deg := len(digits) - 1 - i
		coeff := strconv.FormatUint(d, 10)
		switch {
		case deg == 0:
			terms = append(terms, coeff)
		case d == 1 && deg == 1:
			terms = append(terms, "x")
		case deg == 1:
			terms = append(terms, coeff+"*x")
		case d == 1:
			terms = append(terms, "x^"+strconv.Itoa(deg))
		default:
			terms = append(terms, coeff+"*x^"+strconv.Itoa(deg))
		}
	}
	if len(terms) == 0 {
		return "0"
	}
	return strings.Join(terms, " + ")
}

// encode reads digits as a base-p number, most significant digit first.
func encode(digits []Element, p uint64) uint64 {
	var n uint64
	for _, d := range digits {
		n = n*p + d.value
	}
	return n
}

func decode(n uint64, p uint64, m int) []Element {
	out := make([]Element, m)
	for i := m - 1; i >= 0; i-- {
		out[i] = Element{value: n % p, p: p}
		n /= p
	}
	return out
}
