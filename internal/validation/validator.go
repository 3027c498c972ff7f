package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MaxFieldOrder bounds p^m for fields built from user input. Primitive search
// and log tables are exhaustive, so larger fields are impractical.
const MaxFieldOrder = 1 << 20

// MaxCompactBase is the largest characteristic whose digits may be written
// without separators.
const MaxCompactBase = 10

var (
	listPattern    = regexp.MustCompile(`^\[?\s*\d+(\s*[,\s]\s*\d+)*\s*\]?$`)
	compactPattern = regexp.MustCompile(`^\d+$`)
)

// IsPrime reports whether n is prime by trial division.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := uint64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func ValidatePrime(p uint64) error {
	if p < 2 {
		return fmt.Errorf("characteristic must be at least 2 (got %d)", p)
	}
	if p >= 1<<32 {
		return fmt.Errorf("characteristic must be below 2^32 (got %d)", p)
	}
	if !IsPrime(p) {
		return fmt.Errorf("characteristic must be prime (got %d)", p)
	}
	return nil
}

// ValidateModulus checks a defining polynomial given highest degree first.
// Irreducibility is not checked here; the primitive search reports it.
func ValidateModulus(p uint64, modulus []uint64) error {
	if len(modulus) < 2 {
		return fmt.Errorf("modulus must have degree at least 1 (got %d coefficients)", len(modulus))
	}
	for i, c := range modulus {
		if c >= p {
			return fmt.Errorf("modulus coefficient %d is %d, must be below %d", i+1, c, p)
		}
	}
	if modulus[0] == 0 {
		return fmt.Errorf("modulus leading coefficient cannot be zero")
	}
	return nil
}

// ValidateFieldParams checks p, the modulus, and that p^m is small enough to search exhaustively.
func ValidateFieldParams(p uint64, modulus []uint64) error {
	if err := ValidatePrime(p); err != nil {
		return err
	}
	if err := ValidateModulus(p, modulus); err != nil {
		return err
	}

	order := uint64(1)
	for range modulus[1:] {
		order *= p
		if order > MaxFieldOrder {
			return fmt.Errorf("field order %d^%d exceeds the limit of %d elements", p, len(modulus)-1, MaxFieldOrder)
		}
	}
	return nil
}

func ValidateDigits(p uint64, degree int, digits []uint64) error {
	if len(digits) != degree {
		return fmt.Errorf("element needs %d digits (got %d)", degree, len(digits))
	}
	for i, d := range digits {
		if d >= p {
			return fmt.Errorf("digit %d is %d, must be below %d", i+1, d, p)
		}
	}
	return nil
}

// ParseDigits parses a coefficient vector over GF(base), highest degree
// first. Accepted forms are "1,2,0", "1 2 0", "[1, 2, 0]" and the compact
// "120", where every character is one digit. The compact form is only read
// for base <= 10; above that a bare number is a single coefficient. A base of
// 0 means the characteristic is not known yet and allows the compact form.
func ParseDigits(input string, base uint64) ([]uint64, error) {
	input = SanitizeInput(input)
	if input == "" {
		return nil, fmt.Errorf("digits cannot be empty")
	}

	if compactPattern.MatchString(input) && base <= MaxCompactBase {
		digits := make([]uint64, len(input))
		for i, ch := range input {
			digits[i] = uint64(ch - '0')
		}
		return digits, nil
	}

	if !listPattern.MatchString(input) {
		return nil, fmt.Errorf("invalid digit list %q, expected format: 1,2,0", input)
	}

	input = strings.Trim(input, "[] ")
	fields := strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	digits := make([]uint64, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid digit %q: %w", field, err)
		}
		digits[i] = v
	}
	return digits, nil
}

func SanitizeInput(input string) string {
	input = strings.TrimSpace(input)

	input = strings.ReplaceAll(input, "\r\n", "\n")
	input = strings.ReplaceAll(input, "\r", "\n")

	lines := strings.Split(input, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	return strings.Join(lines, " ")
}
