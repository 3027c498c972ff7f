package gf

import "errors"

var (
	// ErrDivisionByZero is returned when dividing by the zero element of either field kind.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrPrimitiveSearchExhausted means every nonzero vector was tried and none
	// generates the multiplicative group. The modulus is not irreducible.
	ErrPrimitiveSearchExhausted = errors.New("no primitive element found")

	// ErrSearchLimitExceeded is returned when the primitive search runs out of its step budget.
	ErrSearchLimitExceeded = errors.New("primitive search step limit exceeded")

	// ErrInvalidConstruction covers malformed field parameters and coefficient
	// vectors of the wrong length.
	ErrInvalidConstruction = errors.New("invalid construction")

	// ErrPrimitivePowerOfZero is returned when asking for the discrete log of zero.
	ErrPrimitivePowerOfZero = errors.New("zero is not a power of the primitive element")

	// ErrFieldMismatch marks an attempt to combine elements of different fields.
	ErrFieldMismatch = errors.New("elements belong to different fields")
)
