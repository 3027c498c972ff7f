package gf

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// searchPrimitive walks the nonzero coefficient vectors in odometer order from
// start and returns the first one whose powers reach all p^m - 1 nonzero
// elements without repeating. limit caps the number of multiplications; zero
// disables the cap.
func searchPrimitive(f *ExtensionField, start []uint64, limit uint64) ([]Element, error) {
	p := f.base.p
	group := f.order - 1
	visited := bitset.New(uint(f.order))

	digits := make([]uint64, len(start))
	for i, d := range start {
		digits[i] = d % p
	}

	var steps, tried uint64
	for tried < group {
		candidate := make([]Element, len(digits))
		for i, d := range digits {
			candidate[i] = f.base.Element(d)
		}
		Increment(digits, p)
		if Degree(candidate) < 0 {
			continue
		}
		tried++

		visited.ClearAll()
		x := candidate
		for n := uint64(1); ; n++ {
			code := uint(encode(x, p))
			if code == 0 || visited.Test(code) {
				break
			}
			visited.Set(code)
			if n == group {
				break
			}
			x = f.mulCoeffs(x, candidate)
			steps++
			if limit > 0 && steps > limit {
				return nil, fmt.Errorf("%w: %d multiplications over %d candidates", ErrSearchLimitExceeded, limit, tried)
			}
		}

		if uint64(visited.Count()) == group {
			f.logger.Debug("primitive search succeeded",
				"candidates", tried, "multiplications", steps,
				"primitive", RenderPolynomial(digitsOf(candidate)))
			return candidate, nil
		}
	}

	f.logger.Debug("primitive search exhausted", "candidates", tried, "multiplications", steps)
	return nil, fmt.Errorf("%w after %d candidates", ErrPrimitiveSearchExhausted, tried)
}
