package gf

import (
	"fmt"
	"strconv"
)

// Log is a discrete logarithm. Infinite stands for the logarithm of zero.
type Log struct {
	Power    uint64
	Infinite bool
}

func (l Log) String() string {
	if l.Infinite {
		return "Infinity"
	}
	return strconv.FormatUint(l.Power, 10)
}

// LogTable is a Zech logarithm table: entry i is log_g(1 + g^i) for the
// primitive element g, and is infinite where 1 + g^i is zero. Together with
// log(1 + 0) = 0 it turns addition into table lookups on exponents.
type LogTable []Log

// Lookup returns entry i.
func (t LogTable) Lookup(i uint64) (Log, error) {
	if i >= uint64(len(t)) {
		return Log{}, fmt.Errorf("%w: index %d, table has %d entries", ErrInvalidConstruction, i, len(t))
	}
	return t[i], nil
}

// powers returns g^0 .. g^(N-1) and the exponent of each nonzero element,
// indexed by canonical encoding.
func (f *ExtensionField) powers() ([][]Element, []uint64) {
	n := f.order - 1
	pow := make([][]Element, n)
	exps := make([]uint64, f.order)
	x := f.One().coeffs
	for i := uint64(0); i < n; i++ {
		pow[i] = x
		exps[encode(x, f.base.p)] = i
		x = f.mulCoeffs(x, f.primitive)
	}
	return pow, exps
}

// BuildLogTable computes the Zech logarithm table of the field, p^m - 1 entries.
func (f *ExtensionField) BuildLogTable() LogTable {
	pow, exps := f.powers()
	one := f.base.One()
	last := f.degree - 1

	table := make(LogTable, len(pow))
	for i, x := range pow {
		sum := append([]Element(nil), x...)
		sum[last] = sum[last].Add(one)
		if Degree(sum) < 0 {
			table[i] = Log{Infinite: true}
			continue
		}
		table[i] = Log{Power: exps[encode(sum, f.base.p)]}
	}
	return table
}

// DiscreteLogTable maps every element, by canonical encoding, to its
// discrete logarithm. Values agree with ExtElement.PrimitivePower, so the
// identity maps to p^m - 1 and zero is infinite.
type DiscreteLogTable struct {
	field   *ExtensionField
	entries []Log
}

// BuildDiscreteLogTable computes the logarithm of every element in one pass
// over the powers of the primitive element.
func (f *ExtensionField) BuildDiscreteLogTable() *DiscreteLogTable {
	entries := make([]Log, f.order)
	entries[0] = Log{Infinite: true}

	x := f.primitive
	for k := uint64(1); k < f.order; k++ {
		entries[encode(x, f.base.p)] = Log{Power: k}
		x = f.mulCoeffs(x, f.primitive)
	}
	return &DiscreteLogTable{field: f, entries: entries}
}

// Lookup returns the logarithm of e.
func (t *DiscreteLogTable) Lookup(e ExtElement) (Log, error) {
	if e.field != t.field {
		return Log{}, ErrFieldMismatch
	}
	return t.entries[e.Encode()], nil
}

// Len returns p^m.
func (t *DiscreteLogTable) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table, indexed by canonical encoding.
func (t *DiscreteLogTable) Entries() []Log {
	return append([]Log(nil), t.entries...)
}
