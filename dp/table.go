// SPDX-License-Identifier: MIT
// Package: homcount/dp
//
// table.go — flat mixed-radix count tables.
//
// Layout:
//   • A Table with Shape{Base: n, Digits: b} holds n^b uint64 counts in one slice.
//   • index = Σ digit[i] · n^(b-1-i): position 0 is the most significant digit,
//     position b-1 the least significant one.
//   • Digits == 0 is the scalar table (one entry), used for empty bags.

package dp

import (
	"math"

	"github.com/katalvlaran/homcount/errs"
)

// Saturated marks an entry whose true count is at least math.MaxUint64.
// Kernels propagate it and Multiply clears it against a zero factor. A
// Saturated final count is reported as errs.ErrOverflow by the caller.
const Saturated uint64 = math.MaxUint64

// MaxTableEntries caps the number of entries a single table may hold.
const MaxTableEntries = 1 << 31

// Shape is the (base, digit-count) pair that describes a flat table.
type Shape struct {
	Base   int // radix n, the host graph order
	Digits int // number of digits b, the bag size
}

// Size returns Base^Digits, or ErrInvalidArgument when the base is not
// positive, the digit count is negative, or the size exceeds MaxTableEntries.
func (s Shape) Size() (int, error) {
	if s.Base < 1 {
		return 0, errs.Invalid("shape: base %d must be >= 1", s.Base)
	}
	if s.Digits < 0 {
		return 0, errs.Invalid("shape: digit count %d must be >= 0", s.Digits)
	}

	return pow(s.Base, s.Digits)
}

// pow returns n^k with the MaxTableEntries cap.
func pow(n, k int) (int, error) {
	r := 1
	for i := 0; i < k; i++ {
		if r > math.MaxInt/n || r*n > MaxTableEntries {
			return 0, errs.Invalid("shape: %d^%d entries exceed the table limit %d", n, k, MaxTableEntries)
		}
		r *= n
	}

	return r, nil
}

// Table is a dense array of partial-assignment counts.
type Table struct {
	shape Shape
	data  []uint64
}

// NewTable returns a zero-filled table of the given shape.
func NewTable(s Shape) (*Table, error) {
	size, err := s.Size()
	if err != nil {
		return nil, err
	}

	return &Table{shape: s, data: make([]uint64, size)}, nil
}

// Ones returns a table of the given shape with every entry set to 1.
// A Leaf node's table is Ones(Shape{Base: n, Digits: 1}).
func Ones(s Shape) (*Table, error) {
	t, err := NewTable(s)
	if err != nil {
		return nil, err
	}
	for i := range t.data {
		t.data[i] = 1
	}

	return t, nil
}

// FromSlice wraps data as a table of shape s. The slice is not copied.
func FromSlice(s Shape, data []uint64) (*Table, error) {
	size, err := s.Size()
	if err != nil {
		return nil, err
	}
	if len(data) != size {
		return nil, errs.Invalid("FromSlice: %d values for shape %d^%d", len(data), s.Base, s.Digits)
	}

	return &Table{shape: s, data: data}, nil
}

// Shape returns the table's (base, digits) pair.
func (t *Table) Shape() Shape { return t.shape }

// Data returns the backing slice.
func (t *Table) Data() []uint64 { return t.data }

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.data) }

// Digit returns the digit at position pos of index.
func (t *Table) Digit(index, pos int) int {
	place := 1
	for i := pos + 1; i < t.shape.Digits; i++ {
		place *= t.shape.Base
	}

	return (index / place) % t.shape.Base
}

// Index encodes one digit per position (position 0 first) into a flat index.
func (t *Table) Index(digits []int) (int, error) {
	if len(digits) != t.shape.Digits {
		return 0, errs.Invalid("Index: %d digits for a %d-digit table", len(digits), t.shape.Digits)
	}
	idx := 0
	for i, d := range digits {
		if d < 0 || d >= t.shape.Base {
			return 0, errs.Invalid("Index: digit %d at position %d outside base %d", d, i, t.shape.Base)
		}
		idx = idx*t.shape.Base + d
	}

	return idx, nil
}

// At returns the count stored for the given digits.
func (t *Table) At(digits ...int) (uint64, error) {
	idx, err := t.Index(digits)
	if err != nil {
		return 0, err
	}

	return t.data[idx], nil
}

// Scalar returns the single entry of a zero-digit table.
func (t *Table) Scalar() (uint64, error) {
	if t.shape.Digits != 0 || len(t.data) != 1 {
		return 0, errs.State("Scalar: table has %d digits", t.shape.Digits)
	}

	return t.data[0], nil
}
