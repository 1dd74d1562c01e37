// SPDX-License-Identifier: MIT
// Package: homcount/dp
//
// join.go — pointwise product of two tables over the same bag.

package dp

import (
	"math/bits"

	"github.com/katalvlaran/homcount/errs"
)

// Multiply sets dst[i] = a[i]·b[i]. dst may alias a or b.
// A zero factor gives zero even against Saturated; any other product that
// reaches Saturated stores Saturated.
func Multiply(dst, a, b []uint64, sp Splitter) error {
	if len(a) != len(b) || len(dst) != len(a) {
		return errs.Invalid("Multiply: lengths %d, %d and %d differ", len(dst), len(a), len(b))
	}

	return sp.Run(len(dst), func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			x, y := a[i], b[i]
			if x == 0 || y == 0 {
				dst[i] = 0
				continue
			}
			if h, l := bits.Mul64(x, y); h == 0 && x != Saturated && y != Saturated {
				dst[i] = l
			} else {
				dst[i] = Saturated
			}
		}
		return nil
	})
}

// Join multiplies two tables of equal shape into a fresh table.
func Join(a, b *Table, sp Splitter) (*Table, error) {
	if a.Shape() != b.Shape() {
		return nil, errs.State("Join: shapes %d^%d and %d^%d differ",
			a.shape.Base, a.shape.Digits, b.shape.Base, b.shape.Digits)
	}
	out, err := NewTable(a.Shape())
	if err != nil {
		return nil, err
	}
	if err = Multiply(out.data, a.data, b.data, sp); err != nil {
		return nil, err
	}

	return out, nil
}
