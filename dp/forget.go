// SPDX-License-Identifier: MIT
// Package: homcount/dp
//
// forget.go — existential elimination of the least significant digit.
//
// Contract:
//   • ForgetLast(dst, src, n): dst[j] = Σ_{r<n} src[j·n + r].
//   • len(src) == len(dst)·n; b = 1 reduces to the grand total.
//   • Sums saturate: a carry, or any Saturated input, yields Saturated.
//
// Complexity: O(|src|) time, no allocation beyond dst.

package dp

import (
	"math/bits"

	"github.com/katalvlaran/homcount/errs"
)

// ForgetLast sums src over its least significant digit into dst. A row whose
// sum does not fit below Saturated stores Saturated.
func ForgetLast(dst, src []uint64, n int, sp Splitter) error {
	if n < 1 {
		return errs.Invalid("ForgetLast: base %d must be >= 1", n)
	}
	if len(dst) == 0 || len(src) != len(dst)*n {
		return errs.Invalid("ForgetLast: %d source entries for %d rows of base %d", len(src), len(dst), n)
	}

	return sp.Run(len(dst), func(lo, hi int) error {
		for j := lo; j < hi; j++ {
			row := src[j*n : j*n+n]
			var sum, carry uint64
			for _, c := range row {
				if sum, carry = bits.Add64(sum, c, 0); carry != 0 {
					sum = Saturated
					break
				}
			}
			dst[j] = sum
		}
		return nil
	})
}

// Forget eliminates the digit at position p of t and returns the smaller
// table. When p is not the last position the digit is first moved there with r.
func Forget(t *Table, p int, r Remapper, sp Splitter) (*Table, error) {
	s := t.Shape()
	if p < 0 || p >= s.Digits {
		return nil, errs.Invalid("Forget: position %d outside [0,%d)", p, s.Digits)
	}

	src := t.data
	if p != s.Digits-1 {
		moved := make([]uint64, len(src))
		if err := r.Extract(moved, src, s, p); err != nil {
			return nil, err
		}
		src = moved
	}

	out, err := NewTable(Shape{Base: s.Base, Digits: s.Digits - 1})
	if err != nil {
		return nil, err
	}
	if err = ForgetLast(out.data, src, s.Base, sp); err != nil {
		return nil, err
	}

	return out, nil
}
