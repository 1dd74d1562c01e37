// SPDX-License-Identifier: MIT
// Package: homcount/dp
//
// introduce.go — extension by one new least significant digit, plus the
// consistency filters that zero assignments violating an edge or injectivity.
//
// Contract:
//   • IntroduceLast(dst, src, n): dst[j·n + a] = src[j] for every a < n.
//   • FilterAdjacent(t, q, adj): zero entries whose last digit a and digit q
//     are not adjacent in adj.
//   • FilterDistinct(t, q): zero entries whose last digit equals digit q.
//   • Filters run in place and are idempotent; they only ever zero entries.

package dp

import (
	"github.com/katalvlaran/homcount/errs"
)

// Adjacency is the host-graph view the filters need. *graph.Graph satisfies it.
type Adjacency interface {
	Order() int
	HasEdge(u, v int) bool
}

// IntroduceLast replicates every src entry across a new least significant digit.
func IntroduceLast(dst, src []uint64, n int, sp Splitter) error {
	if n < 1 {
		return errs.Invalid("IntroduceLast: base %d must be >= 1", n)
	}
	if len(src) == 0 || len(dst) != len(src)*n {
		return errs.Invalid("IntroduceLast: %d destination entries for %d rows of base %d", len(dst), len(src), n)
	}

	return sp.Run(len(src), func(lo, hi int) error {
		for j := lo; j < hi; j++ {
			row := dst[j*n : j*n+n]
			v := src[j]
			for a := range row {
				row[a] = v
			}
		}
		return nil
	})
}

// Introduce returns t extended by one least significant digit.
func Introduce(t *Table, sp Splitter) (*Table, error) {
	s := t.Shape()
	out, err := NewTable(Shape{Base: s.Base, Digits: s.Digits + 1})
	if err != nil {
		return nil, err
	}
	if err = IntroduceLast(out.data, t.data, s.Base, sp); err != nil {
		return nil, err
	}

	return out, nil
}

// checkFilter validates a filter's target digit and returns n^(b-2-q), the
// place value of digit q inside a row (the row index drops the last digit).
func checkFilter(op string, t *Table, q int) (int, error) {
	s := t.Shape()
	if s.Digits < 2 {
		return 0, errs.Invalid("%s: table needs at least 2 digits, has %d", op, s.Digits)
	}
	if q < 0 || q >= s.Digits-1 {
		return 0, errs.Invalid("%s: position %d outside [0,%d)", op, q, s.Digits-1)
	}

	return pow(s.Base, s.Digits-2-q)
}

// FilterAdjacent zeroes every entry of t whose last digit is not adjacent in
// adj to its digit at position q.
func FilterAdjacent(t *Table, q int, adj Adjacency, sp Splitter) error {
	place, err := checkFilter("FilterAdjacent", t, q)
	if err != nil {
		return err
	}
	n := t.shape.Base
	if adj.Order() != n {
		return errs.Invalid("FilterAdjacent: adjacency of order %d for base %d", adj.Order(), n)
	}

	rows := len(t.data) / n
	return sp.Run(rows, func(lo, hi int) error {
		for j := lo; j < hi; j++ {
			other := (j / place) % n
			row := t.data[j*n : j*n+n]
			for a := range row {
				if row[a] != 0 && !adj.HasEdge(a, other) {
					row[a] = 0
				}
			}
		}
		return nil
	})
}

// FilterDistinct zeroes every entry of t whose last digit equals its digit at
// position q.
func FilterDistinct(t *Table, q int, sp Splitter) error {
	place, err := checkFilter("FilterDistinct", t, q)
	if err != nil {
		return err
	}
	n := t.shape.Base

	rows := len(t.data) / n
	return sp.Run(rows, func(lo, hi int) error {
		for j := lo; j < hi; j++ {
			other := (j / place) % n
			t.data[j*n+other] = 0
		}
		return nil
	})
}
