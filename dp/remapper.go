// SPDX-License-Identifier: MIT
// Package: homcount/dp
//
// remapper.go — digit permutations of flat mixed-radix arrays.
//
// Contract (b digits of base n, position 0 most significant):
//   • Extract(p): the digit at position p becomes the least significant one;
//     digits p+1..b-1 move one place toward p; digits before p stay put.
//   • Insert(p): exact inverse of Extract(p); the least significant digit moves
//     to position p.
//   • Both are pure O(n^b) permutations: same size in, same size out.
//
// Strategies:
//   • ArithmeticRemapper  recombines high/digit/low parts of every index in
//     closed form; indices are independent and run through the Splitter.
//   • EnumerationRemapper walks the source space with an odometer and moves
//     the destination index by per-digit strides.
//   Both produce identical output.

package dp

import (
	"fmt"

	"github.com/katalvlaran/homcount/errs"
)

// Strategy selects a Remapper implementation.
type Strategy int

const (
	// StrategyArithmetic selects ArithmeticRemapper.
	StrategyArithmetic Strategy = iota
	// StrategyEnumeration selects EnumerationRemapper.
	StrategyEnumeration
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyArithmetic:
		return "arithmetic"
	case StrategyEnumeration:
		return "enumeration"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "arithmetic" / "enumeration" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "arithmetic":
		return StrategyArithmetic, nil
	case "enumeration":
		return StrategyEnumeration, nil
	default:
		return 0, errs.Invalid("unknown remapper strategy %q", name)
	}
}

// Remapper moves one digit of a flat table to or from the least significant
// slot. dst and src must have shape's size and must not overlap.
type Remapper interface {
	Extract(dst, src []uint64, shape Shape, p int) error
	Insert(dst, src []uint64, shape Shape, p int) error
}

// NewRemapper returns the Remapper for strategy s.
func NewRemapper(s Strategy, sp Splitter) (Remapper, error) {
	switch s {
	case StrategyArithmetic:
		return ArithmeticRemapper{Split: sp}, nil
	case StrategyEnumeration:
		return EnumerationRemapper{}, nil
	default:
		return nil, errs.Invalid("NewRemapper: unknown strategy %d", int(s))
	}
}

// remapGeometry holds the place values a remap needs.
type remapGeometry struct {
	n     int // base
	b     int // digits
	size  int // n^b
	low   int // n^(b-1-p): span of the digits after p
	block int // n^(b-p): span of digit p and everything after it
}

// checkRemap validates the arguments shared by every Extract/Insert.
func checkRemap(op string, dst, src []uint64, shape Shape, p int) (remapGeometry, error) {
	var geo remapGeometry
	if shape.Base < 1 || shape.Digits < 1 {
		return geo, errs.Invalid("%s: base %d and digit count %d must be >= 1", op, shape.Base, shape.Digits)
	}
	if p < 0 || p >= shape.Digits {
		return geo, errs.Invalid("%s: position %d outside [0,%d)", op, p, shape.Digits)
	}
	size, err := shape.Size()
	if err != nil {
		return geo, err
	}
	if len(src) != size || len(dst) != size {
		return geo, errs.Invalid("%s: buffers of %d and %d entries for shape %d^%d",
			op, len(src), len(dst), shape.Base, shape.Digits)
	}
	if &dst[0] == &src[0] {
		return geo, errs.Invalid("%s: dst and src share storage", op)
	}
	low, err := pow(shape.Base, shape.Digits-1-p)
	if err != nil {
		return geo, err
	}

	return remapGeometry{n: shape.Base, b: shape.Digits, size: size, low: low, block: low * shape.Base}, nil
}

// ArithmeticRemapper computes every destination index in closed form.
type ArithmeticRemapper struct {
	Split Splitter
}

// Extract moves the digit at position p to the least significant slot.
func (r ArithmeticRemapper) Extract(dst, src []uint64, shape Shape, p int) error {
	geo, err := checkRemap("Extract", dst, src, shape, p)
	if err != nil {
		return err
	}

	return r.Split.Run(geo.size, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			high, rem := i/geo.block, i%geo.block
			digit, low := rem/geo.low, rem%geo.low
			dst[high*geo.block+low*geo.n+digit] = src[i]
		}
		return nil
	})
}

// Insert moves the least significant digit to position p.
func (r ArithmeticRemapper) Insert(dst, src []uint64, shape Shape, p int) error {
	geo, err := checkRemap("Insert", dst, src, shape, p)
	if err != nil {
		return err
	}

	return r.Split.Run(geo.size, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			high, rem := i/geo.block, i%geo.block
			low, digit := rem/geo.n, rem%geo.n
			dst[high*geo.block+digit*geo.low+low] = src[i]
		}
		return nil
	})
}

// EnumerationRemapper iterates the source index space digit by digit.
type EnumerationRemapper struct{}

// Extract moves the digit at position p to the least significant slot.
func (EnumerationRemapper) Extract(dst, src []uint64, shape Shape, p int) error {
	geo, err := checkRemap("Extract", dst, src, shape, p)
	if err != nil {
		return err
	}

	// Destination place value of every source position.
	strides := placeValues(geo.n, geo.b)
	dstStride := make([]int, geo.b)
	for j := 0; j < geo.b; j++ {
		switch {
		case j < p:
			dstStride[j] = strides[j]
		case j == p:
			dstStride[j] = 1
		default:
			dstStride[j] = strides[j] * geo.n
		}
	}
	odometer(dst, src, geo, dstStride)

	return nil
}

// Insert moves the least significant digit to position p.
func (EnumerationRemapper) Insert(dst, src []uint64, shape Shape, p int) error {
	geo, err := checkRemap("Insert", dst, src, shape, p)
	if err != nil {
		return err
	}

	strides := placeValues(geo.n, geo.b)
	dstStride := make([]int, geo.b)
	for j := 0; j < geo.b; j++ {
		switch {
		case j == geo.b-1:
			dstStride[j] = strides[p]
		case j < p:
			dstStride[j] = strides[j]
		default:
			dstStride[j] = strides[j+1]
		}
	}
	odometer(dst, src, geo, dstStride)

	return nil
}

// placeValues returns n^(b-1-j) for every position j.
func placeValues(n, b int) []int {
	out := make([]int, b)
	place := 1
	for j := b - 1; j >= 0; j-- {
		out[j] = place
		place *= n
	}

	return out
}

// odometer copies src[i] to dst[d(i)], where d moves by dstStride[j] whenever
// source digit j increments.
func odometer(dst, src []uint64, geo remapGeometry, dstStride []int) {
	counter := make([]int, geo.b)
	d := 0
	for i := 0; i < geo.size; i++ {
		dst[d] = src[i]
		for j := geo.b - 1; j >= 0; j-- {
			counter[j]++
			d += dstStride[j]
			if counter[j] < geo.n {
				break
			}
			d -= geo.n * dstStride[j]
			counter[j] = 0
		}
	}
}
