package dp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homcount/dp"
	"github.com/katalvlaran/homcount/errs"
)

// TestForgetLast_Identity checks dst[j] = j·n² + n(n-1)/2 on the identity array.
func TestForgetLast_Identity(t *testing.T) {
	splitters := []dp.Splitter{{}, {Workers: 3, MinChunk: 2}}
	for _, sp := range splitters {
		for n := 1; n <= 9; n++ {
			for b := 1; b <= 4; b++ {
				size, err := dp.Shape{Base: n, Digits: b}.Size()
				require.NoError(t, err)
				dst := make([]uint64, size/n)
				require.NoError(t, dp.ForgetLast(dst, iota64(size), n, sp))

				nn := uint64(n)
				for j, got := range dst {
					want := uint64(j)*nn*nn + nn*(nn-1)/2
					require.Equal(t, want, got, "n=%d b=%d j=%d", n, b, j)
				}
			}
		}
	}
}

// TestForgetLast_Errors covers bad bases and sizes.
func TestForgetLast_Errors(t *testing.T) {
	assert.ErrorIs(t, dp.ForgetLast(make([]uint64, 1), make([]uint64, 1), 0, dp.Splitter{}), errs.ErrInvalidArgument)
	assert.ErrorIs(t, dp.ForgetLast(nil, nil, 2, dp.Splitter{}), errs.ErrInvalidArgument)
	assert.ErrorIs(t, dp.ForgetLast(make([]uint64, 2), make([]uint64, 5), 2, dp.Splitter{}), errs.ErrInvalidArgument)
}

// TestForgetLast_Saturates keeps rows that carry at Saturated.
func TestForgetLast_Saturates(t *testing.T) {
	cases := []struct {
		name string
		src  []uint64
		want uint64
	}{
		{"carry", []uint64{math.MaxUint64 - 1, 2}, dp.Saturated},
		{"exact max", []uint64{math.MaxUint64 - 1, 1}, dp.Saturated},
		{"saturated input", []uint64{dp.Saturated, 0}, dp.Saturated},
		{"fits", []uint64{math.MaxUint64 - 2, 1}, math.MaxUint64 - 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dst := make([]uint64, 1)
			require.NoError(t, dp.ForgetLast(dst, tc.src, 2, dp.Splitter{}))
			assert.Equal(t, tc.want, dst[0])
		})
	}
}

// TestForget_AnyPosition checks Forget at every position against a direct sum.
func TestForget_AnyPosition(t *testing.T) {
	s := dp.Shape{Base: 3, Digits: 3}
	src, err := dp.NewTable(s)
	require.NoError(t, err)
	copy(src.Data(), iota64(src.Len()))

	r, err := dp.NewRemapper(dp.StrategyArithmetic, dp.Splitter{})
	require.NoError(t, err)

	for p := 0; p < s.Digits; p++ {
		out, err := dp.Forget(src, p, r, dp.Splitter{})
		require.NoError(t, err)
		require.Equal(t, dp.Shape{Base: 3, Digits: 2}, out.Shape())

		for x := 0; x < 3; x++ {
			for y := 0; y < 3; y++ {
				var want uint64
				for z := 0; z < 3; z++ {
					digits := []int{x, y}
					digits = append(digits[:p], append([]int{z}, digits[p:]...)...)
					v, err := src.At(digits...)
					require.NoError(t, err)
					want += v
				}
				got, err := out.At(x, y)
				require.NoError(t, err)
				assert.Equal(t, want, got, "p=%d (%d,%d)", p, x, y)
			}
		}
	}

	_, err = dp.Forget(src, 3, r, dp.Splitter{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

// TestIntroduceLast replicates each entry across the new digit.
func TestIntroduceLast(t *testing.T) {
	dst := make([]uint64, 6)
	require.NoError(t, dp.IntroduceLast(dst, []uint64{4, 9}, 3, dp.Splitter{}))
	assert.Equal(t, []uint64{4, 4, 4, 9, 9, 9}, dst)

	assert.ErrorIs(t, dp.IntroduceLast(dst, []uint64{1}, 3, dp.Splitter{}), errs.ErrInvalidArgument)
	assert.ErrorIs(t, dp.IntroduceLast(dst, []uint64{1, 2}, 0, dp.Splitter{}), errs.ErrInvalidArgument)
}

// pathAdjacency is the path 0-1-2-…-(n-1).
type pathAdjacency int

func (p pathAdjacency) Order() int { return int(p) }
func (p pathAdjacency) HasEdge(u, v int) bool {
	return u-v == 1 || v-u == 1
}

// TestFilters zeroes the inconsistent entries of an introduced digit.
func TestFilters(t *testing.T) {
	const n = 4
	leaf, err := dp.Ones(dp.Shape{Base: n, Digits: 2})
	require.NoError(t, err)
	grown, err := dp.Introduce(leaf, dp.Splitter{Workers: 2, MinChunk: 1})
	require.NoError(t, err)
	require.Equal(t, n*n*n, grown.Len())

	require.NoError(t, dp.FilterAdjacent(grown, 0, pathAdjacency(n), dp.Splitter{}))
	require.NoError(t, dp.FilterDistinct(grown, 1, dp.Splitter{}))

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				want := uint64(0)
				if pathAdjacency(n).HasEdge(x, z) && y != z {
					want = 1
				}
				got, err := grown.At(x, y, z)
				require.NoError(t, err)
				assert.Equal(t, want, got, "(%d,%d,%d)", x, y, z)
			}
		}
	}

	assert.ErrorIs(t, dp.FilterAdjacent(grown, 2, pathAdjacency(n), dp.Splitter{}), errs.ErrInvalidArgument)
	assert.ErrorIs(t, dp.FilterAdjacent(grown, 0, pathAdjacency(n+1), dp.Splitter{}), errs.ErrInvalidArgument)
	assert.ErrorIs(t, dp.FilterDistinct(leaf, 1, dp.Splitter{}), errs.ErrInvalidArgument)

	single, err := dp.Ones(dp.Shape{Base: n, Digits: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, dp.FilterDistinct(single, 0, dp.Splitter{}), errs.ErrInvalidArgument)
}

// TestMultiply covers products, aliasing and saturation.
func TestMultiply(t *testing.T) {
	a := []uint64{1, 2, 3, 4}
	b := []uint64{5, 6, 7, 8}
	require.NoError(t, dp.Multiply(a, a, b, dp.Splitter{Workers: 2, MinChunk: 1}))
	assert.Equal(t, []uint64{5, 12, 21, 32}, a)

	assert.ErrorIs(t, dp.Multiply(a, a, b[:3], dp.Splitter{}), errs.ErrInvalidArgument)

	x := []uint64{1 << 40, dp.Saturated, 0, dp.Saturated, 3}
	y := []uint64{1 << 40, 2, dp.Saturated, 0, 5}
	dst := make([]uint64, len(x))
	require.NoError(t, dp.Multiply(dst, x, y, dp.Splitter{}))
	assert.Equal(t, []uint64{dp.Saturated, dp.Saturated, 0, 0, 15}, dst)
}

// TestJoin rejects mismatched shapes.
func TestJoin(t *testing.T) {
	x, err := dp.Ones(dp.Shape{Base: 2, Digits: 2})
	require.NoError(t, err)
	y, err := dp.Ones(dp.Shape{Base: 2, Digits: 1})
	require.NoError(t, err)
	_, err = dp.Join(x, y, dp.Splitter{})
	assert.ErrorIs(t, err, errs.ErrInvalidState)

	j, err := dp.Join(x, x, dp.Splitter{})
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 1, 1, 1}, j.Data())
}

// TestTable covers shapes, indexing and the scalar accessor.
func TestTable(t *testing.T) {
	_, err := dp.NewTable(dp.Shape{Base: 0, Digits: 1})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = dp.NewTable(dp.Shape{Base: 2, Digits: -1})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = dp.NewTable(dp.Shape{Base: 1 << 20, Digits: 3})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)

	scalar, err := dp.Ones(dp.Shape{Base: 5, Digits: 0})
	require.NoError(t, err)
	v, err := scalar.Scalar()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)

	tb, err := dp.FromSlice(dp.Shape{Base: 3, Digits: 2}, iota64(9))
	require.NoError(t, err)
	_, err = tb.Scalar()
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	got, err := tb.At(2, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got)
	assert.Equal(t, 2, tb.Digit(7, 0))
	assert.Equal(t, 1, tb.Digit(7, 1))

	_, err = tb.At(3, 0)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = tb.At(1)
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = dp.FromSlice(dp.Shape{Base: 3, Digits: 2}, iota64(8))
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
}

// TestSplitter_CoversRange checks the ranges are disjoint and complete.
func TestSplitter_CoversRange(t *testing.T) {
	for _, sp := range []dp.Splitter{{}, {Workers: 1}, {Workers: 4, MinChunk: 1}, {Workers: 7, MinChunk: 10}} {
		const size = 103
		hits := make([]int, size)
		require.NoError(t, sp.Run(size, func(lo, hi int) error {
			for i := lo; i < hi; i++ {
				hits[i]++
			}
			return nil
		}))
		for i, h := range hits {
			assert.Equal(t, 1, h, "index %d", i)
		}
	}

	require.NoError(t, dp.Splitter{Workers: 4}.Run(0, func(lo, hi int) error {
		t.Fatal("no work expected")
		return nil
	}))
	err := dp.Splitter{Workers: 4, MinChunk: 1}.Run(10, func(lo, hi int) error {
		return errs.Overflow("range %d", lo)
	})
	assert.ErrorIs(t, err, errs.ErrOverflow)
}

func BenchmarkRemapper_Extract(b *testing.B) {
	s := dp.Shape{Base: 16, Digits: 4}
	size, _ := s.Size()
	src, dst := iota64(size), make([]uint64, size)
	for _, strategy := range []dp.Strategy{dp.StrategyArithmetic, dp.StrategyEnumeration} {
		r, _ := dp.NewRemapper(strategy, dp.Splitter{})
		b.Run(strategy.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = r.Extract(dst, src, s, 1)
			}
		})
	}
}

func BenchmarkForgetLast(b *testing.B) {
	const n = 32
	src := iota64(n * n * n)
	dst := make([]uint64, n*n)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = dp.ForgetLast(dst, src, n, dp.Splitter{})
	}
}
