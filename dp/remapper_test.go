package dp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/homcount/dp"
	"github.com/katalvlaran/homcount/errs"
)

// iota64 returns [0, 1, ..., size-1].
func iota64(size int) []uint64 {
	out := make([]uint64, size)
	for i := range out {
		out[i] = uint64(i)
	}
	return out
}

// remappers returns one remapper per strategy, the arithmetic one forced to split.
func remappers(t *testing.T) map[string]dp.Remapper {
	t.Helper()
	arith, err := dp.NewRemapper(dp.StrategyArithmetic, dp.Splitter{Workers: 4, MinChunk: 3})
	require.NoError(t, err)
	enum, err := dp.NewRemapper(dp.StrategyEnumeration, dp.Splitter{})
	require.NoError(t, err)

	return map[string]dp.Remapper{"arithmetic": arith, "enumeration": enum}
}

// TestRemapper_LiteralVectors checks both directions on the identity array for n=2, b=3.
func TestRemapper_LiteralVectors(t *testing.T) {
	shape := dp.Shape{Base: 2, Digits: 3}
	cases := []struct {
		name    string
		extract bool
		p       int
		want    []uint64
	}{
		{"extract middle", true, 1, []uint64{0, 2, 1, 3, 4, 6, 5, 7}},
		{"extract first", true, 0, []uint64{0, 4, 1, 5, 2, 6, 3, 7}},
		{"extract last", true, 2, []uint64{0, 1, 2, 3, 4, 5, 6, 7}},
		{"insert middle", false, 1, []uint64{0, 2, 1, 3, 4, 6, 5, 7}},
		{"insert first", false, 0, []uint64{0, 2, 4, 6, 1, 3, 5, 7}},
	}

	for name, r := range remappers(t) {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				dst := make([]uint64, 8)
				var err error
				if tc.extract {
					err = r.Extract(dst, iota64(8), shape, tc.p)
				} else {
					err = r.Insert(dst, iota64(8), shape, tc.p)
				}
				require.NoError(t, err)
				assert.Equal(t, tc.want, dst)
			})
		}
	}
}

// TestRemapper_RoundTrip checks Insert∘Extract and Extract∘Insert are identities
// and that both strategies agree, for several shapes and every position.
func TestRemapper_RoundTrip(t *testing.T) {
	rs := remappers(t)
	shapes := []dp.Shape{
		{Base: 1, Digits: 3}, {Base: 2, Digits: 1}, {Base: 3, Digits: 3},
		{Base: 4, Digits: 4}, {Base: 5, Digits: 2}, {Base: 2, Digits: 7},
	}

	for _, s := range shapes {
		size, err := s.Size()
		require.NoError(t, err)
		src := iota64(size)

		for p := 0; p < s.Digits; p++ {
			var extracted, inserted [][]uint64
			for _, name := range []string{"arithmetic", "enumeration"} {
				r := rs[name]
				ex := make([]uint64, size)
				back := make([]uint64, size)
				require.NoError(t, r.Extract(ex, src, s, p))
				require.NoError(t, r.Insert(back, ex, s, p))
				assert.Equal(t, src, back, "%s: Insert(Extract) shape %v p=%d", name, s, p)

				in := make([]uint64, size)
				require.NoError(t, r.Insert(in, src, s, p))
				require.NoError(t, r.Extract(back, in, s, p))
				assert.Equal(t, src, back, "%s: Extract(Insert) shape %v p=%d", name, s, p)

				extracted = append(extracted, ex)
				inserted = append(inserted, in)
			}
			assert.Equal(t, extracted[0], extracted[1], "strategies disagree on Extract shape %v p=%d", s, p)
			assert.Equal(t, inserted[0], inserted[1], "strategies disagree on Insert shape %v p=%d", s, p)
		}
	}
}

// TestRemapper_DigitSemantics verifies Extract moves digit p to the last slot
// using Table's own digit accessor.
func TestRemapper_DigitSemantics(t *testing.T) {
	s := dp.Shape{Base: 3, Digits: 4}
	src, err := dp.NewTable(s)
	require.NoError(t, err)
	copy(src.Data(), iota64(src.Len()))

	const p = 1
	dst, err := dp.NewTable(s)
	require.NoError(t, err)
	require.NoError(t, dp.EnumerationRemapper{}.Extract(dst.Data(), src.Data(), s, p))

	for i, v := range dst.Data() {
		orig := int(v)
		// dst digits: [d0, d2, d3, d1] of the source index.
		assert.Equal(t, src.Digit(orig, 0), dst.Digit(i, 0))
		assert.Equal(t, src.Digit(orig, 2), dst.Digit(i, 1))
		assert.Equal(t, src.Digit(orig, 3), dst.Digit(i, 2))
		assert.Equal(t, src.Digit(orig, p), dst.Digit(i, 3))
	}
}

// TestRemapper_InvalidArguments covers every rejected call shape.
func TestRemapper_InvalidArguments(t *testing.T) {
	buf := make([]uint64, 8)
	other := make([]uint64, 8)
	cases := []struct {
		name     string
		dst, src []uint64
		shape    dp.Shape
		p        int
	}{
		{"zero base", other, buf, dp.Shape{Base: 0, Digits: 3}, 0},
		{"zero digits", other, buf, dp.Shape{Base: 2, Digits: 0}, 0},
		{"negative position", other, buf, dp.Shape{Base: 2, Digits: 3}, -1},
		{"position past end", other, buf, dp.Shape{Base: 2, Digits: 3}, 3},
		{"short source", other, buf[:4], dp.Shape{Base: 2, Digits: 3}, 0},
		{"short destination", other[:7], buf, dp.Shape{Base: 2, Digits: 3}, 0},
		{"aliased", buf, buf, dp.Shape{Base: 2, Digits: 3}, 0},
	}

	for name, r := range remappers(t) {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				assert.ErrorIs(t, r.Extract(tc.dst, tc.src, tc.shape, tc.p), errs.ErrInvalidArgument)
				assert.ErrorIs(t, r.Insert(tc.dst, tc.src, tc.shape, tc.p), errs.ErrInvalidArgument)
			})
		}
	}
}

// TestStrategy_ParseAndString checks the tag round trip.
func TestStrategy_ParseAndString(t *testing.T) {
	for _, s := range []dp.Strategy{dp.StrategyArithmetic, dp.StrategyEnumeration} {
		got, err := dp.ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := dp.ParseStrategy("bogus")
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	_, err = dp.NewRemapper(dp.Strategy(9), dp.Splitter{})
	assert.ErrorIs(t, err, errs.ErrInvalidArgument)
	assert.Equal(t, "Strategy(9)", dp.Strategy(9).String())
}
