// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/matrix"
)

func TestAddSub(t *testing.T) {
	a := grid22(1, 2, 3, 4)
	b := grid22(5, 6, 7, 8)

	require.Equal(t, [][]int{{6, 8}, {10, 12}}, matrix.Add(a, b).ToSlices())
	require.Equal(t, [][]int{{-4, -4}, {-4, -4}}, matrix.Sub(a, b).ToSlices())
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, a.ToSlices(), "operands are not mutated")
}

func TestAddSubInPlace(t *testing.T) {
	a := grid22(1, 2, 3, 4)
	a.AddInPlace(grid22(5, 6, 7, 8))
	require.True(t, a.Equal(grid22(6, 8, 10, 12)))

	a.SubInPlace(grid22(5, 6, 7, 8))
	require.True(t, a.Equal(grid22(1, 2, 3, 4)))
}

func TestScale(t *testing.T) {
	a := grid22(1, 2, 3, 4)
	require.Equal(t, [][]int{{4, 8}, {12, 16}}, matrix.Scale(a, 4).ToSlices())

	a.ScaleInPlace(-1)
	require.Equal(t, [][]int{{-1, -2}, {-3, -4}}, a.ToSlices())
}

func TestElementwiseProductQuotientRemainder(t *testing.T) {
	a := grid22(7, 8, 9, 10)
	b := grid22(2, 3, 4, 5)

	require.Equal(t, [][]int{{14, 24}, {36, 50}}, matrix.MulElem(a, b).ToSlices())
	require.Equal(t, [][]int{{3, 2}, {2, 2}}, matrix.DivElem(a, b).ToSlices())
	require.Equal(t, [][]int{{1, 2}, {1, 0}}, matrix.RemElem(a, b).ToSlices())

	fa := matrix.New[matrix.D1, matrix.D2]([][]float64{{7.5, 1}})
	fb := matrix.New[matrix.D1, matrix.D2]([][]float64{{2, 0}})
	rem := matrix.RemElem(fa, fb)
	require.InDelta(t, 1.5, rem.At(0, 0), 1e-12)
	require.True(t, math.IsNaN(rem.At(0, 1)))
	require.True(t, math.IsInf(matrix.DivElem(fa, fb).At(0, 1), 1), "float division by zero follows IEEE-754")
}

func TestIntegerDivisionByZeroPanics(t *testing.T) {
	require.Panics(t, func() { _ = matrix.DivElem(grid22(1, 1, 1, 1), grid22(1, 0, 1, 1)) })
}

func TestMap(t *testing.T) {
	a := grid22(1, -2, 3, -4)
	abs := a.Map(func(v int) int { return max(v, -v) })
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, abs.ToSlices())

	idx := a.MapIndexed(func(i, j int, _ int) int { return i*10 + j })
	require.Equal(t, [][]int{{0, 1}, {10, 11}}, idx.ToSlices())
}

func TestEqual(t *testing.T) {
	a := grid22(1, 2, 3, 4)
	require.True(t, a.Equal(a), "reflexive")
	require.True(t, matrix.Equal(a, grid22(1, 2, 3, 4)))
	require.False(t, matrix.Equal(a, grid22(1, 2, 3, 5)))
	require.Equal(t, matrix.Equal(a, grid22(4, 3, 2, 1)), matrix.Equal(grid22(4, 3, 2, 1), a), "symmetric")
}

func TestEqualAny_ShapeSensitive(t *testing.T) {
	square := matrix.New[matrix.D2, matrix.D2]([][]int{{1, 2}, {3, 4}})
	row := matrix.NewRowVector[matrix.D4](1, 2, 3, 4)
	col := matrix.NewColumnVector[matrix.D4](1, 2, 3, 4)

	require.True(t, matrix.EqualAny[int](square, square.Clone()))
	require.False(t, matrix.EqualAny[int](square, row), "same row-major data, different shape")
	require.False(t, matrix.EqualAny[int](row, col))
	require.False(t, matrix.EqualAny[int](col, square))
	require.True(t, matrix.EqualAny[int](row, col.T()))
	require.True(t, matrix.EqualAny[int](nil, nil))
	require.False(t, matrix.EqualAny[int](square, nil))
}

func TestEqualAny_TypedNil(t *testing.T) {
	var a, b *matrix.Matrix[matrix.D2, matrix.D2, int]
	zero := matrix.Zeros[matrix.D2, matrix.D2, int]()

	require.NotPanics(t, func() {
		require.False(t, matrix.EqualAny[int](a, zero))
		require.False(t, matrix.EqualAny[int](zero, a))
	})
	require.True(t, matrix.EqualAny[int](a, b))
	require.True(t, matrix.EqualAny[int](a, nil))
}

func TestEqualApprox(t *testing.T) {
	a := matrix.New[matrix.D1, matrix.D3]([][]float64{{1, math.Inf(1), 3}})
	b := matrix.New[matrix.D1, matrix.D3]([][]float64{{1 + 1e-10, math.Inf(1), 3}})
	require.True(t, matrix.EqualApprox(a, b, 1e-9))
	require.False(t, matrix.EqualApprox(a, b, 1e-12))

	nan := matrix.New[matrix.D1, matrix.D3]([][]float64{{1, math.Inf(1), math.NaN()}})
	require.False(t, matrix.EqualApprox(a, nan, 1))
	require.False(t, nan.Equal(nan), "NaN is never equal to itself")
}
