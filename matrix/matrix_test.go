// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/matrix"
)

func TestNew_CopiesGrid(t *testing.T) {
	grid := [][]int{{1, 2, 3}, {4, 5, 6}}
	m := matrix.New[matrix.D2, matrix.D3](grid)
	grid[0][0] = 100

	require.Equal(t, 1, m.At(0, 0), "later edits to the grid must not leak into the matrix")
	require.Equal(t, 6, m.At(1, 2))
	r, c := m.Shape()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6, m.Len())
}

func TestNew_InvalidDimensionsPanics(t *testing.T) {
	requirePanicsWith(t, matrix.ErrInvalidDimensions, func() {
		_ = matrix.New[d0, matrix.D2]([][]int{})
	})
	requirePanicsWith(t, matrix.ErrInvalidDimensions, func() {
		_ = matrix.NewFilled[matrix.D2, d0](1.5)
	})
	requirePanicsWith(t, matrix.ErrInvalidDimensions, func() {
		_ = matrix.Zeros[d0, d0, int]()
	})
}

func TestNew_RaggedGridPanics(t *testing.T) {
	requirePanicsWith(t, matrix.ErrDimensionMismatch, func() {
		_ = matrix.New[matrix.D2, matrix.D2]([][]int{{1, 2}, {3}})
	})
	requirePanicsWith(t, matrix.ErrDimensionMismatch, func() {
		_ = matrix.New[matrix.D2, matrix.D2]([][]int{{1, 2}})
	})
}

func TestNewFilled(t *testing.T) {
	m := matrix.NewFilled[matrix.D3, matrix.D2](int8(7))
	for v := range m.All() {
		require.Equal(t, int8(7), v)
	}
}

func TestNewFunc_RowMajorOrder(t *testing.T) {
	var calls []matrix.Index
	counter := 0
	m := matrix.NewFunc[matrix.D2, matrix.D3](func(i, j int) int {
		calls = append(calls, matrix.Index{Row: i, Col: j})
		counter++
		return counter
	})

	require.Equal(t, []matrix.Index{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}, calls)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m.ToSlices(), "side effects land in row-major order")
}

func TestIdentityAndTrace(t *testing.T) {
	id := matrix.Identity[matrix.D3, float32]()
	require.Equal(t, [][]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.ToSlices())
	require.Equal(t, float32(3), matrix.Trace(id))
}

func TestAtSet_Bounds(t *testing.T) {
	m := matrix.Zeros[matrix.D2, matrix.D3, int]()
	m.Set(1, 2, 9)
	require.Equal(t, 9, m.At(1, 2))

	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = m.At(2, 0) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = m.At(0, 3) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = m.At(-1, 0) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { m.Set(0, -1, 1) })
}

func TestLookupStore(t *testing.T) {
	m := matrix.Zeros[matrix.D2, matrix.D2, float64]()
	require.NoError(t, m.Store(0, 1, 2.5))
	v, err := m.Lookup(0, 1)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	_, err = m.Lookup(5, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Store(0, 2, 1), matrix.ErrOutOfRange)

	var nilM *matrix.Matrix[matrix.D2, matrix.D2, float64]
	_, err = nilM.Lookup(0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.ErrorIs(t, nilM.Store(0, 0, 1), matrix.ErrNilMatrix)
}

func TestShapeQueries(t *testing.T) {
	row := matrix.Zeros[matrix.D1, matrix.D4, int]()
	col := matrix.Zeros[matrix.D4, matrix.D1, int]()
	sq := matrix.Zeros[matrix.D3, matrix.D3, int]()

	require.True(t, row.IsRowVector())
	require.False(t, row.IsColVector())
	require.True(t, col.IsColVector())
	require.False(t, col.IsRowVector())
	require.True(t, sq.IsSquare())
	require.False(t, row.IsSquare())
	require.Equal(t, 20, matrix.Zeros[d20, matrix.D1, int]().Rows())
}

func TestRowColViews(t *testing.T) {
	m := matrix.New[matrix.D2, matrix.D3]([][]int{{1, 2, 3}, {4, 5, 6}})

	r := m.Row(1)
	require.Equal(t, 3, r.Len())
	require.Equal(t, []int{4, 5, 6}, r.Slice())
	require.Equal(t, 5, r.At(1))

	c := m.Col(2)
	require.Equal(t, 2, c.Len())
	require.Equal(t, []int{3, 6}, c.Slice())

	m.Set(1, 2, 60)
	require.Equal(t, 60, r.At(2), "views read through to the matrix")

	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = m.Row(2) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = m.Col(3) })
	requirePanicsWith(t, matrix.ErrOutOfRange, func() { _ = r.At(3) })
}

func TestClone_Independent(t *testing.T) {
	a := grid22(1, 2, 3, 4)
	b := a.Clone()
	b.Set(0, 0, 42)

	require.Equal(t, 1, a.At(0, 0))
	require.Equal(t, 42, b.At(0, 0))
}

func TestString(t *testing.T) {
	require.Equal(t, "[1, 2]\n[3, 4]\n", grid22(1, 2, 3, 4).String())
}

func TestRowVectorConstructors(t *testing.T) {
	rv := matrix.NewRowVector[matrix.D3](1.0, 2.0, 3.0)
	require.Equal(t, [][]float64{{1, 2, 3}}, rv.ToSlices())
	cv := matrix.NewColumnVector[matrix.D2](int64(5), int64(6))
	require.Equal(t, [][]int64{{5}, {6}}, cv.ToSlices())

	requirePanicsWith(t, matrix.ErrDimensionMismatch, func() {
		_ = matrix.NewRowVector[matrix.D3](1, 2)
	})
	requirePanicsWith(t, matrix.ErrDimensionMismatch, func() {
		_ = matrix.NewColumnVector[matrix.D1](1, 2)
	})
}

func TestVectorAliases(t *testing.T) {
	m := matrix.New[matrix.D2, matrix.D3]([][]int{{1, 2, 3}, {4, 5, 6}})

	var rowSum *matrix.ColumnVector[matrix.D2, int] = m.RowSum()
	var colSum *matrix.RowVector[matrix.D3, int] = m.ColSum()
	var rowMax *matrix.ColumnVector[matrix.D2, int] = m.RowMax()

	require.Equal(t, [][]int{{6}, {15}}, rowSum.ToSlices())
	require.Equal(t, [][]int{{5, 7, 9}}, colSum.ToSlices())
	require.Equal(t, [][]int{{3}, {6}}, rowMax.ToSlices())

	var bias *matrix.RowVector[matrix.D3, int] = matrix.NewRowVector[matrix.D3](1, 1, 1)
	var shift *matrix.ColumnVector[matrix.D2, int] = matrix.NewColumnVector[matrix.D2](10, 20)
	require.Equal(t, [][]int{{12, 13, 14}, {25, 26, 27}}, m.AddRowVector(bias).AddColVector(shift).ToSlices())
}
