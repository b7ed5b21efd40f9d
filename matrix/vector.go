// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/plexus/numeric"
)

// RowVector is a 1×N matrix. It is an alias, so a RowVector is usable
// anywhere a Matrix[D1, N, T] is expected and vice versa.
type RowVector[N Dim, T numeric.Numeric] = Matrix[D1, N, T]

// ColumnVector is an N×1 matrix.
//
// Signatures inside this package spell out Matrix[D1, N, T] and
// Matrix[N, D1, T]: generic alias instances in Matrix's own method set
// stall the type checker.
type ColumnVector[N Dim, T numeric.Numeric] = Matrix[N, D1, T]

// NewRowVector builds a 1×N vector from exactly N values.
// Panics with ErrDimensionMismatch when len(values) != N.
func NewRowVector[N Dim, T numeric.Numeric](values ...T) *Matrix[D1, N, T] {
	v := alloc[D1, N, T](opNew)
	if len(values) != v.cols {
		fail(opNew, fmt.Errorf("%d values for a 1x%d vector: %w", len(values), v.cols, ErrDimensionMismatch))
	}
	copy(v.data, values)

	return v
}

// NewColumnVector builds an N×1 vector from exactly N values.
func NewColumnVector[N Dim, T numeric.Numeric](values ...T) *Matrix[N, D1, T] {
	v := alloc[N, D1, T](opNew)
	if len(values) != v.rows {
		fail(opNew, fmt.Errorf("%d values for a %dx1 vector: %w", len(values), v.rows, ErrDimensionMismatch))
	}
	copy(v.data, values)

	return v
}

// RowMax returns, for every row, its largest element as an R×1 column.
// NaN handling follows the builtin max.
func (m *Matrix[R, C, T]) RowMax() *Matrix[R, D1, T] {
	out := &Matrix[R, D1, T]{rows: m.rows, cols: 1, data: make([]T, m.rows)}
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		best := row[0]
		for _, v := range row[1:] {
			best = max(best, v)
		}
		out.data[i] = best
	}

	return out
}

// RowSum returns the per-row sums as an R×1 column.
func (m *Matrix[R, C, T]) RowSum() *Matrix[R, D1, T] {
	out := &Matrix[R, D1, T]{rows: m.rows, cols: 1, data: make([]T, m.rows)}
	for i := 0; i < m.rows; i++ {
		var acc T
		for _, v := range m.data[i*m.cols : (i+1)*m.cols] {
			acc += v
		}
		out.data[i] = acc
	}

	return out
}

// ColSum returns the per-column sums as a 1×C row.
func (m *Matrix[R, C, T]) ColSum() *Matrix[D1, C, T] {
	out := &Matrix[D1, C, T]{rows: 1, cols: m.cols, data: make([]T, m.cols)}
	for k, v := range m.data {
		out.data[k%m.cols] += v
	}

	return out
}

// Sum returns the sum of all cells.
func (m *Matrix[R, C, T]) Sum() T {
	var acc T
	for _, v := range m.data {
		acc += v
	}

	return acc
}
