// SPDX-License-Identifier: MIT

// Package matrix - row-major storage, constructors and accessors.
//
// Purpose:
//   - Hold R×C elements in a flat row-major buffer (offset = i*cols + j).
//   - Provide the asserting surface (At/Set/Row/Col) and the error-returning
//     surface (Lookup/Store) over the same bounds check.
//
// Complexity quicksheet:
//   - constructors O(R·C); At/Set O(1); Clone O(R·C); Row/Col views O(1).

package matrix

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/plexus/numeric"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Reader is the shape-erased, read-only surface of a matrix.
// It lets code that does not know the static shape (equality across shapes,
// activation kernels, printers) inspect any *Matrix.
type Reader[T numeric.Numeric] interface {
	Rows() int
	Cols() int
	At(i, j int) T
}

// Grid is a shape-erased, mutable matrix surface.
type Grid[T numeric.Numeric] interface {
	Reader[T]
	Set(i, j int, v T)
}

// Matrix is an R×C row-major matrix of T.
//   - rows, cols cache Extent[R]() and Extent[C]().
//   - data has length rows*cols.
//
// The zero value is not usable; build matrices with the constructors.
type Matrix[R, C Dim, T numeric.Numeric] struct {
	rows, cols int // cached extents (>= 1)
	data       []T // row-major storage, len == rows*cols
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Grid[float64]  = (*Matrix[D2, D3, float64])(nil)
	_ fmt.Stringer   = (*Matrix[D2, D3, float64])(nil)
	_ Reader[uint16] = (*Matrix[D1, D1, uint16])(nil)
)

// alloc returns a zero-filled R×C matrix, panicking under tag on invalid extents.
func alloc[R, C Dim, T numeric.Numeric](tag string) *Matrix[R, C, T] {
	rows, cols := shapeOf[R, C](tag)

	return &Matrix[R, C, T]{rows: rows, cols: cols, data: make([]T, rows*cols)}
}

// New creates an R×C matrix from a fully populated grid.
// MAIN DESCRIPTION:
//   - Literal constructor. The grid is copied; later edits to grid do not
//     affect the matrix.
//
// Panics:
//   - ErrInvalidDimensions when R or C reports a non-positive extent.
//   - ErrDimensionMismatch when grid is not exactly R×C (Go slices cannot
//     carry their length in the type, so this is the one runtime shape check
//     of the literal constructor).
//
// Complexity:
//   - Time O(R·C), Space O(R·C).
//
// Example:
//
//	m := matrix.New[matrix.D2, matrix.D2]([][]int{{1, 2}, {3, 4}})
func New[R, C Dim, T numeric.Numeric](grid [][]T) *Matrix[R, C, T] {
	m := alloc[R, C, T](opNew)
	if err := validateGrid(grid, m.rows, m.cols); err != nil {
		fail(opNew, err)
	}
	for i, row := range grid {
		copy(m.data[i*m.cols:(i+1)*m.cols], row)
	}

	return m
}

// Zeros returns an R×C matrix filled with T's zero value.
func Zeros[R, C Dim, T numeric.Numeric]() *Matrix[R, C, T] {
	return alloc[R, C, T](opNew)
}

// NewFilled returns an R×C matrix with every cell set to v.
// Complexity: O(R·C).
func NewFilled[R, C Dim, T numeric.Numeric](v T) *Matrix[R, C, T] {
	m := alloc[R, C, T](opNew)
	for idx := range m.data {
		m.data[idx] = v
	}

	return m
}

// NewFunc returns an R×C matrix whose cell (i, j) is f(i, j).
//
// f is called exactly once per cell, in row-major order: (0,0), (0,1), …,
// (0,C-1), (1,0), … . The order is part of the contract: f may draw from a
// random source, and a deterministic source then yields a deterministic
// matrix. No cell is evaluated concurrently.
//
// Complexity: O(R·C) calls to f.
func NewFunc[R, C Dim, T numeric.Numeric](f func(i, j int) T) *Matrix[R, C, T] {
	m := alloc[R, C, T](opNewFunc)
	var i, j int
	for i = 0; i < m.rows; i++ {
		base := i * m.cols
		for j = 0; j < m.cols; j++ {
			m.data[base+j] = f(i, j)
		}
	}

	return m
}

// Identity returns the N×N matrix with ones on the diagonal.
func Identity[N Dim, T numeric.Numeric]() *Matrix[N, N, T] {
	m := alloc[N, N, T](opNew)
	for i := 0; i < m.rows; i++ {
		m.data[i*m.cols+i] = 1
	}

	return m
}

// Rows returns R's extent. Complexity: O(1).
func (m *Matrix[R, C, T]) Rows() int { return m.rows }

// Cols returns C's extent. Complexity: O(1).
func (m *Matrix[R, C, T]) Cols() int { return m.cols }

// Shape packs Rows() and Cols() into a single call.
func (m *Matrix[R, C, T]) Shape() (rows, cols int) { return m.rows, m.cols }

// Len returns the number of cells, R·C.
func (m *Matrix[R, C, T]) Len() int { return len(m.data) }

// IsRowVector reports whether the matrix has a single row. It is a
// descriptive query; use RowVector to require the shape statically.
func (m *Matrix[R, C, T]) IsRowVector() bool { return m.rows == 1 }

// IsColVector reports whether the matrix has a single column.
func (m *Matrix[R, C, T]) IsColVector() bool { return m.cols == 1 }

// IsSquare reports whether R and C have the same extent.
func (m *Matrix[R, C, T]) IsSquare() bool { return m.rows == m.cols }

// At returns the element at (i, j).
// Panics with ErrOutOfRange when i ∉ [0,R) or j ∉ [0,C).
// Complexity: O(1).
func (m *Matrix[R, C, T]) At(i, j int) T {
	if err := validateIndex(m.rows, m.cols, i, j); err != nil {
		fail(opAt, err)
	}

	return m.data[i*m.cols+j]
}

// Set assigns v at (i, j).
// Panics with ErrOutOfRange when indices are invalid.
// Complexity: O(1).
func (m *Matrix[R, C, T]) Set(i, j int, v T) {
	if err := validateIndex(m.rows, m.cols, i, j); err != nil {
		fail(opSet, err)
	}
	m.data[i*m.cols+j] = v
}

// Lookup is the error-returning form of At.
// Errors: ErrNilMatrix for a nil receiver, ErrOutOfRange for bad indices.
func (m *Matrix[R, C, T]) Lookup(i, j int) (T, error) {
	var zero T
	if m == nil {
		return zero, matrixErrorf(opLookup, ErrNilMatrix)
	}
	if err := validateIndex(m.rows, m.cols, i, j); err != nil {
		return zero, matrixErrorf(opLookup, err)
	}

	return m.data[i*m.cols+j], nil
}

// Store is the error-returning form of Set.
func (m *Matrix[R, C, T]) Store(i, j int, v T) error {
	if m == nil {
		return matrixErrorf(opStore, ErrNilMatrix)
	}
	if err := validateIndex(m.rows, m.cols, i, j); err != nil {
		return matrixErrorf(opStore, err)
	}
	m.data[i*m.cols+j] = v

	return nil
}

// Row returns a read-only view of row i (length C).
// The view reads through to the matrix; it observes later writes.
// Panics with ErrOutOfRange when i ∉ [0,R).
func (m *Matrix[R, C, T]) Row(i int) View[T] {
	if err := validateIndex(m.rows, m.cols, i, 0); err != nil {
		fail(opRow, err)
	}

	return View[T]{data: m.data, offset: i * m.cols, stride: 1, n: m.cols}
}

// Col returns a read-only view of column j (length R).
// Panics with ErrOutOfRange when j ∉ [0,C).
func (m *Matrix[R, C, T]) Col(j int) View[T] {
	if err := validateIndex(m.rows, m.cols, 0, j); err != nil {
		fail(opCol, err)
	}

	return View[T]{data: m.data, offset: j, stride: m.cols, n: m.rows}
}

func (m *Matrix[R, C, T]) isNil() bool { return m == nil }

// Clone returns a deep copy; the result shares no storage with m.
// Complexity: O(R·C).
func (m *Matrix[R, C, T]) Clone() *Matrix[R, C, T] {
	out := &Matrix[R, C, T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	copy(out.data, m.data)

	return out
}

// String renders one bracketed line per row.
// Complexity: O(R·C).
func (m *Matrix[R, C, T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%v", m.data[i*m.cols+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// View is a read-only, fixed-length window over one row or column.
type View[T numeric.Numeric] struct {
	data   []T
	offset int // index of element 0 in data
	stride int // distance between consecutive elements
	n      int // number of elements
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int { return v.n }

// At returns element k. Panics with ErrOutOfRange when k ∉ [0,Len()).
func (v View[T]) At(k int) T {
	if k < 0 || k >= v.n {
		fail(opView, fmt.Errorf("%d outside [0,%d): %w", k, v.n, ErrOutOfRange))
	}

	return v.data[v.offset+k*v.stride]
}

// Slice copies the view into a fresh slice.
func (v View[T]) Slice() []T {
	out := make([]T, v.n)
	for k := range out {
		out[k] = v.data[v.offset+k*v.stride]
	}

	return out
}
