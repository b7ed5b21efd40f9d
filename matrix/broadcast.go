// SPDX-License-Identifier: MIT
// Package matrix: row/column-vector broadcasting.
//
// Purpose:
//   - Apply a single bias-like row (1×C) to every row, or a single column
//     (R×1) to every column, without materializing a full R×C operand.
//   - The vector's length is tied to the matching extent by its type, so a
//     bias of the wrong width does not compile.
//
// Design:
//   - Two private kernels (broadcastRow, broadcastCol) take the cell
//     operation; the eight exported methods are one-liners over them.
//   - Results are fresh matrices; the receiver is never mutated.
//
// Determinism:
//   - Fixed i→j loops. Time O(R·C), Space O(R·C).

package matrix

import "github.com/katalvlaran/plexus/numeric"

// broadcastRow computes out[i,j] = f(m[i,j], v[0,j]).
func broadcastRow[R, C Dim, T numeric.Numeric](m *Matrix[R, C, T], v *Matrix[D1, C, T], f func(x, y T) T) *Matrix[R, C, T] {
	out := &Matrix[R, C, T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols // row base offset
		for j := 0; j < m.cols; j++ {
			out.data[base+j] = f(m.data[base+j], v.data[j])
		}
	}

	return out
}

// broadcastCol computes out[i,j] = f(m[i,j], v[i,0]).
func broadcastCol[R, C Dim, T numeric.Numeric](m *Matrix[R, C, T], v *Matrix[R, D1, T], f func(x, y T) T) *Matrix[R, C, T] {
	out := &Matrix[R, C, T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for i := 0; i < m.rows; i++ {
		base := i * m.cols
		vi := v.data[i] // read once per row
		for j := 0; j < m.cols; j++ {
			out.data[base+j] = f(m.data[base+j], vi)
		}
	}

	return out
}

// AddRowVector adds v to every row: out[i,j] = m[i,j] + v[j].
// Typical use: adding a per-feature bias to a (Batch × Features) matrix.
func (m *Matrix[R, C, T]) AddRowVector(v *Matrix[D1, C, T]) *Matrix[R, C, T] {
	return broadcastRow(m, v, addOp[T])
}

// SubRowVector computes out[i,j] = m[i,j] - v[j].
func (m *Matrix[R, C, T]) SubRowVector(v *Matrix[D1, C, T]) *Matrix[R, C, T] {
	return broadcastRow(m, v, subOp[T])
}

// MulRowVector computes out[i,j] = m[i,j] * v[j].
func (m *Matrix[R, C, T]) MulRowVector(v *Matrix[D1, C, T]) *Matrix[R, C, T] {
	return broadcastRow(m, v, mulOp[T])
}

// DivRowVector computes out[i,j] = m[i,j] / v[j].
func (m *Matrix[R, C, T]) DivRowVector(v *Matrix[D1, C, T]) *Matrix[R, C, T] {
	return broadcastRow(m, v, divOp[T])
}

// AddColVector adds v to every column: out[i,j] = m[i,j] + v[i].
func (m *Matrix[R, C, T]) AddColVector(v *Matrix[R, D1, T]) *Matrix[R, C, T] {
	return broadcastCol(m, v, addOp[T])
}

// SubColVector computes out[i,j] = m[i,j] - v[i].
// Typical use: shifting each sample (row) by its own maximum.
func (m *Matrix[R, C, T]) SubColVector(v *Matrix[R, D1, T]) *Matrix[R, C, T] {
	return broadcastCol(m, v, subOp[T])
}

// MulColVector computes out[i,j] = m[i,j] * v[i].
func (m *Matrix[R, C, T]) MulColVector(v *Matrix[R, D1, T]) *Matrix[R, C, T] {
	return broadcastCol(m, v, mulOp[T])
}

// DivColVector computes out[i,j] = m[i,j] / v[i].
// Typical use: normalizing each sample (row) by its own sum.
func (m *Matrix[R, C, T]) DivColVector(v *Matrix[R, D1, T]) *Matrix[R, C, T] {
	return broadcastCol(m, v, divOp[T])
}
