// SPDX-License-Identifier: MIT
// Package matrix: row-major traversal and collection.
//
// Each call to All or Enumerate returns a fresh, finite traversal that
// starts at (0,0); ranging over it twice visits the same cells twice.

package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/plexus/numeric"
)

// Index is a (row, column) coordinate.
type Index struct {
	Row, Col int
}

// All yields every element in row-major order.
func (m *Matrix[R, C, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range m.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate yields ((row, col), value) pairs in row-major order.
func (m *Matrix[R, C, T]) Enumerate() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		for k, v := range m.data {
			if !yield(Index{Row: k / m.cols, Col: k % m.cols}, v) {
				return
			}
		}
	}
}

// All yields the view's elements in order.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := 0; k < v.n; k++ {
			if !yield(v.data[v.offset+k*v.stride]) {
				return
			}
		}
	}
}

// FromSeq collects a plain sequence into an R×C matrix, filling cells in
// row-major order. Pulling stops once R·C values have been taken; a shorter
// sequence leaves the remaining cells at T's zero value.
func FromSeq[R, C Dim, T numeric.Numeric](seq iter.Seq[T]) *Matrix[R, C, T] {
	m := alloc[R, C, T](opFromSeq)
	k := 0
	for v := range seq {
		m.data[k] = v
		k++
		if k == len(m.data) {
			break
		}
	}

	return m
}

// FromIndexed collects (index, value) pairs into an R×C matrix. Cells that
// are never named keep T's zero value; a repeated index keeps the last value.
// Panics with ErrOutOfRange when an index falls outside R×C.
func FromIndexed[R, C Dim, T numeric.Numeric](seq iter.Seq2[Index, T]) *Matrix[R, C, T] {
	m := alloc[R, C, T](opFromIndexed)
	for idx, v := range seq {
		if err := validateIndex(m.rows, m.cols, idx.Row, idx.Col); err != nil {
			fail(opFromIndexed, err)
		}
		m.data[idx.Row*m.cols+idx.Col] = v
	}

	return m
}

// String renders the index as "(row,col)".
func (ix Index) String() string { return fmt.Sprintf("(%d,%d)", ix.Row, ix.Col) }
