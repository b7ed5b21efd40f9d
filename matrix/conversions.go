// SPDX-License-Identifier: MIT
// Package matrix: conversions to and from runtime-shaped representations.
//
// Purpose:
//   - ToSlices hands a plain two-dimensional copy back to callers.
//   - ToGonum / FromGonum bridge to gonum's *mat.Dense, which the dynamic
//     (runtime-shaped) network and numeric cross-checks are built on.
//     FromGonum is the one place where a runtime shape meets a static one,
//     so it returns ErrDimensionMismatch instead of panicking.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plexus/numeric"
)

// ToSlices returns a fresh [][]T copy of m, one inner slice per row.
// Complexity: O(R·C).
func (m *Matrix[R, C, T]) ToSlices() [][]T {
	out := make([][]T, m.rows)
	for i := range out {
		out[i] = make([]T, m.cols)
		copy(out[i], m.data[i*m.cols:(i+1)*m.cols])
	}

	return out
}

// ToGonum converts m into a freshly allocated gonum *mat.Dense. Elements are
// converted to float64, which is exact for every T except 64-bit integers
// beyond 2^53.
// Complexity: O(R·C).
func ToGonum[R, C Dim, T numeric.Numeric](m *Matrix[R, C, T]) *mat.Dense {
	buf := make([]float64, len(m.data))
	for k, v := range m.data {
		buf[k] = float64(v)
	}

	return mat.NewDense(m.rows, m.cols, buf)
}

// FromGonum copies a gonum matrix into an R×C matrix of T.
// Implementation:
//   - Stage 1: reject nil input (ErrNilMatrix).
//   - Stage 2: compare src.Dims() with (R, C) (ErrDimensionMismatch).
//   - Stage 3: convert every cell with T(src.At(i, j)) in row-major order.
//
// Float-to-integer conversion truncates toward zero as Go conversions do.
// Complexity: O(R·C).
func FromGonum[R, C Dim, T numeric.Numeric](src mat.Matrix) (*Matrix[R, C, T], error) {
	if src == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	m := alloc[R, C, T](opFromGonum)
	r, c := src.Dims()
	if r != m.rows || c != m.cols {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("got %dx%d, want %dx%d: %w", r, c, m.rows, m.cols, ErrDimensionMismatch))
	}
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = T(src.At(i, j))
		}
	}

	return m, nil
}
