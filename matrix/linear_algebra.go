// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels (product, transpose, determinant).
//
// Purpose:
//   - Express the shape relationships in the signatures: Mul takes (R×C) and
//     (C×P) and returns (R×P); T returns (C×R); Det accepts only N×N.
//
// Determinism:
//   - Fixed loop orders (i→j→k for Mul, d→i→j for elimination).

package matrix

import "github.com/katalvlaran/plexus/numeric"

// Mul performs the matrix product a × b.
// MAIN DESCRIPTION:
//   - The inner dimension C is shared by the operand types, so an
//     incompatible product does not compile.
//
// Implementation:
//   - Stage 1: allocate the R×P result.
//   - Stage 2: for each (i, j) start from T's zero value and accumulate
//     a[i,k]·b[k,j] for k = 0..C-1 with +=.
//
// Behavior highlights:
//   - The zero value is the accumulator seed, so T only needs an additive
//     identity, never a multiplicative one.
//   - Integer overflow wraps; no checking is added.
//
// Complexity:
//   - Time O(R·C·P), Space O(R·P).
func Mul[R, C, P Dim, T numeric.Numeric](a *Matrix[R, C, T], b *Matrix[C, P, T]) *Matrix[R, P, T] {
	rows, inner, cols := a.rows, a.cols, b.cols
	out := &Matrix[R, P, T]{rows: rows, cols: cols, data: make([]T, rows*cols)}

	var i, j, k int // loop iterators (deterministic order)
	for i = 0; i < rows; i++ {
		rowA := i * inner
		for j = 0; j < cols; j++ {
			var acc T
			for k = 0; k < inner; k++ {
				acc += a.data[rowA+k] * b.data[k*cols+j]
			}
			out.data[i*cols+j] = acc
		}
	}

	return out
}

// T returns the transpose mᵀ with shape C×R; cell (j, i) of the result is
// cell (i, j) of m.
// Complexity: O(R·C).
func (m *Matrix[R, C, T]) T() *Matrix[C, R, T] {
	rows, cols := m.rows, m.cols
	out := &Matrix[C, R, T]{rows: cols, cols: rows, data: make([]T, len(m.data))}
	var i, j int
	for i = 0; i < rows; i++ {
		base := i * cols
		for j = 0; j < cols; j++ {
			out.data[j*rows+i] = m.data[base+j]
		}
	}

	return out
}

// Transpose is the function form of (*Matrix).T.
func Transpose[R, C Dim, T numeric.Numeric](m *Matrix[R, C, T]) *Matrix[C, R, T] { return m.T() }

// Det returns the determinant of a square matrix.
// MAIN DESCRIPTION:
//   - Gaussian forward elimination WITHOUT pivoting on a private copy, then
//     the product of the diagonal.
//
// Implementation:
//   - Stage 1: copy m's data; m is never mutated.
//   - Stage 2: for each diagonal index d and every row i > d, compute
//     scaler = a[i,d] / a[d,d] and subtract scaler·row(d) from row(i).
//   - Stage 3: multiply the diagonal entries, seeding the product with the
//     first entry (no multiplicative identity is required of T).
//
// Behavior highlights:
//   - A zero pivot is not guarded. Floats propagate ±Inf/NaN into the result;
//     integers panic with Go's integer divide-by-zero runtime error.
//   - For integer T the scaler uses truncating division, so the result is
//     exact only when every scaler divides evenly (e.g. triangular or
//     diagonal inputs, or [[1,2],[3,4]]).
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Det[N Dim, T numeric.Numeric](m *Matrix[N, N, T]) T {
	n := m.rows
	a := make([]T, len(m.data))
	copy(a, m.data)

	var d, i, j int
	for d = 0; d < n; d++ {
		pivot := a[d*n+d]
		for i = d + 1; i < n; i++ {
			scaler := a[i*n+d] / pivot
			for j = 0; j < n; j++ {
				a[i*n+j] -= scaler * a[d*n+j]
			}
		}
	}

	product := a[0]
	for d = 1; d < n; d++ {
		product *= a[d*n+d]
	}

	return product
}

// Trace returns the sum of the diagonal of a square matrix.
func Trace[N Dim, T numeric.Numeric](m *Matrix[N, N, T]) T {
	var sum T
	for d := 0; d < m.rows; d++ {
		sum += m.data[d*m.cols+d]
	}

	return sum
}
