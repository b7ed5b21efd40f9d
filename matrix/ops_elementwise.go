// SPDX-License-Identifier: MIT
// Package matrix: element-wise arithmetic.
//
// Purpose:
//   - One private kernel (zipWith) drives every same-shape binary operation,
//     so Add/Sub/MulElem/DivElem/RemElem share a single deterministic loop.
//   - Shapes are identical by construction: both operands have type
//     *Matrix[R, C, T], so no runtime dimension check is needed.
//
// Determinism & Performance:
//   - Flat loop 0..R·C-1 over the row-major buffers.
//   - Non-InPlace forms allocate exactly one result; operands stay untouched.

package matrix

import "github.com/katalvlaran/plexus/numeric"

// zipWith returns out[k] = f(a[k], b[k]) for every cell.
// Complexity: O(R·C) time and space.
func zipWith[R, C Dim, T numeric.Numeric](a, b *Matrix[R, C, T], f func(x, y T) T) *Matrix[R, C, T] {
	out := &Matrix[R, C, T]{rows: a.rows, cols: a.cols, data: make([]T, len(a.data))}
	for k := range out.data {
		out.data[k] = f(a.data[k], b.data[k])
	}

	return out
}

func addOp[T numeric.Numeric](x, y T) T { return x + y }
func subOp[T numeric.Numeric](x, y T) T { return x - y }
func mulOp[T numeric.Numeric](x, y T) T { return x * y }
func divOp[T numeric.Numeric](x, y T) T { return x / y }

// Add returns the element-wise sum a + b.
// Complexity: O(R·C).
func Add[R, C Dim, T numeric.Numeric](a, b *Matrix[R, C, T]) *Matrix[R, C, T] {
	return zipWith(a, b, addOp[T])
}

// Sub returns the element-wise difference a - b.
// Complexity: O(R·C).
func Sub[R, C Dim, T numeric.Numeric](a, b *Matrix[R, C, T]) *Matrix[R, C, T] {
	return zipWith(a, b, subOp[T])
}

// MulElem returns the Hadamard product a ⊙ b.
func MulElem[R, C Dim, T numeric.Numeric](a, b *Matrix[R, C, T]) *Matrix[R, C, T] {
	return zipWith(a, b, mulOp[T])
}

// DivElem returns the element-wise quotient a / b under T's native division
// (integer division truncates and panics on zero; floats give ±Inf/NaN).
func DivElem[R, C Dim, T numeric.Numeric](a, b *Matrix[R, C, T]) *Matrix[R, C, T] {
	return zipWith(a, b, divOp[T])
}

// RemElem returns the element-wise remainder a % b (see numeric.Rem).
func RemElem[R, C Dim, T numeric.Numeric](a, b *Matrix[R, C, T]) *Matrix[R, C, T] {
	return zipWith(a, b, numeric.Rem[T])
}

// Scale returns s·m.
// Complexity: O(R·C).
func Scale[R, C Dim, T numeric.Numeric](m *Matrix[R, C, T], s T) *Matrix[R, C, T] {
	out := m.Clone()
	out.ScaleInPlace(s)

	return out
}

// AddInPlace performs m += b.
func (m *Matrix[R, C, T]) AddInPlace(b *Matrix[R, C, T]) {
	for k := range m.data {
		m.data[k] += b.data[k]
	}
}

// SubInPlace performs m -= b.
func (m *Matrix[R, C, T]) SubInPlace(b *Matrix[R, C, T]) {
	for k := range m.data {
		m.data[k] -= b.data[k]
	}
}

// ScaleInPlace performs m *= s cell by cell.
func (m *Matrix[R, C, T]) ScaleInPlace(s T) {
	for k := range m.data {
		m.data[k] *= s
	}
}

// Map returns a new matrix with f applied to every cell in row-major order.
func (m *Matrix[R, C, T]) Map(f func(v T) T) *Matrix[R, C, T] {
	out := &Matrix[R, C, T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(v)
	}

	return out
}

// MapIndexed is Map with the cell coordinates passed to f.
func (m *Matrix[R, C, T]) MapIndexed(f func(i, j int, v T) T) *Matrix[R, C, T] {
	out := &Matrix[R, C, T]{rows: m.rows, cols: m.cols, data: make([]T, len(m.data))}
	for k, v := range m.data {
		out.data[k] = f(k/m.cols, k%m.cols, v)
	}

	return out
}

// Equal reports whether m and o hold equal elements under T's ==.
// The shapes are identical by type. NaN cells make matrices unequal.
func (m *Matrix[R, C, T]) Equal(o *Matrix[R, C, T]) bool {
	for k, v := range m.data {
		if v != o.data[k] {
			return false
		}
	}

	return true
}

// isNilReader catches typed nils, whose interface value is non-nil.
func isNilReader[T numeric.Numeric](r Reader[T]) bool {
	if r == nil {
		return true
	}
	n, ok := r.(interface{ isNil() bool })

	return ok && n.isNil()
}

// Equal is the function form of (*Matrix).Equal.
func Equal[R, C Dim, T numeric.Numeric](a, b *Matrix[R, C, T]) bool { return a.Equal(b) }

// EqualAny compares matrices whose static shapes may differ. Shapes are
// compared first, so a 1×4, a 4×1 and a 2×2 holding the same row-major data
// are never equal. A nil interface and a typed nil *Matrix both count as
// nil.
// Complexity: O(R·C).
func EqualAny[T numeric.Numeric](a, b Reader[T]) bool {
	an, bn := isNilReader(a), isNilReader(b)
	if an || bn {
		return an && bn
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			if a.At(i, j) != b.At(i, j) {
				return false
			}
		}
	}

	return true
}

// EqualApprox reports whether |a[i,j] - b[i,j]| ≤ tol for every cell.
// Cells that are == (including matching infinities) always agree; NaN never does.
func EqualApprox[R, C Dim, T numeric.Float](a, b *Matrix[R, C, T], tol T) bool {
	for k, v := range a.data {
		w := b.data[k]
		if v == w {
			continue // covers equal infinities
		}
		// NaN differences fail the comparison.
		if !(numeric.Abs(v-w) <= tol) {
			return false
		}
	}

	return true
}
