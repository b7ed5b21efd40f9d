// SPDX-License-Identifier: MIT

// Package matrix is a small, statically shape-checked linear-algebra engine.
//
// What & Why:
//
//	Matrix[R, C, T] is a rectangular grid with R rows and C columns of
//	elements T. R and C are dimension marker types (see Dim), so the shape
//	is part of the type: adding a 2×3 to a 3×2 matrix, or multiplying
//	(R×C)·(K×P) with K ≠ C, is rejected by the compiler instead of failing
//	at run time. T is any numeric.Numeric type.
//
// Surface:
//
//   - Construction: New (literal grid), NewFilled, NewFunc (generator
//     evaluated in row-major order), Zeros, Identity, FromSeq, FromIndexed,
//     FromGonum.
//   - Access: At/Set (panic on out-of-range), Lookup/Store (return
//     ErrOutOfRange), Row/Col read-only views, Rows/Cols/Shape.
//   - Arithmetic: Add, Sub, Scale, MulElem, DivElem, RemElem, their InPlace
//     forms, Mul (matrix product), T/Transpose, Det (square only), Map.
//   - Broadcasting: {Add,Sub,Mul,Div}RowVector and {Add,Sub,Mul,Div}ColVector.
//   - Iteration: All and Enumerate return iter.Seq / iter.Seq2 views.
//   - Conversions: ToSlices, ToGonum.
//
// Ownership:
//
//	Matrices are handled through *Matrix and exclusively own their storage.
//	Every operation that is not suffixed InPlace allocates its result and
//	never aliases an operand; Clone makes an explicit copy.
//
// Errors:
//
//	Invalid shapes and out-of-range indices are programmer errors. The
//	panicking surface (New, At, Set, Row, ...) panics with an error wrapping
//	ErrInvalidDimensions, ErrDimensionMismatch or ErrOutOfRange, so a
//	recovered value still matches errors.Is. Lookup, Store and FromGonum
//	return the same sentinels instead.
//
// Complexity:
//
//	At/Set O(1); elementwise and broadcast operations O(R·C);
//	Mul O(R·C·P); Det O(N³).
package matrix
