// SPDX-License-Identifier: MIT

// Package plexus is a small neural-network toolkit whose matrices carry
// their shape in the type system.
//
// What is inside:
//
//	numeric/    element-type constraints and kind-aware scalar helpers
//	matrix/     Matrix[R, C, T]: construction, elementwise and broadcast
//	              arithmetic, Mul, transpose, Det, iteration, gonum bridge
//	activation/ Linear, ReLU, Sigmoid, Softmax, Step over any grid
//	layer/      statically shaped Dense layers, blocks and chains
//	descriptor/ YAML/JSON network topologies
//	dynamic/    runtime-shaped layers with backward passes, built on gonum
//	cmd/plexus  command-line demo, descriptor runner and determinant tool
//
// Shapes are zero-size marker types (matrix.D1 … matrix.D128, or any type
// with an N() int method), so
//
//	matrix.Mul(a, b) // a: Matrix[R, C, T], b: Matrix[C, P, T] → Matrix[R, P, T]
//
// does not compile when the inner extents differ.
//
// Quick example:
//
//	l := layer.NewDense[matrix.D1, matrix.D6, matrix.D4, float64]()
//	out := l.Forward(matrix.NewRowVector[matrix.D4](1.0, 2.0, 3.0, 4.0))
//	fmt.Print(out) // one row of 6 activations
package plexus
