// SPDX-License-Identifier: MIT

// Package layer defines the compile-time-shaped layer capability and its
// Dense implementation.
//
// Convention (batched): a forward pass maps a batch X of shape (B, I), one
// sample per row, to Y of shape (B, N):
//
//	Y = X · Wᵀ + b    W: (N, I), b: RowVector[N] broadcast over the B rows.
//
// Every extent is a type parameter, so feeding a (B, 5) batch into a layer
// expecting I = 4, or chaining a 6-output layer into a 5-input layer, is a
// compile error rather than a runtime one.
//
// What:
//
//   - Forwarder: anything with a forward pass (B, I) → (B, O).
//   - Layer: a Forwarder that also exposes its weights and bias.
//   - Dense: fully connected layer with seeded random weights.
//   - Block: a Layer followed by an activation.Func.
//   - Chain: statically checked composition of two Forwarders.
//   - Source: scalar random source used to draw initial weights.
//
// Options (see options.go) configure the weight source, seed, scale and
// initial bias. Explicit parameters go through NewDenseFrom.
//
// There is no backward pass here; see package dynamic for gradients.
package layer
