// SPDX-License-Identifier: MIT

// Package dynamic is the runtime-shaped counterpart of package layer. Shapes
// live in values, not types, so networks can be assembled from a
// descriptor.Network read at run time.
//
// What:
//
//   - Dense: X · Wᵀ + b over *mat.Dense batches (one sample per row).
//     Backward stores dWeights and dBiases and returns dInputs.
//   - Activations: Linear, Step, ReLU, Sigmoid, Softmax, each with Forward
//     and Backward.
//   - CategoricalCrossEntropy and the fused SoftmaxCrossEntropy head.
//   - Network: hidden and output layers built from a descriptor, with
//     Forward, Loss and Backward.
//
// Shape mismatches surface as ErrDimensionMismatch; calling Backward on a
// layer that has not seen a Forward returns ErrNoForwardPass. Gradients are
// computed and stored, never applied: there is no optimizer.
//
// Complexity: Dense Forward and Backward are O(S·I·N) for S samples;
// Softmax Backward is O(S·N) per batch using the closed form of its Jacobian.
package dynamic
