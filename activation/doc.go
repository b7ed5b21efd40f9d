// SPDX-License-Identifier: MIT

// Package activation provides stateless, shape-preserving batch transforms
// applied after a layer's affine step.
//
// What:
//
//   - Func: the activation capability. Activate rewrites a shape-erased
//     matrix.Grid in place; Apply wraps it so callers keep the static shape:
//     Apply(f, m) has exactly the type of m.
//   - Linear: identity.
//   - ReLU: max(x, 0) per cell.
//   - Sigmoid: 1 / (1 + e^(−x)) per cell.
//   - Softmax: per row (sample), subtract the row maximum, exponentiate,
//     divide by the row sum. Each output row sums to 1 and large inputs do
//     not overflow.
//   - Step: 1 where x > 0, else 0.
//
// All variants are zero-size values with no state between calls, so one
// value may be shared freely.
package activation
