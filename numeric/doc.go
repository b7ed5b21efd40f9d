// SPDX-License-Identifier: MIT

// Package numeric declares the arithmetic capability every matrix element
// type must satisfy, together with the few helpers that Go operators do not
// cover uniformly across that capability.
//
// What:
//
//   - Numeric: the union of Go's built-in signed, unsigned and floating-point
//     types (and any defined type whose underlying type is one of them).
//     Every member supports + - * / with their compound forms, ==, a zero
//     value that acts as the additive identity, and copy by assignment.
//   - Integer, Float: the two halves of Numeric, for kernels that need one.
//   - Rem / RemAssign: the remainder operation. Go defines % only on integers,
//     so floats go through math.Mod (float64) or math32.Mod (float32).
//   - Exp, IsFinite: the transcendental and classification helpers used by
//     activation functions.
//
// Numeric policy:
//
//   - No overflow checking is added. Integer arithmetic wraps, integer
//     division or remainder by zero panics with the Go runtime error, and
//     float division by zero yields ±Inf or NaN.
package numeric
