// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures (custom dimensions, seeded
//     random matrices) and assertion helpers for the panicking surface.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/plexus/matrix"
)

// d0 is a deliberately invalid dimension.
type d0 struct{}

func (d0) N() int { return 0 }

// d20 is a caller-declared dimension, as users declare their own extents.
type d20 struct{}

func (d20) N() int { return 20 }

type (
	m22 = matrix.Matrix[matrix.D2, matrix.D2, int]
	f44 = matrix.Matrix[matrix.D4, matrix.D4, float64]
)

// requirePanicsWith runs f and asserts that it panics with an error matching target.
func requirePanicsWith(t *testing.T, target error, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic wrapping %v", target)
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v (%T) is not an error", r, r)
		require.ErrorIs(t, err, target)
	}()
	f()
}

// randInts returns an R×C matrix of ints in [-9, 9] from a seeded source.
func randInts[R, C matrix.Dim](rng *rand.Rand) *matrix.Matrix[R, C, int] {
	return matrix.NewFunc[R, C](func(_, _ int) int { return rng.Intn(19) - 9 })
}

// randFloats returns an R×C matrix of floats in [-1, 1).
func randFloats[R, C matrix.Dim](rng *rand.Rand) *matrix.Matrix[R, C, float64] {
	return matrix.NewFunc[R, C](func(_, _ int) float64 { return rng.Float64()*2 - 1 })
}

// grid22 builds the 2×2 int fixture [[a, b], [c, d]].
func grid22(a, b, c, d int) *m22 {
	return matrix.New[matrix.D2, matrix.D2]([][]int{{a, b}, {c, d}})
}
