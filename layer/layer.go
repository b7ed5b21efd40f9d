// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/katalvlaran/plexus/matrix"
	"github.com/katalvlaran/plexus/numeric"
)

// Forwarder maps a batch of B samples with I features to B samples with O
// features.
type Forwarder[B, I, O matrix.Dim, T numeric.Float] interface {
	Forward(in *matrix.Matrix[B, I, T]) *matrix.Matrix[B, O, T]
}

// Layer is a Forwarder with N neurons over I inputs that exposes its
// parameters. Weights and Bias return copies.
type Layer[B, N, I matrix.Dim, T numeric.Float] interface {
	Weights() *matrix.Matrix[N, I, T]
	Bias() *matrix.Matrix[matrix.D1, N, T]
	Forwarder[B, I, N, T]
}

// ParamCount returns the number of trainable scalars in l: N·I + N.
func ParamCount[B, N, I matrix.Dim, T numeric.Float](_ Layer[B, N, I, T]) int {
	n, i := matrix.Extent[N](), matrix.Extent[I]()

	return n*i + n
}
