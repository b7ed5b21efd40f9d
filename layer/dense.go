// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/katalvlaran/plexus/activation"
	"github.com/katalvlaran/plexus/matrix"
	"github.com/katalvlaran/plexus/numeric"
)

var _ Layer[matrix.D1, matrix.D6, matrix.D4, float64] = (*Dense[matrix.D1, matrix.D6, matrix.D4, float64])(nil)

// Dense is a fully connected layer of N neurons over I inputs, fed batches
// of B samples. Weight row k holds the I input weights of neuron k.
type Dense[B, N, I matrix.Dim, T numeric.Float] struct {
	weights *matrix.Matrix[N, I, T]
	bias    *matrix.Matrix[matrix.D1, N, T]
}

// NewDense draws weights from the configured Source (scaled by the weight
// scale) and fills the bias with the configured value.
// Implementation:
//   - Stage 1: resolve options (seeded uniform source by default).
//   - Stage 2: draw N·I weights row-major.
//   - Stage 3: fill the N-entry bias.
//
// Complexity: O(N·I) draws.
func NewDense[B, N, I matrix.Dim, T numeric.Float](opts ...Option[T]) *Dense[B, N, I, T] {
	o := gatherOptions(opts...)

	weights := matrix.NewFunc[N, I](func(_, _ int) T {
		return o.src.Draw() * o.weightScale
	})

	return &Dense[B, N, I, T]{
		weights: weights,
		bias:    matrix.NewFilled[matrix.D1, N](o.biasFill),
	}
}

// NewDenseFrom builds a layer from explicit parameters. Both are copied.
func NewDenseFrom[B, N, I matrix.Dim, T numeric.Float](w *matrix.Matrix[N, I, T], b *matrix.Matrix[matrix.D1, N, T]) *Dense[B, N, I, T] {
	return &Dense[B, N, I, T]{weights: w.Clone(), bias: b.Clone()}
}

// Weights returns a copy of the (N, I) weight matrix.
func (l *Dense[B, N, I, T]) Weights() *matrix.Matrix[N, I, T] { return l.weights.Clone() }

// Bias returns a copy of the bias row.
func (l *Dense[B, N, I, T]) Bias() *matrix.Matrix[matrix.D1, N, T] { return l.bias.Clone() }

// Forward computes X · Wᵀ + b.
// Complexity: O(B·I·N).
func (l *Dense[B, N, I, T]) Forward(in *matrix.Matrix[B, I, T]) *matrix.Matrix[B, N, T] {
	return matrix.Mul(in, l.weights.T()).AddRowVector(l.bias)
}

// Activated pairs the layer with f.
func (l *Dense[B, N, I, T]) Activated(f activation.Func[T]) *Block[B, N, I, T] {
	return &Block[B, N, I, T]{layer: l, act: f}
}
