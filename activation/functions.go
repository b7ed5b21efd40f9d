// SPDX-License-Identifier: MIT

package activation

import (
	"github.com/katalvlaran/plexus/matrix"
	"github.com/katalvlaran/plexus/numeric"
)

// Compile-time conformance.
var (
	_ Func[float64] = Linear[float64]{}
	_ Func[float64] = ReLU[float64]{}
	_ Func[float64] = Sigmoid[float64]{}
	_ Func[float64] = Softmax[float64]{}
	_ Func[float32] = Step[float32]{}
)

// Linear is the identity activation.
type Linear[T numeric.Float] struct{}

func (Linear[T]) Name() string { return KindLinear.String() }

// Activate leaves g unchanged.
func (Linear[T]) Activate(matrix.Grid[T]) {}

// ReLU clamps negatives to zero. It is idempotent.
type ReLU[T numeric.Float] struct{}

func (ReLU[T]) Name() string { return KindReLU.String() }

// Activate sets every cell to max(x, 0).
func (ReLU[T]) Activate(g matrix.Grid[T]) {
	cellwise(g, func(x T) T { return max(x, 0) })
}

// Sigmoid squashes every cell into (0, 1).
type Sigmoid[T numeric.Float] struct{}

func (Sigmoid[T]) Name() string { return KindSigmoid.String() }

// Activate sets every cell to 1 / (1 + e^(−x)).
func (Sigmoid[T]) Activate(g matrix.Grid[T]) {
	cellwise(g, func(x T) T { return 1 / (1 + numeric.Exp(-x)) })
}

// Step outputs 1 for positive cells and 0 otherwise.
type Step[T numeric.Float] struct{}

func (Step[T]) Name() string { return KindStep.String() }

// Activate sets every cell to 1 if x > 0, else 0.
func (Step[T]) Activate(g matrix.Grid[T]) {
	cellwise(g, func(x T) T {
		if x > 0 {
			return 1
		}
		return 0
	})
}

// Softmax turns every row into a probability distribution.
type Softmax[T numeric.Float] struct{}

func (Softmax[T]) Name() string { return KindSoftmax.String() }

// Activate normalizes each row independently:
//   - Stage 1: find the row maximum m.
//   - Stage 2: replace x by e^(x−m) and accumulate the row sum s.
//   - Stage 3: divide every cell by s.
//
// Shifting by the maximum keeps every exponent ≤ 0, so the largest term is
// exactly 1 and the sum cannot overflow or vanish for finite input.
// Complexity: O(R·C).
func (Softmax[T]) Activate(g matrix.Grid[T]) {
	rows, cols := g.Rows(), g.Cols()
	for i := 0; i < rows; i++ {
		peak := g.At(i, 0)
		for j := 1; j < cols; j++ {
			peak = max(peak, g.At(i, j))
		}
		var sum T
		for j := 0; j < cols; j++ {
			e := numeric.Exp(g.At(i, j) - peak)
			g.Set(i, j, e)
			sum += e
		}
		for j := 0; j < cols; j++ {
			g.Set(i, j, g.At(i, j)/sum)
		}
	}
}
