// SPDX-License-Identifier: MIT

package dynamic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plexus/descriptor"
)

// Compile-time conformance.
var (
	_ Layer = Linear{}
	_ Layer = Step{}
	_ Layer = (*ReLU)(nil)
	_ Layer = (*Sigmoid)(nil)
	_ Layer = (*Softmax)(nil)
)

// NewActivation returns a fresh activation stage for t.
func NewActivation(t descriptor.ActivationType) (Layer, error) {
	switch t {
	case descriptor.ActivationStep:
		return Step{}, nil
	case descriptor.ActivationLinear:
		return Linear{}, nil
	case descriptor.ActivationReLU:
		return &ReLU{}, nil
	case descriptor.ActivationSigmoid:
		return &Sigmoid{}, nil
	case descriptor.ActivationSoftmax:
		return &Softmax{}, nil
	default:
		return nil, fmt.Errorf("activation %s: %w", t, ErrUnsupported)
	}
}

// mapped returns f applied to every cell of in.
func mapped(in *mat.Dense, f func(v float64) float64) *mat.Dense {
	r, c := in.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(_, _ int, v float64) float64 { return f(v) }, in)

	return out
}

// Linear passes values and gradients through unchanged.
type Linear struct{}

// Forward returns a copy of in.
func (Linear) Forward(in *mat.Dense) (*mat.Dense, error) {
	if _, _, err := checkBatch("linear forward", in); err != nil {
		return nil, err
	}

	return mat.DenseCopyOf(in), nil
}

// Backward returns a copy of grad.
func (Linear) Backward(grad *mat.Dense) (*mat.Dense, error) {
	if _, _, err := checkBatch("linear backward", grad); err != nil {
		return nil, err
	}

	return mat.DenseCopyOf(grad), nil
}

// Step outputs 1 for positive inputs and 0 otherwise. Its gradient is zero
// everywhere it is defined.
type Step struct{}

// Forward thresholds in at zero.
func (Step) Forward(in *mat.Dense) (*mat.Dense, error) {
	if _, _, err := checkBatch("step forward", in); err != nil {
		return nil, err
	}

	return mapped(in, func(v float64) float64 {
		if v > 0 {
			return 1
		}
		return 0
	}), nil
}

// Backward returns zeros shaped like grad.
func (Step) Backward(grad *mat.Dense) (*mat.Dense, error) {
	r, c, err := checkBatch("step backward", grad)
	if err != nil {
		return nil, err
	}

	return mat.NewDense(r, c, nil), nil
}

// ReLU is max(x, 0). It caches its input for Backward.
type ReLU struct {
	inputs *mat.Dense
}

// Forward clamps negatives to zero.
func (a *ReLU) Forward(in *mat.Dense) (*mat.Dense, error) {
	if _, _, err := checkBatch("relu forward", in); err != nil {
		return nil, err
	}
	a.inputs = mat.DenseCopyOf(in)

	return mapped(in, func(v float64) float64 { return math.Max(v, 0) }), nil
}

// Backward zeroes the gradient where the cached input was ≤ 0.
func (a *ReLU) Backward(grad *mat.Dense) (*mat.Dense, error) {
	if a.inputs == nil {
		return nil, fmt.Errorf("relu: %w", ErrNoForwardPass)
	}
	if err := checkSame("relu backward", grad, a.inputs); err != nil {
		return nil, err
	}

	r, c := grad.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, g float64) float64 {
		if a.inputs.At(i, j) <= 0 {
			return 0
		}
		return g
	}, grad)

	return out, nil
}

// Sigmoid is 1 / (1 + e^(−x)). It caches its output for Backward.
type Sigmoid struct {
	outputs *mat.Dense
}

// Forward squashes every cell into (0, 1).
func (a *Sigmoid) Forward(in *mat.Dense) (*mat.Dense, error) {
	if _, _, err := checkBatch("sigmoid forward", in); err != nil {
		return nil, err
	}
	out := mapped(in, func(v float64) float64 { return 1 / (1 + math.Exp(-v)) })
	a.outputs = mat.DenseCopyOf(out)

	return out, nil
}

// Backward multiplies grad by σ(x)·(1 − σ(x)).
func (a *Sigmoid) Backward(grad *mat.Dense) (*mat.Dense, error) {
	if a.outputs == nil {
		return nil, fmt.Errorf("sigmoid: %w", ErrNoForwardPass)
	}
	if err := checkSame("sigmoid backward", grad, a.outputs); err != nil {
		return nil, err
	}

	r, c := grad.Dims()
	out := mat.NewDense(r, c, nil)
	out.Apply(func(i, j int, g float64) float64 {
		s := a.outputs.At(i, j)
		return g * s * (1 - s)
	}, grad)

	return out, nil
}

// Softmax normalizes every row into a probability distribution. It caches
// its output for Backward.
type Softmax struct {
	outputs *mat.Dense
}

// Forward computes, per row, e^(x − max) / Σ e^(x − max).
func (a *Softmax) Forward(in *mat.Dense) (*mat.Dense, error) {
	r, _, err := checkBatch("softmax forward", in)
	if err != nil {
		return nil, err
	}
	out := mat.DenseCopyOf(in)
	for i := 0; i < r; i++ {
		softmaxRow(out.RawRowView(i))
	}
	a.outputs = mat.DenseCopyOf(out)

	return out, nil
}

// softmaxRow normalizes row in place.
func softmaxRow(row []float64) {
	floats.AddConst(-floats.Max(row), row)
	for k, v := range row {
		row[k] = math.Exp(v)
	}
	floats.Scale(1/floats.Sum(row), row)
}

// Backward applies, per sample, the Jacobian J = diag(s) − s·sᵀ of the
// cached output s: dIn = g · J, which expands to s ⊙ (g − (g·s)).
// Complexity: O(S·N).
func (a *Softmax) Backward(grad *mat.Dense) (*mat.Dense, error) {
	if a.outputs == nil {
		return nil, fmt.Errorf("softmax: %w", ErrNoForwardPass)
	}
	if err := checkSame("softmax backward", grad, a.outputs); err != nil {
		return nil, err
	}

	r, c := grad.Dims()
	out := mat.NewDense(r, c, nil)
	for i := 0; i < r; i++ {
		s, g, dst := a.outputs.RawRowView(i), grad.RawRowView(i), out.RawRowView(i)
		dot := floats.Dot(g, s)
		for j := range dst {
			dst[j] = s[j] * (g[j] - dot)
		}
	}

	return out, nil
}
