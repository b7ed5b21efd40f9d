// SPDX-License-Identifier: MIT

package dynamic

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plexus/layer"
)

// Layer is a runtime-shaped stage with a forward and a backward pass.
// Backward takes the gradient of the loss with respect to the stage's
// output and returns the gradient with respect to its input.
type Layer interface {
	Forward(in *mat.Dense) (*mat.Dense, error)
	Backward(grad *mat.Dense) (*mat.Dense, error)
}

var _ Layer = (*Dense)(nil)

// Dense is a fully connected layer: weights are neurons × inputs, biases
// are 1 × neurons.
type Dense struct {
	weights *mat.Dense
	biases  *mat.Dense

	inputs   *mat.Dense // cached by Forward
	dWeights *mat.Dense
	dBiases  *mat.Dense
}

// NewDense draws neurons·inputs weights row-major from src; biases start at
// zero. A nil src uses layer.NewUniformSource(layer.DefaultSeed).
func NewDense(inputs, neurons int, src layer.Source[float64]) (*Dense, error) {
	if inputs <= 0 || neurons <= 0 {
		return nil, fmt.Errorf("dense %dx%d: %w", neurons, inputs, ErrInvalidShape)
	}
	if src == nil {
		src = layer.NewUniformSource[float64](layer.DefaultSeed)
	}
	data := make([]float64, neurons*inputs)
	for k := range data {
		data[k] = src.Draw()
	}

	return &Dense{
		weights: mat.NewDense(neurons, inputs, data),
		biases:  mat.NewDense(1, neurons, nil),
	}, nil
}

// NewDenseFrom copies w (neurons × inputs) and b (1 × neurons).
func NewDenseFrom(w, b *mat.Dense) (*Dense, error) {
	n, _, err := checkBatch("dense", w)
	if err != nil {
		return nil, err
	}
	br, bc, err := checkBatch("dense bias", b)
	if err != nil {
		return nil, err
	}
	if br != 1 || bc != n {
		return nil, mismatch("dense bias", 1, n, br, bc)
	}
	return &Dense{weights: mat.DenseCopyOf(w), biases: mat.DenseCopyOf(b)}, nil
}

// Shape returns (neurons, inputs).
func (d *Dense) Shape() (neurons, inputs int) { return d.weights.Dims() }

// Weights returns a copy of the weight matrix.
func (d *Dense) Weights() *mat.Dense { return mat.DenseCopyOf(d.weights) }

// Biases returns a copy of the 1 × neurons bias row.
func (d *Dense) Biases() *mat.Dense { return mat.DenseCopyOf(d.biases) }

// DWeights returns the weight gradient of the last Backward, or nil.
func (d *Dense) DWeights() *mat.Dense { return copyOrNil(d.dWeights) }

// DBiases returns the bias gradient of the last Backward, or nil.
func (d *Dense) DBiases() *mat.Dense { return copyOrNil(d.dBiases) }

// Forward computes in · Wᵀ + b and caches in for Backward.
func (d *Dense) Forward(in *mat.Dense) (*mat.Dense, error) {
	samples, cols, err := checkBatch("dense forward", in)
	if err != nil {
		return nil, err
	}
	neurons, inputs := d.weights.Dims()
	if cols != inputs {
		return nil, mismatch("dense forward", samples, cols, neurons, inputs)
	}

	out := mat.NewDense(samples, neurons, nil)
	out.Mul(in, d.weights.T())
	bias := d.biases.RawRowView(0)
	for r := 0; r < samples; r++ {
		floats.Add(out.RawRowView(r), bias)
	}
	d.inputs = mat.DenseCopyOf(in)

	return out, nil
}

// Backward takes dL/dOut (samples × neurons), stores
//   - dWeights = gradᵀ · inputs,
//   - dBiases  = column sums of grad,
//
// and returns dInputs = grad · W.
func (d *Dense) Backward(grad *mat.Dense) (*mat.Dense, error) {
	if d.inputs == nil {
		return nil, fmt.Errorf("dense: %w", ErrNoForwardPass)
	}
	gr, gc, err := checkBatch("dense backward", grad)
	if err != nil {
		return nil, err
	}
	samples, inputs := d.inputs.Dims()
	neurons, _ := d.weights.Dims()
	if gr != samples || gc != neurons {
		return nil, mismatch("dense backward", gr, gc, samples, neurons)
	}

	dw := mat.NewDense(neurons, inputs, nil)
	dw.Mul(grad.T(), d.inputs)

	db := mat.NewDense(1, neurons, nil)
	sums := db.RawRowView(0)
	for r := 0; r < samples; r++ {
		floats.Add(sums, grad.RawRowView(r))
	}

	dIn := mat.NewDense(samples, inputs, nil)
	dIn.Mul(grad, d.weights)

	d.dWeights, d.dBiases = dw, db

	return dIn, nil
}

func copyOrNil(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}

	return mat.DenseCopyOf(m)
}
