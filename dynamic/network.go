// SPDX-License-Identifier: MIT

package dynamic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/plexus/descriptor"
	"github.com/katalvlaran/plexus/layer"
)

// Network is a stack of Dense layers, each followed by its activation, with
// a loss on the last one.
type Network struct {
	desc  descriptor.Network
	dense []*Dense
	acts  []Layer
	loss  Loss
	fused bool // Softmax output with cross-entropy: use the collapsed gradient
}

// FromDescriptor validates d and builds its layers, drawing every weight
// from src in layer order. A nil src uses
// layer.NewUniformSource(layer.DefaultSeed).
// Implementation:
//   - Stage 1: validate d.
//   - Stage 2: for each consecutive width pair, a Dense plus its activation.
//   - Stage 3: resolve the loss and whether the output head can be fused.
func FromDescriptor(d descriptor.Network, src layer.Source[float64]) (*Network, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		src = layer.NewUniformSource[float64](layer.DefaultSeed)
	}

	kinds := make([]descriptor.ActivationType, 0, len(d.Hidden)+1)
	for i, l := range d.Hidden {
		if l.Type != descriptor.LayerDense {
			return nil, fmt.Errorf("hidden layer %d type %s: %w", i, l.Type, ErrUnsupported)
		}
		kinds = append(kinds, l.Activation)
	}
	kinds = append(kinds, d.Output.Activation)

	widths := d.Widths()
	n := &Network{desc: d}
	for k, kind := range kinds {
		dense, err := NewDense(widths[k], widths[k+1], src)
		if err != nil {
			return nil, err
		}
		act, err := NewActivation(kind)
		if err != nil {
			return nil, err
		}
		n.dense = append(n.dense, dense)
		n.acts = append(n.acts, act)
	}

	loss, err := NewLoss(d.Output.Loss)
	if err != nil {
		return nil, err
	}
	n.loss = loss
	n.fused = d.Output.Activation == descriptor.ActivationSoftmax &&
		d.Output.Loss == descriptor.LossCategoricalCrossEntropy

	return n, nil
}

// Descriptor returns the topology n was built from.
func (n *Network) Descriptor() descriptor.Network { return n.desc }

// Layers returns the Dense layers from input to output.
func (n *Network) Layers() []*Dense { return append([]*Dense(nil), n.dense...) }

// ParamCount returns the number of weights and biases.
func (n *Network) ParamCount() int {
	total := 0
	for _, d := range n.dense {
		r, c := d.Shape()
		total += r*c + r
	}

	return total
}

// Forward runs in (samples × inputs) through every layer and activation.
func (n *Network) Forward(in *mat.Dense) (*mat.Dense, error) {
	out := in
	for k := range n.dense {
		var err error
		if out, err = n.dense[k].Forward(out); err != nil {
			return nil, fmt.Errorf("layer %d: %w", k, err)
		}
		if out, err = n.acts[k].Forward(out); err != nil {
			return nil, fmt.Errorf("layer %d activation: %w", k, err)
		}
	}

	return out, nil
}

// Loss scores pred against want with the output layer's loss.
func (n *Network) Loss(pred, want *mat.Dense) (losses []float64, mean float64, err error) {
	return n.loss.Calculate(pred, want)
}

// Backward propagates the loss gradient from pred (the last Forward output)
// back to the input, leaving dWeights and dBiases on every Dense. It returns
// the gradient with respect to the network input. Weights are not updated.
func (n *Network) Backward(pred, want *mat.Dense) (*mat.Dense, error) {
	last := len(n.dense) - 1

	var (
		grad *mat.Dense
		err  error
	)
	if n.fused {
		grad, err = softmaxCrossEntropyGrad(pred, want)
	} else {
		grad, err = n.loss.Derivative(pred, want)
		if err == nil {
			grad, err = n.acts[last].Backward(grad)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("output layer: %w", err)
	}
	if grad, err = n.dense[last].Backward(grad); err != nil {
		return nil, fmt.Errorf("layer %d: %w", last, err)
	}

	for k := last - 1; k >= 0; k-- {
		if grad, err = n.acts[k].Backward(grad); err != nil {
			return nil, fmt.Errorf("layer %d activation: %w", k, err)
		}
		if grad, err = n.dense[k].Backward(grad); err != nil {
			return nil, fmt.Errorf("layer %d: %w", k, err)
		}
	}

	return grad, nil
}
