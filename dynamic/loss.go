// SPDX-License-Identifier: MIT

package dynamic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/plexus/descriptor"
)

// ClipEpsilon bounds predictions to [ClipEpsilon, 1 − ClipEpsilon] before
// taking logarithms or dividing, so a confident miss costs a large but
// finite loss.
const ClipEpsilon = 1e-7

// Loss scores predictions against expected outputs, both samples × classes.
type Loss interface {
	// Calculate returns the per-sample losses and their mean.
	Calculate(pred, want *mat.Dense) (losses []float64, mean float64, err error)
	// Derivative returns dL/dPred, normalized by the sample count.
	Derivative(pred, want *mat.Dense) (*mat.Dense, error)
}

// NewLoss returns the loss for t.
func NewLoss(t descriptor.LossType) (Loss, error) {
	switch t {
	case descriptor.LossCategoricalCrossEntropy:
		return CategoricalCrossEntropy{}, nil
	default:
		return nil, fmt.Errorf("loss %s: %w", t, ErrUnsupported)
	}
}

var _ Loss = CategoricalCrossEntropy{}

// CategoricalCrossEntropy is −log of the probability assigned to the
// expected class. want holds one-hot (or soft) target rows.
type CategoricalCrossEntropy struct{}

// Calculate returns, per sample i, −ln(clip(Σ_j pred[i,j]·want[i,j])) and
// the mean over samples.
func (CategoricalCrossEntropy) Calculate(pred, want *mat.Dense) ([]float64, float64, error) {
	if err := checkSame("categorical cross-entropy", pred, want); err != nil {
		return nil, 0, err
	}

	samples, _ := pred.Dims()
	losses := make([]float64, samples)
	for i := range losses {
		confidence := floats.Dot(pred.RawRowView(i), want.RawRowView(i))
		losses[i] = -math.Log(clip(confidence))
	}

	return losses, stat.Mean(losses, nil), nil
}

// Derivative returns −want / clip(pred) / samples.
func (CategoricalCrossEntropy) Derivative(pred, want *mat.Dense) (*mat.Dense, error) {
	if err := checkSame("categorical cross-entropy derivative", pred, want); err != nil {
		return nil, err
	}

	samples, labels := pred.Dims()
	n := float64(samples)
	out := mat.NewDense(samples, labels, nil)
	out.Apply(func(i, j int, y float64) float64 {
		return -y / clip(pred.At(i, j)) / n
	}, want)

	return out, nil
}

func clip(v float64) float64 {
	return math.Min(math.Max(v, ClipEpsilon), 1-ClipEpsilon)
}

// SoftmaxCrossEntropy fuses a Softmax output with categorical
// cross-entropy. Its Backward skips the Softmax Jacobian: the gradient with
// respect to the Softmax input collapses to (pred − want) / samples.
type SoftmaxCrossEntropy struct {
	softmax Softmax
	loss    CategoricalCrossEntropy
}

// Forward runs Softmax on in and scores the result against want.
func (h *SoftmaxCrossEntropy) Forward(in, want *mat.Dense) (losses []float64, mean float64, err error) {
	out, err := h.softmax.Forward(in)
	if err != nil {
		return nil, 0, err
	}

	return h.loss.Calculate(out, want)
}

// Output returns the Softmax output of the last Forward, or nil.
func (h *SoftmaxCrossEntropy) Output() *mat.Dense { return copyOrNil(h.softmax.outputs) }

// Backward returns (pred − want) / samples, the gradient with respect to
// the Softmax input.
func (h *SoftmaxCrossEntropy) Backward(pred, want *mat.Dense) (*mat.Dense, error) {
	return softmaxCrossEntropyGrad(pred, want)
}

func softmaxCrossEntropyGrad(pred, want *mat.Dense) (*mat.Dense, error) {
	if err := checkSame("softmax cross-entropy backward", pred, want); err != nil {
		return nil, err
	}

	samples, labels := pred.Dims()
	out := mat.NewDense(samples, labels, nil)
	out.Sub(pred, want)
	out.Scale(1/float64(samples), out)

	return out, nil
}
