// SPDX-License-Identifier: MIT

package descriptor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/plexus/activation"
)

// Sentinel errors.
var (
	// ErrInvalidDescriptor reports a structurally invalid Network.
	ErrInvalidDescriptor = errors.New("descriptor: invalid descriptor")

	// ErrUnknownEnum reports an unrecognized enum name during decoding.
	ErrUnknownEnum = errors.New("descriptor: unknown enum value")

	// ErrUnsupportedFormat reports a file extension LoadFile cannot decode.
	ErrUnsupportedFormat = errors.New("descriptor: unsupported file format")
)

// Network describes a feed-forward topology.
type Network struct {
	Inputs int         `yaml:"inputs" json:"inputs"`
	Hidden []Layer     `yaml:"hidden_layers" json:"hidden_layers"`
	Output OutputLayer `yaml:"output_layer" json:"output_layer"`
}

// Layer describes one hidden layer.
type Layer struct {
	Type       LayerType      `yaml:"type,omitempty" json:"type,omitempty"`
	Neurons    int            `yaml:"neurons" json:"neurons"`
	Activation ActivationType `yaml:"activation" json:"activation"`
}

// OutputLayer describes the final layer and the loss evaluated on it.
type OutputLayer struct {
	Neurons    int            `yaml:"neurons" json:"neurons"`
	Loss       LossType       `yaml:"loss" json:"loss"`
	Activation ActivationType `yaml:"activation" json:"activation"`
}

// Validate checks extents and enum values.
// Implementation:
//   - Stage 1: inputs > 0.
//   - Stage 2: every hidden layer has neurons > 0 and known enums.
//   - Stage 3: the output layer has neurons > 0 and known enums.
//
// Errors:
//   - ErrInvalidDescriptor wrapped with the offending path, e.g.
//     "hidden_layers[1].neurons".
func (n Network) Validate() error {
	if n.Inputs <= 0 {
		return invalidf("inputs", "must be > 0, got %d", n.Inputs)
	}
	for i, l := range n.Hidden {
		path := fmt.Sprintf("hidden_layers[%d]", i)
		if l.Neurons <= 0 {
			return invalidf(path+".neurons", "must be > 0, got %d", l.Neurons)
		}
		if !l.Activation.valid() {
			return invalidf(path+".activation", "missing or unknown value %d", uint8(l.Activation))
		}
		if !l.Type.valid() {
			return invalidf(path+".type", "unknown value %d", uint8(l.Type))
		}
	}
	if n.Output.Neurons <= 0 {
		return invalidf("output_layer.neurons", "must be > 0, got %d", n.Output.Neurons)
	}
	if !n.Output.Activation.valid() {
		return invalidf("output_layer.activation", "missing or unknown value %d", uint8(n.Output.Activation))
	}
	if !n.Output.Loss.valid() {
		return invalidf("output_layer.loss", "missing or unknown value %d", uint8(n.Output.Loss))
	}

	return nil
}

// Widths returns the layer widths from input to output:
// [inputs, hidden..., output].
func (n Network) Widths() []int {
	w := make([]int, 0, len(n.Hidden)+2)
	w = append(w, n.Inputs)
	for _, l := range n.Hidden {
		w = append(w, l.Neurons)
	}

	return append(w, n.Output.Neurons)
}

// ParamCount returns the number of weights and biases the topology holds.
func (n Network) ParamCount() int {
	w := n.Widths()
	total := 0
	for k := 1; k < len(w); k++ {
		total += w[k]*w[k-1] + w[k]
	}

	return total
}

func invalidf(path, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidDescriptor, path, fmt.Sprintf(format, args...))
}

// ActivationType names an activation in a descriptor.
type ActivationType uint8

// Activation types. The zero value means unset and never validates, so a
// descriptor that omits an activation is rejected.
const (
	ActivationStep ActivationType = iota + 1
	ActivationLinear
	ActivationReLU
	ActivationSigmoid
	ActivationSoftmax
)

var activationKinds = [...]activation.Kind{
	ActivationStep:    activation.KindStep,
	ActivationLinear:  activation.KindLinear,
	ActivationReLU:    activation.KindReLU,
	ActivationSigmoid: activation.KindSigmoid,
	ActivationSoftmax: activation.KindSoftmax,
}

func (a ActivationType) valid() bool { return a != 0 && int(a) < len(activationKinds) }

// Kind maps a to the activation package's kind.
func (a ActivationType) Kind() activation.Kind {
	if !a.valid() {
		return activation.Kind(255)
	}

	return activationKinds[a]
}

// String returns the serialized name.
func (a ActivationType) String() string {
	if !a.valid() {
		return fmt.Sprintf("ActivationType(%d)", uint8(a))
	}

	return a.Kind().String()
}

// MarshalText implements encoding.TextMarshaler.
func (a ActivationType) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: activation %d", ErrUnknownEnum, uint8(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are
// case-insensitive.
func (a *ActivationType) UnmarshalText(text []byte) error {
	k, err := activation.Parse(string(text))
	if err != nil {
		return fmt.Errorf("%w: activation %q", ErrUnknownEnum, text)
	}
	for t, kind := range activationKinds {
		if t != 0 && kind == k {
			*a = ActivationType(t)
			return nil
		}
	}

	return fmt.Errorf("%w: activation %q", ErrUnknownEnum, text)
}

// LossType names a loss function.
type LossType uint8

// Loss types. The zero value means unset.
const (
	LossCategoricalCrossEntropy LossType = iota + 1
)

var lossNames = [...]string{
	LossCategoricalCrossEntropy: "categorical_cross_entropy",
}

func (l LossType) valid() bool { return l != 0 && int(l) < len(lossNames) }

// String returns the serialized name.
func (l LossType) String() string {
	if !l.valid() {
		return fmt.Sprintf("LossType(%d)", uint8(l))
	}

	return lossNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l LossType) MarshalText() ([]byte, error) {
	if !l.valid() {
		return nil, fmt.Errorf("%w: loss %d", ErrUnknownEnum, uint8(l))
	}

	return []byte(lossNames[l]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *LossType) UnmarshalText(text []byte) error {
	i, ok := lookup(lossNames[:], string(text))
	if !ok {
		return fmt.Errorf("%w: loss %q", ErrUnknownEnum, text)
	}
	*l = LossType(i)

	return nil
}

// LayerType names a layer implementation. The zero value is Dense.
type LayerType uint8

// Layer types.
const (
	LayerDense LayerType = iota
)

var layerNames = [...]string{
	LayerDense: "dense",
}

func (t LayerType) valid() bool { return int(t) < len(layerNames) }

// String returns the serialized name.
func (t LayerType) String() string {
	if !t.valid() {
		return fmt.Sprintf("LayerType(%d)", uint8(t))
	}

	return layerNames[t]
}

// MarshalText implements encoding.TextMarshaler.
func (t LayerType) MarshalText() ([]byte, error) {
	if !t.valid() {
		return nil, fmt.Errorf("%w: layer type %d", ErrUnknownEnum, uint8(t))
	}

	return []byte(layerNames[t]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *LayerType) UnmarshalText(text []byte) error {
	i, ok := lookup(layerNames[:], string(text))
	if !ok {
		return fmt.Errorf("%w: layer type %q", ErrUnknownEnum, text)
	}
	*t = LayerType(i)

	return nil
}

func lookup(names []string, s string) (int, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n != "" && n == s {
			return i, true
		}
	}

	return 0, false
}
