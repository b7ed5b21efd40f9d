// SPDX-License-Identifier: MIT

package activation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/plexus/matrix"
	"github.com/katalvlaran/plexus/numeric"
)

// ErrUnknownActivation is returned by Parse and For for an unrecognized name.
var ErrUnknownActivation = errors.New("activation: unknown activation")

// Func is a stateless batch transform. Activate must not change the grid's
// shape; Softmax reads whole rows, every other variant is cellwise.
type Func[T numeric.Float] interface {
	Name() string
	Activate(g matrix.Grid[T])
}

// Apply returns f applied to a copy of m; m is left untouched.
// Complexity: O(R·C).
func Apply[R, C matrix.Dim, T numeric.Float](f Func[T], m *matrix.Matrix[R, C, T]) *matrix.Matrix[R, C, T] {
	out := m.Clone()
	f.Activate(out)

	return out
}

// Kind names an activation variant.
type Kind uint8

// Supported kinds.
const (
	KindLinear Kind = iota
	KindReLU
	KindSigmoid
	KindSoftmax
	KindStep
)

var kindNames = [...]string{
	KindLinear:  "linear",
	KindReLU:    "relu",
	KindSigmoid: "sigmoid",
	KindSoftmax: "softmax",
	KindStep:    "step",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Parse resolves a case-insensitive activation name.
func Parse(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownActivation)
}

// For returns the Func of kind k for element type T.
func For[T numeric.Float](k Kind) (Func[T], error) {
	switch k {
	case KindLinear:
		return Linear[T]{}, nil
	case KindReLU:
		return ReLU[T]{}, nil
	case KindSigmoid:
		return Sigmoid[T]{}, nil
	case KindSoftmax:
		return Softmax[T]{}, nil
	case KindStep:
		return Step[T]{}, nil
	default:
		return nil, fmt.Errorf("%s: %w", k, ErrUnknownActivation)
	}
}

// cellwise rewrites every cell of g with f, in row-major order.
func cellwise[T numeric.Float](g matrix.Grid[T], f func(T) T) {
	rows, cols := g.Rows(), g.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			g.Set(i, j, f(g.At(i, j)))
		}
	}
}
