// SPDX-License-Identifier: MIT

package layer

import (
	"github.com/katalvlaran/plexus/activation"
	"github.com/katalvlaran/plexus/matrix"
	"github.com/katalvlaran/plexus/numeric"
)

// Block runs a Layer then an activation. It is a Forwarder[B, I, N, T].
type Block[B, N, I matrix.Dim, T numeric.Float] struct {
	layer Layer[B, N, I, T]
	act   activation.Func[T]
}

// NewBlock pairs l with f.
func NewBlock[B, N, I matrix.Dim, T numeric.Float](l Layer[B, N, I, T], f activation.Func[T]) *Block[B, N, I, T] {
	return &Block[B, N, I, T]{layer: l, act: f}
}

// Layer returns the wrapped layer.
func (b *Block[B, N, I, T]) Layer() Layer[B, N, I, T] { return b.layer }

// Activation returns the wrapped activation.
func (b *Block[B, N, I, T]) Activation() activation.Func[T] { return b.act }

// Forward returns act(layer(in)).
func (b *Block[B, N, I, T]) Forward(in *matrix.Matrix[B, I, T]) *matrix.Matrix[B, N, T] {
	out := b.layer.Forward(in)
	b.act.Activate(out)

	return out
}

// chain composes two Forwarders sharing the hidden extent H.
type chain[B, I, H, O matrix.Dim, T numeric.Float] struct {
	first  Forwarder[B, I, H, T]
	second Forwarder[B, H, O, T]
}

// Chain returns a Forwarder running first then second. The hidden width H
// must agree at compile time.
func Chain[B, I, H, O matrix.Dim, T numeric.Float](first Forwarder[B, I, H, T], second Forwarder[B, H, O, T]) Forwarder[B, I, O, T] {
	return chain[B, I, H, O, T]{first: first, second: second}
}

func (c chain[B, I, H, O, T]) Forward(in *matrix.Matrix[B, I, T]) *matrix.Matrix[B, O, T] {
	return c.second.Forward(c.first.Forward(in))
}
