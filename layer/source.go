// SPDX-License-Identifier: MIT

package layer

import (
	"math/rand/v2"

	"github.com/katalvlaran/plexus/numeric"
)

// Source yields scalar draws used to initialize weights.
type Source[T numeric.Float] interface {
	Draw() T
}

// SourceFunc adapts a plain function to Source.
type SourceFunc[T numeric.Float] func() T

// Draw calls f.
func (f SourceFunc[T]) Draw() T { return f() }

// uniformSource draws from [0, 1) with a PCG generator.
type uniformSource[T numeric.Float] struct {
	rng *rand.Rand
}

// NewUniformSource returns a deterministic Source drawing uniformly from
// [0, 1). Equal seeds yield equal sequences.
func NewUniformSource[T numeric.Float](seed uint64) Source[T] {
	return &uniformSource[T]{rng: rand.New(rand.NewPCG(seed, seed^pcgStream))}
}

// pcgStream decorrelates the two PCG state words derived from one seed.
const pcgStream = 0x9e3779b97f4a7c15

// Draw returns the next value. float32 kinds draw natively so that rounding
// can never produce 1.
func (u *uniformSource[T]) Draw() T {
	if numeric.KindOf[T]() == numeric.KindFloat32 {
		return T(u.rng.Float32())
	}

	return T(u.rng.Float64())
}
