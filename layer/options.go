// SPDX-License-Identifier: MIT

// Package layer: functional configuration for Dense initialization. This
// file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves the effective source.
//
// Design goals:
//   - Deterministic behavior: no global state; the default source is seeded
//     with DefaultSeed, so two default layers hold identical weights.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - WithSource wins over WithSeed regardless of order.
//   - Weights are drawn row-major (neuron by neuron), one Draw per cell.
package layer

import (
	"github.com/katalvlaran/plexus/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeed seeds the uniform source when neither WithSeed nor
	// WithSource is given.
	DefaultSeed uint64 = 1

	// DefaultWeightScale multiplies every drawn weight; with the uniform
	// source, initial weights lie in [0, 1).
	DefaultWeightScale = 1.0

	// DefaultBiasFill is the initial value of every bias entry.
	DefaultBiasFill = 0.0
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWeightScaleInvalid = "layer: WithWeightScale: scale must be finite and > 0"
	panicBiasFillInvalid    = "layer: WithBiasFill: value must be finite"
	panicSourceNil          = "layer: WithSource: source must not be nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Constructors MUST panic only on
// nonsensical values (programmer error).
type Option[T numeric.Float] func(*Options[T])

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options[T numeric.Float] struct {
	src         Source[T] // nil ⇒ NewUniformSource(seed)
	seed        uint64    // DefaultSeed
	weightScale T         // DefaultWeightScale
	biasFill    T         // DefaultBiasFill
}

// ---------- Constructors (WithX) ----------

// WithSource draws initial weights from src.
// Implementation:
//   - Stage 1: reject a nil source.
//   - Stage 2: return a setter that installs src.
//
// Errors:
//   - Panics with a stable message when src is nil.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithSource[T numeric.Float](src Source[T]) Option[T] {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options[T]) { o.src = src }
}

// WithSeed seeds the default uniform source. Ignored when WithSource is set.
func WithSeed[T numeric.Float](seed uint64) Option[T] {
	return func(o *Options[T]) { o.seed = seed }
}

// WithWeightScale multiplies every drawn weight by scale.
// Implementation:
//   - Stage 1: validate scale is finite and > 0.
//   - Stage 2: return a setter that writes scale into Options.
//
// Errors:
//   - Panics with a stable message when scale is invalid.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Small scales (e.g. 0.01) keep early activations out of saturation for
//     Sigmoid and Softmax outputs.
func WithWeightScale[T numeric.Float](scale T) Option[T] {
	if !numeric.IsFinite(scale) || scale <= 0 {
		panic(panicWeightScaleInvalid)
	}

	return func(o *Options[T]) { o.weightScale = scale }
}

// WithBiasFill sets every initial bias entry to v.
func WithBiasFill[T numeric.Float](v T) Option[T] {
	if !numeric.IsFinite(v) {
		panic(panicBiasFillInvalid)
	}

	return func(o *Options[T]) { o.biasFill = v }
}

// ---------- Resolution ----------

// gatherOptions applies opts over the defaults and resolves the source.
func gatherOptions[T numeric.Float](opts ...Option[T]) Options[T] {
	o := Options[T]{
		seed:        DefaultSeed,
		weightScale: DefaultWeightScale,
		biasFill:    DefaultBiasFill,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.src == nil {
		o.src = NewUniformSource[T](o.seed)
	}

	return o
}
