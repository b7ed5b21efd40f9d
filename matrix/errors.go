// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All messages carry the "matrix:" prefix. Call sites wrap them with an
// operation tag via matrixErrorf; callers match with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates that a dimension marker reported a
	// non-positive extent.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that runtime-shaped input (a literal grid,
	// a gonum matrix) does not match the static shape it is loaded into.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)

// Operation tags for error wrapping.
const (
	opNew         = "New"
	opNewFunc     = "NewFunc"
	opFromSeq     = "FromSeq"
	opFromIndexed = "FromIndexed"
	opFromGonum   = "FromGonum"
	opAt          = "At"
	opSet         = "Set"
	opLookup      = "Lookup"
	opStore       = "Store"
	opRow         = "Row"
	opCol         = "Col"
	opView        = "View.At"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// fail panics with a tagged error. Reserved for programmer errors: invalid
// static shapes and out-of-range indices on the asserting surface.
func fail(tag string, err error) {
	panic(matrixErrorf(tag, err))
}
