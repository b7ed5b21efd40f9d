// SPDX-License-Identifier: MIT

package dynamic

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors.
var (
	// ErrNoForwardPass is returned by Backward before any Forward.
	ErrNoForwardPass = errors.New("dynamic: backward pass called before forward pass")

	// ErrDimensionMismatch reports incompatible operand shapes.
	ErrDimensionMismatch = errors.New("dynamic: dimension mismatch")

	// ErrEmptyBatch reports a nil or zero-sized input.
	ErrEmptyBatch = errors.New("dynamic: empty batch")

	// ErrInvalidShape reports a non-positive layer extent.
	ErrInvalidShape = errors.New("dynamic: invalid layer shape")

	// ErrUnsupported reports a descriptor value with no runtime implementation.
	ErrUnsupported = errors.New("dynamic: unsupported descriptor value")
)

// mismatch formats an ErrDimensionMismatch with both shapes.
func mismatch(op string, r1, c1, r2, c2 int) error {
	return fmt.Errorf("%s: %w: %dx%d vs %dx%d", op, ErrDimensionMismatch, r1, c1, r2, c2)
}

// checkBatch rejects nil or empty inputs and returns the shape.
func checkBatch(op string, m *mat.Dense) (rows, cols int, err error) {
	if m == nil {
		return 0, 0, fmt.Errorf("%s: %w", op, ErrEmptyBatch)
	}
	rows, cols = m.Dims()
	if rows == 0 || cols == 0 {
		return 0, 0, fmt.Errorf("%s: %w", op, ErrEmptyBatch)
	}

	return rows, cols, nil
}

// checkSame rejects a and b of different shapes.
func checkSame(op string, a, b *mat.Dense) error {
	r1, c1, err := checkBatch(op, a)
	if err != nil {
		return err
	}
	r2, c2, err := checkBatch(op, b)
	if err != nil {
		return err
	}
	if r1 != r2 || c1 != c2 {
		return mismatch(op, r1, c1, r2, c2)
	}

	return nil
}
