// SPDX-License-Identifier: MIT
// Package matrix: central validation checks.
//
// Purpose:
//   - Keep shape and index guards in one place so every constructor and
//     accessor enforces the same contract.
//   - Return plain sentinels (lightly annotated) so call sites wrap uniformly
//     with their operation tag.

package matrix

import "fmt"

// validateExtents ensures a shape has at least one row and one column.
// Complexity: O(1).
func validateExtents(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidDimensions)
	}

	return nil
}

// validateIndex ensures 0 ≤ i < rows and 0 ≤ j < cols.
// Complexity: O(1).
func validateIndex(rows, cols, i, j int) error {
	if i < 0 || i >= rows || j < 0 || j >= cols {
		return fmt.Errorf("(%d,%d) outside %dx%d: %w", i, j, rows, cols, ErrOutOfRange)
	}

	return nil
}

// validateGrid ensures grid is exactly rows×cols (no ragged rows).
// Complexity: O(rows).
func validateGrid[T any](grid [][]T, rows, cols int) error {
	if len(grid) != rows {
		return fmt.Errorf("grid has %d rows, want %d: %w", len(grid), rows, ErrDimensionMismatch)
	}
	for i, row := range grid {
		if len(row) != cols {
			return fmt.Errorf("grid row %d has %d columns, want %d: %w", i, len(row), cols, ErrDimensionMismatch)
		}
	}

	return nil
}

// shapeOf resolves and validates the extents of R and C, panicking under tag
// when either is non-positive.
func shapeOf[R, C Dim](tag string) (rows, cols int) {
	rows, cols = Extent[R](), Extent[C]()
	if err := validateExtents(rows, cols); err != nil {
		fail(tag, err)
	}

	return rows, cols
}
