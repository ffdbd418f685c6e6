// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels and tests check them
// via errors.Is. No operation panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Operations wrap the sentinels with
// fmt.Errorf("matrix.Op: %w", ErrX) via opErrorf at the call boundary, so
// callers still match with errors.Is.

var (
	// ErrBadShape is returned for negative dimensions in factories and
	// shape-changing transforms (New, Reshape, Extend, ...).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrJagged is returned when construction from existing rows finds rows
	// of unequal length; the backing store must be rectangular.
	ErrJagged = errors.New("matrix: rows must share the same length")

	// ErrOutOfRange indicates a row/column index or index range outside the
	// matrix bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between
	// operands: Add/Subtract/ZipWith with different shapes, Multiply where
	// a.cols != b.rows, stacking mismatches, or row/column/diagonal slices
	// of the wrong length.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals a diagonal operation on a non-square matrix.
	ErrNonSquare = errors.New("matrix: rows and cols must be equal for diagonals")

	// ErrNoSuchElement is returned by Stream.Next once the stream is
	// exhausted.
	ErrNoSuchElement = errors.New("matrix: no such element")

	// ErrNegativeCount is returned by Stream.Advance for a negative skip.
	ErrNegativeCount = errors.New("matrix: count must be non-negative")

	// ErrBadRepeat is returned when a repeat factor is zero or negative
	// (Repelem, Repmat).
	ErrBadRepeat = errors.New("matrix: repeat factor must be positive")

	// ErrTooLarge is returned when a dimension product would overflow the
	// maximum representable backing array; detected in 64-bit arithmetic
	// before any allocation.
	ErrTooLarge = errors.New("matrix: result dimensions overflow")
)

// opErrorf wraps a sentinel with the operation name for context.
func opErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}
