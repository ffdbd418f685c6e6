// SPDX-License-Identifier: MIT
// Package arrays: sentinel error set.
// Every message is prefixed with "arrays: ..." for consistency and grepping.
// Callers match these with errors.Is; no function in this package panics on
// user input.

package arrays

import "errors"

var (
	// ErrOutOfRange indicates a [from, to) range outside the slice bounds,
	// or from > to.
	ErrOutOfRange = errors.New("arrays: range out of bounds")

	// ErrNegativeLen indicates a negative requested length.
	ErrNegativeLen = errors.New("arrays: length must be non-negative")

	// ErrZeroStep indicates a zero step in a sequence generator; the
	// sequence would never terminate.
	ErrZeroStep = errors.New("arrays: step must be non-zero")
)
