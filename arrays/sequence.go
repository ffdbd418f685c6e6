// SPDX-License-Identifier: MIT
// Package arrays: sequence generators (Range, RangeClosed, Random) and the
// Number constraint shared by the whole module.

package arrays

import (
	"math"
	"math/rand"
)

// Number is the element constraint for numeric sequences and matrices:
// fixed-width signed/unsigned integers and both floating-point widths.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Range returns the arithmetic sequence start, start+step, ... stopping
// before endExclusive. A step moving away from the bound yields an empty
// slice; a zero step returns ErrZeroStep.
// Complexity: O(len(result)).
func Range[T Number](start, endExclusive, step T) ([]T, error) {
	n, err := seqLen(float64(start), float64(endExclusive), float64(step), false)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}

	return out, nil
}

// RangeClosed returns the arithmetic sequence start, start+step, ... up to
// and including endInclusive. A zero step returns ErrZeroStep.
// Complexity: O(len(result)).
func RangeClosed[T Number](start, endInclusive, step T) ([]T, error) {
	n, err := seqLen(float64(start), float64(endInclusive), float64(step), true)
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	v := start
	for i := range out {
		out[i] = v
		v += step
	}

	return out, nil
}

// seqLen computes the element count of an arithmetic sequence in float64 so
// the arithmetic cannot wrap for any Number instantiation.
func seqLen(start, end, step float64, closed bool) (int, error) {
	if step == 0 {
		return 0, ErrZeroStep
	}
	span := (end - start) / step
	if span < 0 {
		return 0, nil // step moves away from the bound
	}
	if closed {
		return int(math.Floor(span)) + 1, nil
	}

	return int(math.Ceil(span)), nil
}

// Random returns n pseudo-random values: full-width values for integer
// element types, values in [0, 1) for float32/float64.
// Returns ErrNegativeLen when n < 0.
// Complexity: O(n).
func Random[T Number](n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeLen
	}
	out := make([]T, n)

	switch o := any(out).(type) {
	case []float64:
		for i := range o {
			o[i] = rand.Float64()
		}
	case []float32:
		for i := range o {
			o[i] = rand.Float32()
		}
	default:
		for i := range out {
			out[i] = T(rand.Uint64())
		}
	}

	return out, nil
}
