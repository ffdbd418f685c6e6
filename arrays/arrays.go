// SPDX-License-Identifier: MIT
// Package arrays: bulk data-movement primitives (copy, fill, reverse,
// repeat). These are the only loops in the module that move raw slice data;
// the matrix engine delegates here for every row copy and fill.

package arrays

// Copy copies up to n elements from src[srcPos:] into dst[dstPos:] and
// returns the number of elements actually copied. The count is clamped to
// what both slices can supply and receive, so Copy never panics; a negative
// position or count copies nothing.
// Complexity: O(n).
func Copy[T any](src []T, srcPos int, dst []T, dstPos, n int) int {
	// Reject nonsensical inputs by copying nothing.
	if n <= 0 || srcPos < 0 || dstPos < 0 || srcPos >= len(src) || dstPos >= len(dst) {
		return 0
	}
	// Clamp n to the available source and destination room.
	if m := len(src) - srcPos; n > m {
		n = m
	}
	if m := len(dst) - dstPos; n > m {
		n = m
	}

	return copy(dst[dstPos:dstPos+n], src[srcPos:srcPos+n])
}

// Fill assigns val to a[from:to].
// Returns ErrOutOfRange when the range does not fit the slice.
// Complexity: O(to-from).
func Fill[T any](a []T, from, to int, val T) error {
	// Validate the half-open range against the slice bounds.
	if from < 0 || to > len(a) || from > to {
		return ErrOutOfRange
	}
	for i := from; i < to; i++ {
		a[i] = val
	}

	return nil
}

// FillAll assigns val to every element of a.
// Complexity: O(len(a)).
func FillAll[T any](a []T, val T) {
	for i := range a {
		a[i] = val
	}
}

// Reverse reverses a in place.
// Complexity: O(len(a)).
func Reverse[T any](a []T) {
	for l, h := 0, len(a)-1; l < h; l, h = l+1, h-1 {
		a[l], a[h] = a[h], a[l]
	}
}

// Repeat returns a freshly allocated slice holding n copies of val.
// Returns ErrNegativeLen when n < 0; n == 0 yields an empty slice.
// Complexity: O(n).
func Repeat[T any](val T, n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeLen
	}
	out := make([]T, n)
	for i := range out {
		out[i] = val
	}

	return out, nil
}
