// Package gridmat is an in-memory toolkit for dense, row-major 2D matrices
// of any element type — structural transforms, parallel elementwise math
// and lazy streaming iteration.
//
// 🚀 What is gridmat?
//
//	A generic, thread-aware matrix library that brings together:
//		• Core primitives: construct, index, slice, fill & copy Matrix[T]
//		• Structural transforms: transpose, rotations, flips, reshape,
//		  extend, repelem/repmat tiling, vstack/hstack
//		• Elementwise engine: map, zip, replace & update, auto-parallel
//		  above a work threshold
//		• Arithmetic: add, subtract and matrix product for numeric T
//		• Streams: lazy row/column/diagonal cursors with O(1) Advance
//
// ✨ Why choose gridmat?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable – sentinel errors, no panics on bad input, documented
//     ownership for every accessor
//   - Deterministic – parallel and sequential execution always agree
//   - Generic – one Matrix[T] for ints, floats, structs, anything
//
// Under the hood, everything is organized under three packages:
//
//	arrays/   — slice kernels: copy, fill, reverse, sequences
//	parallel/ — the work dispatcher: thresholds, modes, block scheduling
//	matrix/   — the Matrix[T] type and its full operation surface
//
// Quick start:
//
//	m, _ := matrix.Of([][]int{{1, 2, 3}, {4, 5, 6}})
//	r, _ := m.Reshape(3, 2)
//	p, _ := matrix.Multiply(r.Transpose(), r)
//	s := p.StreamH()
//	for s.HasNext() {
//		v, _ := s.Next()
//		fmt.Println(v)
//	}
//
// See each package's doc.go for the full contract.
package gridmat
