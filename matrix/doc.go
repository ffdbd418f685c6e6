// Package matrix is a dense, row-major, generic 2D matrix engine: one
// implementation parameterized over the element type instead of one copy per
// numeric width.
//
// 🚀 What it provides
//
//   - Matrix[T]: rectangular row-major storage with cached rows/cols and a
//     64-bit element count, for any element type; arithmetic is available
//     for the Number instantiations.
//   - Structural transforms: Transpose, Rotate90/180/270, FlipH/FlipV,
//     Reshape, Extend/ExtendPad, Repelem, Repmat, Vstack/Hstack, Flatten.
//     All of them return a new matrix built from freshly allocated rows;
//     only the Reverse/Update/Replace/Fill families mutate in place.
//   - Elementwise transforms (UpdateAll, ReplaceIf, Map, ZipWith, ForEach)
//     routed through the parallel package, so the sequential-vs-parallel
//     decision is centralized and deterministic.
//   - Streams: lazy, single-pass, position-resumable cursors over the
//     elements in row-major, column-major, diagonal, per-row and per-column
//     order, with O(1) Advance and Count.
//
// 🧭 Ownership
//
//	Of wraps the caller's rows directly - construction transfers effective
//	ownership of the backing rows to the matrix, no defensive copy is made.
//	Use New for a fresh zeroed allocation and Copy for an independent
//	snapshot. Row returns the live backing row; Column returns a copy.
//
// ⚠️ Concurrency
//
//	The engine's own dispatch (see the parallel package) is the only
//	parallelism whose correctness is guaranteed. Mutating a matrix from
//	multiple goroutines, or mutating it while a Stream is being consumed,
//	is undefined behavior and is not defended against.
//
// All user-triggered failures surface as the package sentinel errors
// (ErrBadShape, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare, ...),
// matched with errors.Is; validation happens before any allocation or
// mutation, so a failed call leaves its receiver untouched.
package matrix
