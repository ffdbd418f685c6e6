// Package parallel is the single concurrency boundary of gridmat: it
// decides, for a 1D or 2D index extent, whether per-cell work runs
// sequentially or fans out across worker goroutines, and executes it either
// way with deterministic results.
//
// 🚀 How dispatch works
//
//	Every elementwise matrix operation funnels through Run/RunRange, so the
//	sequential-vs-parallel decision lives in exactly one place:
//	  • below MinCountForParallel elements work runs inline, row-major;
//	  • above it, the outer index range is split into contiguous blocks,
//	    one per available worker, and joined before returning.
//	Partitions are whole outer indices (whole rows or whole columns), never
//	sub-row splits, so concurrent workers write to disjoint cells and no
//	locking is needed for correctness.
//
// ✨ Guarantees
//
//   - Every cell in the extent is visited exactly once.
//   - A bounded join: Run returns only after all spawned workers finished.
//   - The first worker error is returned after all partitions settle
//     (no silently lost failures), via golang.org/x/sync/errgroup.
//   - No cancellation or timeout: a dispatch runs to completion.
//
// The heuristic can be forced either way process-wide with SetMode, which
// mirrors the hint callers would otherwise pass per call; forced modes are
// mainly for tests proving sequential/parallel equivalence.
//
// Multiply is the specialized scheduler for matrix multiplication: it
// partitions by blocks of output rows and picks the inner loop order from
// the operand extents for write locality.
package parallel
