// SPDX-License-Identifier: MIT
// Package parallel: dispatch strategy and the Run/RunRange executors.
//
// Design:
//   - One strategy function pair (Parallelizable + Run) instead of a size
//     check scattered across every matrix operation.
//   - Loop order follows the rows <= cols comparison, matching the cache
//     policy of the structural transforms that feed cells to it.
//   - Parallel partitions are contiguous blocks of the outer index, one per
//     worker, joined with errgroup so the first error survives the join.

package parallel

import (
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// MinCountForParallel is the element-count threshold below which dispatch is
// always sequential under ModeDefault.
const MinCountForParallel = 8192

// Mode overrides the dispatch heuristic process-wide.
type Mode int32

const (
	// ModeDefault applies the MinCountForParallel heuristic.
	ModeDefault Mode = iota
	// ModeAlways forces parallel execution regardless of extent.
	ModeAlways
	// ModeNever forces sequential execution regardless of extent.
	ModeNever
)

// mode holds the current Mode. Atomic so tests can flip it around calls;
// flipping it concurrently with a running dispatch only affects future
// dispatch decisions, never a dispatch already in flight.
var mode atomic.Int32

// SetMode overrides the dispatch heuristic for the whole process.
// Panics on an unknown Mode value (programmer error).
func SetMode(m Mode) {
	if m < ModeDefault || m > ModeNever {
		panic(panicBadMode)
	}
	mode.Store(int32(m))
}

// CurrentMode reports the active dispatch override.
func CurrentMode() Mode {
	return Mode(mode.Load())
}

// Parallelizable reports whether an extent of count cells should dispatch in
// parallel under the current Mode.
func Parallelizable(count int64) bool {
	return ParallelizableScaled(count, 1)
}

// ParallelizableScaled is Parallelizable with the cell count scaled by
// factor; the multiplication scheduler passes the inner dimension here so
// the decision reflects total multiply-add work, not output size.
func ParallelizableScaled(count int64, factor int) bool {
	switch CurrentMode() {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return count*int64(factor) > MinCountForParallel
	}
}

// Workers reports the number of worker goroutines a parallel dispatch fans
// out to.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// Run executes cmd over the full rows × cols extent.
// See RunRange for the execution contract.
func Run(rows, cols int, cmd func(i, j int) error, inParallel bool) error {
	return RunRange(0, rows, 0, cols, cmd, inParallel)
}

// RunRange executes cmd(i, j) for every cell of
// [fromRow, toRow) × [fromCol, toCol), exactly once per cell.
//
// Sequential execution iterates rows-outer when the row extent is the
// smaller one, columns-outer otherwise. Parallel execution partitions the
// same outer index into contiguous per-worker blocks and joins them before
// returning; the first error observed by any partition is returned after
// all partitions settle.
// Returns ErrBadRange on a malformed extent.
func RunRange(fromRow, toRow, fromCol, toCol int, cmd func(i, j int) error, inParallel bool) error {
	// Validate the extent before touching any cell.
	if fromRow < 0 || toRow < fromRow || fromCol < 0 || toCol < fromCol {
		return ErrBadRange
	}
	rows := toRow - fromRow
	cols := toCol - fromCol
	if rows == 0 || cols == 0 {
		return nil // empty extent, nothing to visit
	}

	if !inParallel {
		if rows <= cols {
			for i := fromRow; i < toRow; i++ {
				for j := fromCol; j < toCol; j++ {
					if err := cmd(i, j); err != nil {
						return err
					}
				}
			}
		} else {
			for j := fromCol; j < toCol; j++ {
				for i := fromRow; i < toRow; i++ {
					if err := cmd(i, j); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}

	// Parallel path: partition the outer index, whole rows or whole columns
	// per block so partitions never share a cell.
	if rows <= cols {
		return runBlocks(fromRow, toRow, func(i int) error {
			for j := fromCol; j < toCol; j++ {
				if err := cmd(i, j); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return runBlocks(fromCol, toCol, func(j int) error {
		for i := fromRow; i < toRow; i++ {
			if err := cmd(i, j); err != nil {
				return err
			}
		}
		return nil
	})
}

// runBlocks splits [from, to) into contiguous blocks, one per worker, and
// runs body for every index; the join returns the first partition error.
func runBlocks(from, to int, body func(outer int) error) error {
	n := to - from
	workers := Workers()
	if workers > n {
		workers = n
	}
	block := (n + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := from + w*block
		end := start + block
		if end > to {
			end = to
		}
		if start >= end {
			break
		}
		g.Go(func() error {
			for outer := start; outer < end; outer++ {
				if err := body(outer); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}
