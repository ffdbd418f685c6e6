// SPDX-License-Identifier: MIT
// Package parallel: the multiplication scheduler.
//
// For C = A × B the callback receives (i, j, k) and is expected to perform
// C[i][j] += A[i][k] * B[k][j]. Partitioning is by blocks of output rows, so
// no two workers ever touch the same C cell; the callback only needs to be
// associative per cell (ordinary multiply-add is).

package parallel

import "sync"

// Multiply drives cmd over the full i × k × j multiplication index space for
// operands A (rowsA × colsA) and B (colsA × colsB).
//
// Sequential execution keeps i as the outer loop; the k/j nesting is chosen
// from the operand extents (k-outer streams rows of B through the cache when
// A is the narrow operand). Parallel execution partitions [0, rowsA) into
// contiguous row blocks, one per worker, and joins before returning.
// Callers guarantee the dimensions are compatible; the matrix layer
// validates a.cols == b.rows before scheduling.
func Multiply(rowsA, colsA, colsB int, cmd func(i, j, k int), inParallel bool) {
	if rowsA <= 0 || colsA <= 0 || colsB <= 0 {
		return // empty product, nothing to accumulate
	}

	row := func(i int) {
		if colsA <= colsB {
			for k := 0; k < colsA; k++ {
				for j := 0; j < colsB; j++ {
					cmd(i, j, k)
				}
			}
		} else {
			for j := 0; j < colsB; j++ {
				for k := 0; k < colsA; k++ {
					cmd(i, j, k)
				}
			}
		}
	}

	if !inParallel {
		for i := 0; i < rowsA; i++ {
			row(i)
		}

		return
	}

	workers := Workers()
	if workers > rowsA {
		workers = rowsA
	}
	block := (rowsA + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * block
		end := start + block
		if end > rowsA {
			end = rowsA
		}
		if start >= end {
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				row(i)
			}
		}()
	}
	wg.Wait()
}
