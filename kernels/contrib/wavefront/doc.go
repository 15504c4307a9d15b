// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Package wavefront computes local-alignment (Smith–Waterman) scores with
// anti-diagonal wavefront parallelism.
//
// The score matrix H has (n+1)×(m+1) cells with H[0][*] = H[*][0] = 0 and
//
//	H[i][j] = max(0,
//	              H[i-1][j-1] + (A[i-1] == B[j-1] ? Match : Mismatch),
//	              H[i-1][j]   + Gap,
//	              H[i][j-1]   + Gap)
//
// Cell (i, j) depends on its up, left and up-left neighbours, all of which
// lie on the two previous anti-diagonals i+j = w-1 and i+j = w-2. Every cell
// on one anti-diagonal is therefore independent of the others, and the
// kernel computes waves w = 2..n+m in order, each as one blocking parallel
// loop over i. Returning from the loop is the barrier: wave w+1 never starts
// before every cell of wave w is written.
//
// Waves near the corners hold only a handful of cells, so parallel
// efficiency there is inherently low; waves shorter than
// Options.MinParallelCells run on the calling goroutine.
//
// Memory modes:
//   - FullMatrix keeps all of H and can return it.
//   - Diagonals keeps only the three live anti-diagonals, O(min(n, m))
//     memory for any input length.
package wavefront
