// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Package correlate computes the Pearson correlation between every pair of
// rows of a ny×nx sample matrix.
//
// The result is a ny×ny row-major matrix of which only the lower triangle
// (i ≥ j, entry at result[i*ny+j]) is written; use Mirror for a full
// symmetric matrix. Code ported from column-major implementations that store
// corr(i, j) at result[i+j*ny] reads the transpose: there, result[ny-1] is
// corr(ny-1, 0), while here it is the unwritten entry (0, ny-1) and
// corr(ny-1, 0) is result[(ny-1)*ny]. Input may be float32 or float64; all accumulation is in
// float64.
//
// Three interchangeable strategies agree within floating-point tolerance:
//
//   - Baseline: one goroutine; five running sums per pair and
//     (n·Σxy − Σx·Σy) / sqrt((n·Σx² − (Σx)²)·(n·Σy² − (Σy)²)).
//   - Partitioned: the Baseline formula over the flattened triangle of
//     ny(ny+1)/2 pairs, split into equal contiguous ranges. Every pair costs
//     the same nx operations, so the split is balanced even though row i
//     holds i+1 pairs.
//   - Optimized: per-row mean and 1/sqrt(variance·nx²) computed once, rows
//     centered once, then every entry is a centered dot product scaled by
//     the two row factors and nx. Pairs are visited in square blocks of rows
//     so both operands stay in cache, and blocks are handed out dynamically.
//
// Degenerate rows never produce NaN or Inf. Every tier applies the same
// rule: a row whose two-pass variance is within the rounding error of
// centering it is constant, and any pair involving a constant row is 0,
// including its diagonal entry. This catches rows of a repeated value that
// is not exact in binary, such as 0.7. Baseline and Partitioned also return
// 0 when either five-sum variance term rounds to zero or below. Every
// written entry is clamped to [−1, 1]. The diagonal is computed, not
// forced, so it is 1 only up to rounding.
package correlate
