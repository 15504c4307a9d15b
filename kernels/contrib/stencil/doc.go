// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Package stencil runs tiled, double-buffered Jacobi heat diffusion on a
// square grid.
//
// Each step writes every interior cell of the next buffer as the mean of
// its four neighbours in the current buffer:
//
//	next[i][j] = 0.25 * (cur[i+1][j] + cur[i-1][j] + cur[i][j+1] + cur[i][j-1])
//
// Boundary cells are never written. Both buffers start with identical
// contents, so row 0 (the heat source) and the other border cells keep their
// initial values for the whole run. After a step the buffers swap roles.
//
// All reads of a step come from the buffer written by the previous step and
// all writes go to the other one, so cells within a step never conflict and
// no atomics are needed. The interior is cut into square tiles, flattened to
// one index space and distributed across workers; within a tile rows are
// swept in order for cache locality. Each parallel loop returns only when
// every tile of the step is written, which is the barrier between steps.
package stencil
