// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Package nbody computes pairwise Lennard-Jones forces and potential energy
// for a set of particles using shared-memory parallelism.
//
// Every unordered pair (i, j), i < j, is visited exactly once. The force on
// i is added to i's accumulator and its negation to j's, so Newton's third
// law holds pair by pair and the total force over a closed system is zero
// up to rounding. Because the outer index i is handed out with a guided
// schedule, any worker may contribute to any particle's force, which makes
// the accumulators the one shared, concurrently written resource. Two
// accumulation strategies are offered:
//
//   - Partitioned (default): every worker slot owns a private force array;
//     the arrays are summed per particle after the pair loop. No atomics and
//     no contention, at the cost of NumWorkers·3N extra floats.
//   - Atomic: forces are added in place with a compare-and-swap loop on each
//     float64 field. No extra memory, but hot particles serialize.
//
// Energy is reduced through per-slot partial sums. Summation order depends
// on the worker count, so results agree across thread counts only within a
// relative tolerance, never bit for bit.
package nbody
