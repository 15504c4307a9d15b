// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Package vec provides the float64 reduction loops shared by the pairwise
// kernels: dot products, sums and row centering.
//
// The loops keep several independent accumulators live so consecutive
// iterations do not wait on one another's adds. The number of accumulators
// follows the register width reported by kernels/dispatch: 8 for AVX-512,
// 4 for AVX2, 2 otherwise. Accumulator count changes the summation order,
// so results may differ in the last bits between dispatch levels.
package vec

// Floats is the set of element types the input-facing helpers accept.
// Accumulation always happens in float64.
type Floats interface {
	~float32 | ~float64
}
