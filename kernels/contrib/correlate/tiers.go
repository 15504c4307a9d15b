// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package correlate

import (
	"math"

	"github.com/ajroetker/go-pairwise/kernels/contrib/vec"
	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

func correlateBaseline[T vec.Floats](ny, nx int, data, result []T) {
	constant := make([]bool, ny)
	constantRows(constant, nx, data, 0, ny)
	for i := range ny {
		for j := 0; j <= i; j++ {
			result[i*ny+j] = T(pairValue(constant, nx, data, i, j))
		}
	}
}

func correlatePartitioned[T vec.Floats](pool *workerpool.Pool, ny, nx int, data, result []T) {
	constant := make([]bool, ny)
	pool.ParallelFor(ny, func(_, start, end int) {
		constantRows(constant, nx, data, start, end)
	})

	pairs := ny * (ny + 1) / 2
	pool.ParallelFor(pairs, func(_, start, end int) {
		i, j := unflatten(start)
		for range end - start {
			result[i*ny+j] = T(pairValue(constant, nx, data, i, j))
			if j++; j > i {
				i, j = i+1, 0
			}
		}
	})
}

// pairValue is the five-sum correlation of rows i and j, or 0 when either
// row is constant.
func pairValue[T vec.Floats](constant []bool, nx int, data []T, i, j int) float64 {
	if constant[i] || constant[j] {
		return 0
	}
	return pearson(data[i*nx:(i+1)*nx], data[j*nx:(j+1)*nx])
}

// unflatten maps k in [0, ny(ny+1)/2) to the k-th pair (i, j), j ≤ i, of
// the row-major lower triangle.
func unflatten(k int) (i, j int) {
	i = int((math.Sqrt(float64(8*k+1)) - 1) / 2)
	for i*(i+1)/2 > k {
		i--
	}
	for (i+1)*(i+2)/2 <= k {
		i++
	}
	return i, k - i*(i+1)/2
}

// blockRows picks a row-block edge so that two blocks of nx float64 values
// fit in blockBytes.
func blockRows(nx, requested int) int {
	if requested > 0 {
		return requested
	}
	return max(1, min(64, DefaultBlockBytes/(2*8*max(nx, 1))))
}

func correlateOptimized[T vec.Floats](pool *workerpool.Pool, ny, nx int, data, result []T, requestedBlock int) {
	centered := make([]float64, ny*nx)
	inv := make([]float64, ny)
	n := float64(nx)

	pool.ParallelFor(ny, func(_, start, end int) {
		for i := start; i < end; i++ {
			row := data[i*nx : (i+1)*nx]
			mean, variance, constant := rowStats(row)
			vec.CenterInto(centered[i*nx:(i+1)*nx], row, mean)
			if constant {
				inv[i] = 0
			} else {
				inv[i] = 1 / math.Sqrt(variance*n*n)
			}
		}
	})

	b := blockRows(nx, requestedBlock)
	blocks := (ny + b - 1) / b
	pool.ParallelForDynamic(blocks*(blocks+1)/2, 1, func(_, start, end int) {
		for k := start; k < end; k++ {
			bi, bj := unflatten(k)
			i0, i1 := bi*b, min((bi+1)*b, ny)
			j0, j1 := bj*b, min((bj+1)*b, ny)
			for i := i0; i < i1; i++ {
				ci := centered[i*nx : (i+1)*nx]
				scale := inv[i] * n
				for j := j0; j < min(j1, i+1); j++ {
					dot := vec.Dot(ci, centered[j*nx:(j+1)*nx])
					result[i*ny+j] = T(clamp(dot * scale * inv[j]))
				}
			}
		}
	})
}
