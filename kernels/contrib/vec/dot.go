// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package vec

import "github.com/ajroetker/go-pairwise/kernels/dispatch"

// Dot computes the dot product Σ a[i]·b[i].
//
// If the slices have different lengths, the computation uses the minimum length.
// Returns 0 if either slice is empty.
//
// Example:
//
//	a := []float64{1, 2, 3}
//	b := []float64{4, 5, 6}
//	result := Dot(a, b)  // 1*4 + 2*5 + 3*6 = 32
func Dot(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	a, b = a[:n], b[:n]
	switch lanes := dispatch.Lanes64(); {
	case lanes >= 8:
		return dot8(a, b)
	case lanes >= 4:
		return dot4(a, b)
	default:
		return dot2(a, b)
	}
}

func dot2(a, b []float64) float64 {
	var s0, s1 float64
	n := len(a)
	var i int
	for i = 0; i+2 <= n; i += 2 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return s0 + s1
}

func dot4(a, b []float64) float64 {
	var s0, s1, s2, s3 float64
	n := len(a)
	var i int
	for i = 0; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}

func dot8(a, b []float64) float64 {
	var s0, s1, s2, s3, s4, s5, s6, s7 float64
	n := len(a)
	var i int
	for i = 0; i+8 <= n; i += 8 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
		s4 += a[i+4] * b[i+4]
		s5 += a[i+5] * b[i+5]
		s6 += a[i+6] * b[i+6]
		s7 += a[i+7] * b[i+7]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return ((s0 + s1) + (s2 + s3)) + ((s4 + s5) + (s6 + s7))
}
