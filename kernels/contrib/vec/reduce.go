// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package vec

// Sum returns Σ v[i] accumulated in float64. Returns 0 for an empty slice.
func Sum[T Floats](v []T) float64 {
	var s0, s1, s2, s3 float64
	n := len(v)
	var i int
	for i = 0; i+4 <= n; i += 4 {
		s0 += float64(v[i])
		s1 += float64(v[i+1])
		s2 += float64(v[i+2])
		s3 += float64(v[i+3])
	}
	for ; i < n; i++ {
		s0 += float64(v[i])
	}
	return (s0 + s1) + (s2 + s3)
}

// CenterInto writes src[i]-mean into dst and returns Σ (src[i]-mean)².
// dst must be at least as long as src.
func CenterInto[T Floats](dst []float64, src []T, mean float64) float64 {
	dst = dst[:len(src)]
	var ss float64
	for i, x := range src {
		c := float64(x) - mean
		dst[i] = c
		ss += c * c
	}
	return ss
}

// MeanVar returns the mean and the population variance (divided by len(v))
// of v using two passes over the data. The centered second pass keeps
// constant rows at exactly zero variance when the mean is exact, and within
// a few ulps of mean² otherwise.
// Returns (0, 0) for an empty slice.
func MeanVar[T Floats](v []T) (mean, variance float64) {
	if len(v) == 0 {
		return 0, 0
	}
	n := float64(len(v))
	mean = Sum(v) / n
	var ss float64
	for _, x := range v {
		c := float64(x) - mean
		ss += c * c
	}
	return mean, ss / n
}
