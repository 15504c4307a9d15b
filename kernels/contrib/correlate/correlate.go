// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package correlate

import (
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-pairwise/kernels/contrib/vec"
	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// Strategy selects the implementation tier.
type Strategy int

const (
	// Baseline is the single-goroutine five-sum formula.
	Baseline Strategy = iota

	// Partitioned is the five-sum formula over a balanced split of the triangle.
	Partitioned

	// Optimized is the normalized, blocked, vectorizable tier.
	Optimized
)

// String returns the name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case Baseline:
		return "baseline"
	case Partitioned:
		return "partitioned"
	case Optimized:
		return "optimized"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "baseline", "partitioned" or "optimized" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for _, st := range []Strategy{Baseline, Partitioned, Optimized} {
		if st.String() == s {
			return st, nil
		}
	}
	return Baseline, fmt.Errorf("%w: %q", ErrUnknownStrategy, s)
}

var (
	// ErrBadThreads indicates a thread count below one.
	ErrBadThreads = errors.New("correlate: thread count must be >= 1")

	// ErrNilPool indicates a nil worker pool.
	ErrNilPool = errors.New("correlate: nil worker pool")

	// ErrBadSize indicates a negative dimension.
	ErrBadSize = errors.New("correlate: dimensions must be >= 0")

	// ErrDimensionMismatch indicates a buffer whose length disagrees with ny, nx.
	ErrDimensionMismatch = errors.New("correlate: buffer length does not match dimensions")

	// ErrUnknownStrategy indicates a Strategy outside the defined set.
	ErrUnknownStrategy = errors.New("correlate: unknown strategy")
)

// DefaultBlockBytes is the working-set target for one block of rows in the
// Optimized tier.
const DefaultBlockBytes = 64 << 10

// Options configures CorrelateWithOptions.
type Options struct {
	Strategy Strategy

	// BlockRows is the edge of the row blocks used by Optimized. 0 derives
	// it from DefaultBlockBytes and nx.
	BlockRows int
}

// Correlate writes the lower triangle of the row correlation matrix of the
// ny×nx row-major data into the ny×ny result using threads workers.
// data is not modified. Baseline ignores threads beyond validation.
func Correlate[T vec.Floats](ny, nx int, data, result []T, strategy Strategy, threads int) error {
	if threads < 1 {
		return fmt.Errorf("Correlate(threads=%d): %w", threads, ErrBadThreads)
	}
	pool := workerpool.New(threads)
	defer pool.Close()
	return CorrelateWithOptions(pool, ny, nx, data, result, Options{Strategy: strategy})
}

// CorrelateWithOptions is Correlate on a caller-owned pool.
func CorrelateWithOptions[T vec.Floats](pool *workerpool.Pool, ny, nx int, data, result []T, opts Options) error {
	if err := validate(pool, ny, nx, len(data), len(result), opts); err != nil {
		return err
	}

	if nx == 0 {
		// No samples: every pair is degenerate.
		for i := range ny {
			clear(result[i*ny : i*ny+i+1])
		}
		return nil
	}

	switch opts.Strategy {
	case Baseline:
		correlateBaseline(ny, nx, data, result)
	case Partitioned:
		correlatePartitioned(pool, ny, nx, data, result)
	case Optimized:
		correlateOptimized(pool, ny, nx, data, result, opts.BlockRows)
	}
	return nil
}

func validate(pool *workerpool.Pool, ny, nx, dataLen, resultLen int, opts Options) error {
	switch {
	case pool == nil:
		return ErrNilPool
	case ny < 0 || nx < 0:
		return fmt.Errorf("Correlate(ny=%d, nx=%d): %w", ny, nx, ErrBadSize)
	case dataLen != ny*nx:
		return fmt.Errorf("Correlate(data has %d values, want %d): %w", dataLen, ny*nx, ErrDimensionMismatch)
	case resultLen != ny*ny:
		return fmt.Errorf("Correlate(result has %d values, want %d): %w", resultLen, ny*ny, ErrDimensionMismatch)
	case opts.BlockRows < 0:
		return fmt.Errorf("Correlate(blockRows=%d): %w", opts.BlockRows, ErrBadSize)
	}
	switch opts.Strategy {
	case Baseline, Partitioned, Optimized:
		return nil
	}
	return fmt.Errorf("Correlate(%s): %w", opts.Strategy, ErrUnknownStrategy)
}

// Mirror copies the lower triangle of the ny×ny matrix m onto the upper one.
func Mirror[T vec.Floats](ny int, m []T) {
	for i := range ny {
		for j := range i {
			m[j*ny+i] = m[i*ny+j]
		}
	}
}

// clamp limits rounding overshoot to [−1, 1].
func clamp(r float64) float64 {
	return max(-1, min(1, r))
}

// eps is the float64 unit roundoff.
const eps = 0x1p-53

// rowStats returns the two-pass mean and population variance of row and
// whether the row counts as constant: its variance is no larger than the
// rounding error of centering len(row) values around mean. A row of equal
// values that are not exact in binary, such as 0.7, lands here even though
// its computed variance is a tiny positive number.
func rowStats[T vec.Floats](row []T) (mean, variance float64, constant bool) {
	mean, variance = vec.MeanVar(row)
	bound := 4 * float64(len(row)) * eps * mean
	return mean, variance, variance <= bound*bound
}

// constantRows flags every constant row of data for rows [start, end).
func constantRows[T vec.Floats](flags []bool, nx int, data []T, start, end int) {
	for i := start; i < end; i++ {
		_, _, flags[i] = rowStats(data[i*nx : (i+1)*nx])
	}
}

// pearson evaluates the five-sum formula for rows x and y. Either variance
// term at or below zero yields 0.
func pearson[T vec.Floats](x, y []T) float64 {
	var sx, sy, sxx, syy, sxy float64
	for k := range x {
		a, b := float64(x[k]), float64(y[k])
		sx += a
		sy += b
		sxx += a * a
		syy += b * b
		sxy += a * b
	}
	n := float64(len(x))
	vx, vy := n*sxx-sx*sx, n*syy-sy*sy
	if !(vx > 0 && vy > 0) {
		return 0
	}
	return clamp((n*sxy - sx*sy) / math.Sqrt(vx*vy))
}
