// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// trial runs one kernel invocation on pool. Setup that must not be timed
// (fresh grids, zeroed buffers) happens inside trial before the clock
// starts; trial reports the timed portion and a short result summary.
type trial func(pool *workerpool.Pool) (result string, elapsed time.Duration, err error)

// workload describes what one trial computes, for the throughput column.
type workload struct {
	title string
	units float64
	unit  string
}

type sample struct {
	threads int
	mean    float64
	stddev  float64
	result  string
}

// sweep runs t once untimed and then repeat times for every thread count,
// each on a fresh pool.
func sweep(threads []int, repeat int, t trial) ([]sample, error) {
	samples := make([]sample, 0, len(threads))
	for _, n := range threads {
		s, err := measure(n, repeat, t)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

func measure(threads, repeat int, t trial) (sample, error) {
	pool := workerpool.New(threads)
	defer pool.Close()

	if _, _, err := t(pool); err != nil {
		return sample{}, fmt.Errorf("warm-up with %d threads: %w", threads, err)
	}

	s := sample{threads: threads}
	times := make([]float64, repeat)
	for r := range repeat {
		result, elapsed, err := t(pool)
		if err != nil {
			return sample{}, fmt.Errorf("run %d with %d threads: %w", r, threads, err)
		}
		times[r] = elapsed.Seconds()
		s.result = result
	}
	if repeat > 1 {
		s.mean, s.stddev = stat.MeanStdDev(times, nil)
	} else {
		s.mean = times[0]
	}
	return s, nil
}

// timed runs fn and returns how long it took.
func timed(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}
