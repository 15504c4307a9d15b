// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import "fmt"

// Schedule selects how a loop's index space is handed to workers.
type Schedule int

const (
	// Static splits the index space into one contiguous chunk per worker.
	Static Schedule = iota

	// Dynamic hands out fixed-size batches from a shared counter.
	Dynamic

	// Guided hands out chunks proportional to the remaining work.
	Guided
)

// String returns the schedule name as accepted by ParseSchedule.
func (s Schedule) String() string {
	switch s {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	case Guided:
		return "guided"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

// ParseSchedule maps "static", "dynamic" or "guided" to a Schedule.
func ParseSchedule(s string) (Schedule, error) {
	switch s {
	case "static":
		return Static, nil
	case "dynamic":
		return Dynamic, nil
	case "guided":
		return Guided, nil
	}
	return Static, fmt.Errorf("workerpool: unknown schedule %q", s)
}

// Run executes fn over [0, n) with the given schedule. chunk is the batch
// size for Dynamic and the minimum chunk for Guided; Static ignores it.
func (p *Pool) Run(sched Schedule, n, chunk int, fn func(worker, start, end int)) {
	switch sched {
	case Dynamic:
		p.ParallelForDynamic(n, chunk, fn)
	case Guided:
		p.ParallelForGuided(n, chunk, fn)
	default:
		p.ParallelFor(n, fn)
	}
}

// Reduce runs body over [0, n) with the given schedule and folds the
// results. Each worker slot starts from identity and threads its own
// accumulator through every range it receives; the per-slot partials are
// combined in slot order after the region. No accumulator is shared between
// goroutines.
//
// Floating-point sums folded this way depend on how ranges landed on slots,
// so results may differ in the last bits between worker counts.
func Reduce[T any](p *Pool, sched Schedule, n, chunk int, identity T,
	body func(start, end int, acc T) T, combine func(a, b T) T) T {
	partials := make([]T, p.NumWorkers())
	for i := range partials {
		partials[i] = identity
	}
	p.Run(sched, n, chunk, func(worker, start, end int) {
		partials[worker] = body(start, end, partials[worker])
	})

	acc := identity
	for _, v := range partials {
		acc = combine(acc, v)
	}
	return acc
}
