// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides a persistent, reusable worker pool with the
// loop schedules the pairwise kernels need. A Pool is created once with an
// explicit worker count and reused for every parallel region of a run, so
// kernels with many short regions (one per wavefront, one per stencil step)
// do not pay goroutine spawn costs per region.
//
// Every loop body receives a worker slot in [0, NumWorkers()). Within one
// call, a slot is never handed to two goroutines at once, so bodies can keep
// private partial results indexed by slot and combine them after the call
// returns. Each call blocks until all of its work has completed, which makes
// consecutive calls a barrier.
//
// Usage:
//
//	pool := workerpool.New(threads)
//	defer pool.Close()
//
//	partial := make([]float64, pool.NumWorkers())
//	pool.ParallelForGuided(n, 1, func(worker, start, end int) {
//	    for i := start; i < end; i++ {
//	        partial[worker] += work(i)
//	    }
//	})
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a persistent worker pool. Workers are spawned at creation and
// live until Close is called.
type Pool struct {
	numWorkers int
	workC      chan workItem
	closeOnce  sync.Once
	closed     atomic.Bool
}

// workItem is one slot's share of a parallel region.
type workItem struct {
	fn      func()
	barrier *sync.WaitGroup
}

// New creates a pool with numWorkers persistent workers.
// If numWorkers <= 0, uses GOMAXPROCS.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan workItem, numWorkers*2),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	for item := range p.workC {
		item.fn()
		item.barrier.Done()
	}
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close shuts down the pool. Pending work completes first.
// Calling Close multiple times is safe.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// sequential reports whether a region over n items should run inline on the
// caller goroutine as slot 0.
func (p *Pool) sequential(n int) bool {
	return p.closed.Load() || min(p.numWorkers, n) == 1
}

// dispatch hands body to `workers` slots and waits for all of them.
func (p *Pool) dispatch(workers int, body func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := range workers {
		p.workC <- workItem{
			fn:      func() { body(w) },
			barrier: &wg,
		}
	}
	wg.Wait()
}

// ParallelFor executes fn over [0, n) split into one contiguous chunk per
// worker (a static schedule). Blocks until all work completes.
func (p *Pool) ParallelFor(n int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential(n) {
		fn(0, 0, n)
		return
	}

	workers := min(p.numWorkers, n)
	chunkSize := (n + workers - 1) / workers
	p.dispatch(workers, func(w int) {
		start := w * chunkSize
		if start >= n {
			return
		}
		fn(w, start, min(start+chunkSize, n))
	})
}

// ParallelForDynamic executes fn over [0, n) in fixed batches handed out by
// an atomic counter (a dynamic schedule). Use it when the cost per index
// varies and the variation has no simple shape. Blocks until all work
// completes.
func (p *Pool) ParallelForDynamic(n, batchSize int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	numBatches := (n + batchSize - 1) / batchSize
	if p.sequential(numBatches) {
		fn(0, 0, n)
		return
	}

	var nextBatch atomic.Int64
	p.dispatch(min(p.numWorkers, numBatches), func(w int) {
		for {
			start := int(nextBatch.Add(1)-1) * batchSize
			if start >= n {
				return
			}
			fn(w, start, min(start+batchSize, n))
		}
	})
}

// ParallelForGuided executes fn over [0, n) in chunks that shrink as the
// remaining work shrinks: each grab takes max(minChunk, remaining/(2·workers))
// indices. Early, large chunks amortize scheduling; late, small chunks let
// idle workers even out the tail. This suits triangular loops where index i
// costs about n-i units. Blocks until all work completes.
func (p *Pool) ParallelForGuided(n, minChunk int, fn func(worker, start, end int)) {
	if n <= 0 {
		return
	}
	if p.sequential(n) {
		fn(0, 0, n)
		return
	}

	workers := min(p.numWorkers, n)
	minChunk = max(minChunk, 1)
	total := int64(n)
	var next atomic.Int64
	p.dispatch(workers, func(w int) {
		for {
			cur := next.Load()
			if cur >= total {
				return
			}
			size := max(int64(minChunk), (total-cur)/int64(2*workers))
			end := min(cur+size, total)
			if next.CompareAndSwap(cur, end) {
				fn(w, int(cur), int(end))
			}
		}
	})
}
