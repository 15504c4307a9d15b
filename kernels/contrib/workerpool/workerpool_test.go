// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	if pool.NumWorkers() != 4 {
		t.Errorf("NumWorkers() = %d, want 4", pool.NumWorkers())
	}
}

func TestNewDefault(t *testing.T) {
	pool := New(0)
	defer pool.Close()

	if pool.NumWorkers() != runtime.GOMAXPROCS(0) {
		t.Errorf("NumWorkers() = %d, want %d", pool.NumWorkers(), runtime.GOMAXPROCS(0))
	}
}

// coverage runs one schedule and checks every index is visited exactly once
// and every worker slot is in range.
func coverage(t *testing.T, pool *Pool, sched Schedule, n, chunk int) {
	t.Helper()
	hits := make([]atomic.Int32, n)
	var badSlot atomic.Bool
	pool.Run(sched, n, chunk, func(worker, start, end int) {
		if worker < 0 || worker >= pool.NumWorkers() {
			badSlot.Store(true)
		}
		for i := start; i < end; i++ {
			hits[i].Add(1)
		}
	})
	if badSlot.Load() {
		t.Errorf("%s: worker slot out of range", sched)
	}
	for i := range hits {
		if got := hits[i].Load(); got != 1 {
			t.Fatalf("%s n=%d: index %d visited %d times", sched, n, i, got)
		}
	}
}

func TestSchedulesCoverEveryIndexOnce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, sched := range []Schedule{Static, Dynamic, Guided} {
		for _, n := range []int{1, 2, 3, 7, 100, 1001} {
			for _, chunk := range []int{0, 1, 16} {
				coverage(t, pool, sched, n, chunk)
			}
		}
	}
}

func TestParallelForSmallN(t *testing.T) {
	pool := New(8)
	defer pool.Close()

	n := 3
	var count atomic.Int32
	pool.ParallelFor(n, func(_, start, end int) {
		count.Add(int32(end - start))
	})

	if count.Load() != int32(n) {
		t.Errorf("count = %d, want %d", count.Load(), n)
	}
}

func TestParallelForZeroN(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var called bool
	fn := func(_, _, _ int) { called = true }
	pool.ParallelFor(0, fn)
	pool.ParallelForDynamic(0, 4, fn)
	pool.ParallelForGuided(-1, 1, fn)

	if called {
		t.Error("empty loops should not call fn")
	}
}

// TestWorkerSlotsExclusive checks that no two goroutines ever hold the same
// slot inside one region, which is what makes per-slot partials safe.
func TestWorkerSlotsExclusive(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, sched := range []Schedule{Static, Dynamic, Guided} {
		inUse := make([]atomic.Int32, pool.NumWorkers())
		var clash atomic.Bool
		pool.Run(sched, 10000, 8, func(worker, start, end int) {
			if inUse[worker].Add(1) != 1 {
				clash.Store(true)
			}
			for i := start; i < end; i++ {
				_ = i * i
			}
			inUse[worker].Add(-1)
		})
		if clash.Load() {
			t.Errorf("%s: a worker slot was used concurrently", sched)
		}
	}
}

func TestGuidedChunksShrink(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	var mu sync.Mutex
	sizes := map[int]int{}
	pool.ParallelForGuided(4000, 1, func(_, start, end int) {
		mu.Lock()
		sizes[start] = end - start
		mu.Unlock()
	})

	first, last := sizes[0], 0
	for start, size := range sizes {
		if start+size == 4000 {
			last = size
		}
	}
	// The first grab takes n/(2·workers) = 500, the final one a single index.
	if first != 500 {
		t.Errorf("first chunk = %d, want 500", first)
	}
	if last >= first {
		t.Errorf("last chunk %d not smaller than first %d", last, first)
	}
}

func TestReduce(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	for _, sched := range []Schedule{Static, Dynamic, Guided} {
		sum := Reduce(pool, sched, 1000, 7, 0,
			func(start, end, acc int) int {
				for i := start; i < end; i++ {
					acc += i
				}
				return acc
			},
			func(a, b int) int { return a + b })
		if sum != 999*1000/2 {
			t.Errorf("%s: sum = %d, want %d", sched, sum, 999*1000/2)
		}

		best := Reduce(pool, sched, 1000, 7, -1,
			func(start, end, acc int) int {
				for i := start; i < end; i++ {
					acc = max(acc, (i*37)%1000)
				}
				return acc
			},
			func(a, b int) int { return max(a, b) })
		if best != 999 {
			t.Errorf("%s: max = %d, want 999", sched, best)
		}
	}
}

func TestParseSchedule(t *testing.T) {
	for _, sched := range []Schedule{Static, Dynamic, Guided} {
		got, err := ParseSchedule(sched.String())
		if err != nil || got != sched {
			t.Errorf("ParseSchedule(%q) = %v, %v", sched.String(), got, err)
		}
	}
	if _, err := ParseSchedule("runtime"); err == nil {
		t.Error("ParseSchedule(\"runtime\") should fail")
	}
}

func TestCloseMultipleTimes(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close() // Should not panic
}

func TestClosedPoolFallback(t *testing.T) {
	pool := New(4)
	pool.Close()

	n := 100
	results := make([]int, n)

	// Should still work (sequential fallback)
	pool.ParallelForGuided(n, 1, func(worker, start, end int) {
		if worker != 0 {
			t.Errorf("closed pool used slot %d", worker)
		}
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})

	for i := 0; i < n; i++ {
		if results[i] != i*2 {
			t.Errorf("results[%d] = %d, want %d", i, results[i], i*2)
		}
	}
}

func BenchmarkSchedules(b *testing.B) {
	pool := New(0)
	defer pool.Close()

	n := 4096
	for _, sched := range []Schedule{Static, Dynamic, Guided} {
		b.Run(sched.String(), func(b *testing.B) {
			for b.Loop() {
				// Triangular work: index i costs n-i.
				pool.Run(sched, n, 16, func(_, start, end int) {
					for i := start; i < end; i++ {
						for j := i; j < n; j++ {
							_ = j * i
						}
					}
				})
			}
		})
	}
}
