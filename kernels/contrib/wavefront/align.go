// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package wavefront

import (
	"fmt"

	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// Align returns the best local-alignment score of a and b under
// DefaultScoring, computing anti-diagonals with threads workers.
// Neither sequence is modified.
func Align(a, b []byte, threads int) (int, error) {
	if threads < 1 {
		return 0, fmt.Errorf("Align(threads=%d): %w", threads, ErrBadThreads)
	}
	pool := workerpool.New(threads)
	defer pool.Close()

	opts := DefaultOptions()
	opts.MemoryMode = Diagonals
	res, err := AlignWithOptions(pool, a, b, opts)
	if err != nil {
		return 0, err
	}
	return res.Score, nil
}

// AlignWithOptions aligns a and b on a caller-owned pool.
func AlignWithOptions(pool *workerpool.Pool, a, b []byte, opts Options) (Result, error) {
	if pool == nil {
		return Result{}, ErrNilPool
	}
	switch opts.MemoryMode {
	case FullMatrix, Diagonals:
	default:
		return Result{}, fmt.Errorf("AlignWithOptions(%s): %w", opts.MemoryMode, ErrUnknownMemoryMode)
	}
	if opts.ReturnMatrix && opts.MemoryMode != FullMatrix {
		return Result{}, ErrMatrixNeedsFull
	}
	if opts.Strict {
		if err := ValidateNucleotides(a); err != nil {
			return Result{}, fmt.Errorf("AlignWithOptions(a): %w", err)
		}
		if err := ValidateNucleotides(b); err != nil {
			return Result{}, fmt.Errorf("AlignWithOptions(b): %w", err)
		}
	}

	k := newKernel(pool, a, b, opts)
	k.run()
	return k.result(), nil
}

// ValidateNucleotides reports the first symbol of seq outside A, C, G, T.
func ValidateNucleotides(seq []byte) error {
	for idx, c := range seq {
		switch c {
		case 'A', 'C', 'G', 'T':
		default:
			return fmt.Errorf("%w: %q at %d", ErrInvalidSymbol, c, idx)
		}
	}
	return nil
}

// cell is a candidate maximum. Ordering: higher score first, then smaller
// wave, then smaller i.
type cell struct {
	score int32
	wave  int
	i     int
}

func (c cell) better(o cell) bool {
	if c.score != o.score {
		return c.score > o.score
	}
	if c.wave != o.wave {
		return c.wave < o.wave
	}
	return c.i < o.i
}

type kernel struct {
	pool *workerpool.Pool
	a, b []byte
	n, m int
	opts Options

	match, mismatch, gap int32

	// FullMatrix storage, row-major with stride m+1.
	h []int32

	// Diagonals storage, indexed by i; wave w lives in diags[w%3].
	diags [3][]int32

	// best holds one candidate per worker slot.
	best []cell
}

func newKernel(pool *workerpool.Pool, a, b []byte, opts Options) *kernel {
	k := &kernel{
		pool:     pool,
		a:        a,
		b:        b,
		n:        len(a),
		m:        len(b),
		opts:     opts,
		match:    int32(opts.Scoring.Match),
		mismatch: int32(opts.Scoring.Mismatch),
		gap:      int32(opts.Scoring.Gap),
		best:     make([]cell, pool.NumWorkers()),
	}
	if opts.MemoryMode == FullMatrix {
		k.h = make([]int32, (k.n+1)*(k.m+1))
	} else {
		for d := range k.diags {
			k.diags[d] = make([]int32, k.n+1)
		}
	}
	return k
}

func (k *kernel) sub(i, j int) int32 {
	if k.a[i-1] == k.b[j-1] {
		return k.match
	}
	return k.mismatch
}

func (k *kernel) run() {
	n, m := k.n, k.m
	minPar := max(k.opts.MinParallelCells, 1)

	for w := 2; w <= n+m; w++ {
		lo, hi := max(1, w-m), min(n, w-1)
		cells := hi - lo + 1
		if cells <= 0 {
			continue
		}

		var body func(slot, start, end int)
		if k.opts.MemoryMode == FullMatrix {
			body = k.fullWave(w, lo)
		} else {
			body = k.diagonalWave(w, lo)
		}

		if cells < minPar {
			body(0, 0, cells)
			continue
		}
		k.pool.Run(k.opts.Schedule, cells, k.opts.Chunk, body)
	}
}

// fullWave returns the loop body computing cells lo+start..lo+end-1 of wave w in H.
func (k *kernel) fullWave(w, lo int) func(slot, start, end int) {
	return func(slot, start, end int) {
		h, s := k.h, k.m+1
		local := k.best[slot]
		for i := lo + start; i < lo+end; i++ {
			j := w - i
			v := max(0,
				h[(i-1)*s+j-1]+k.sub(i, j),
				h[(i-1)*s+j]+k.gap,
				h[i*s+j-1]+k.gap)
			h[i*s+j] = v
			if v > local.score {
				local = cell{score: v, wave: w, i: i}
			}
		}
		k.best[slot] = local
	}
}

// diagonalWave is fullWave over three rolling anti-diagonals. On wave w,
// H[i][j] lives at cur[i], H[i-1][j] and H[i][j-1] at prev1[i-1] and
// prev1[i], H[i-1][j-1] at prev2[i-1].
func (k *kernel) diagonalWave(w, lo int) func(slot, start, end int) {
	cur, prev1, prev2 := k.diags[w%3], k.diags[(w-1)%3], k.diags[(w-2)%3]

	// The buffer last held wave w-3; re-establish the boundary cells
	// H[0][w] and H[w][0] that later waves read.
	cur[0] = 0
	if w <= k.n {
		cur[w] = 0
	}

	return func(slot, start, end int) {
		local := k.best[slot]
		for i := lo + start; i < lo+end; i++ {
			j := w - i
			v := max(0,
				prev2[i-1]+k.sub(i, j),
				prev1[i-1]+k.gap,
				prev1[i]+k.gap)
			cur[i] = v
			if v > local.score {
				local = cell{score: v, wave: w, i: i}
			}
		}
		k.best[slot] = local
	}
}

func (k *kernel) result() Result {
	var top cell
	for _, c := range k.best {
		if c.score > 0 && (top.score == 0 || c.better(top)) {
			top = c
		}
	}

	res := Result{Score: int(top.score)}
	if top.score > 0 {
		res.EndI, res.EndJ = top.i, top.wave-top.i
	}
	if k.opts.ReturnMatrix {
		s := k.m + 1
		res.Matrix = make([][]int32, k.n+1)
		for i := range res.Matrix {
			res.Matrix[i] = k.h[i*s : (i+1)*s : (i+1)*s]
		}
	}
	return res
}
