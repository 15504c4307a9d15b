// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package wavefront_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-pairwise/internal/synth"
	"github.com/ajroetker/go-pairwise/kernels/contrib/wavefront"
	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// referenceMatrix fills H row by row on one goroutine.
func referenceMatrix(a, b []byte, sc wavefront.Scoring) [][]int32 {
	h := make([][]int32, len(a)+1)
	for i := range h {
		h[i] = make([]int32, len(b)+1)
	}
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			s := sc.Mismatch
			if a[i-1] == b[j-1] {
				s = sc.Match
			}
			h[i][j] = max(0, h[i-1][j-1]+int32(s), h[i-1][j]+int32(sc.Gap), h[i][j-1]+int32(sc.Gap))
		}
	}
	return h
}

func referenceScore(a, b []byte, sc wavefront.Scoring) int {
	var best int32
	for _, row := range referenceMatrix(a, b, sc) {
		best = max(best, slices.Max(row))
	}
	return int(best)
}

func TestAlignPerfectMatch(t *testing.T) {
	for _, threads := range []int{1, 2, 4} {
		score, err := wavefront.Align([]byte("ACGT"), []byte("ACGT"), threads)
		require.NoError(t, err)
		assert.Equal(t, 8, score)
	}
}

func TestAlignEmpty(t *testing.T) {
	score, err := wavefront.Align(nil, []byte("ACGT"), 2)
	require.NoError(t, err)
	assert.Zero(t, score)

	pool := workerpool.New(2)
	defer pool.Close()
	opts := wavefront.DefaultOptions()
	opts.ReturnMatrix = true
	res, err := wavefront.AlignWithOptions(pool, []byte("ACGT"), nil, opts)
	require.NoError(t, err)
	assert.Zero(t, res.Score)
	assert.Len(t, res.Matrix, 5)
	assert.Equal(t, []int32{0}, res.Matrix[4])
}

func TestAlignMatchesReference(t *testing.T) {
	a := synth.Sequence(173, 1)
	b := synth.Sequence(241, 2)
	sc := wavefront.DefaultScoring()
	want := referenceScore(a, b, sc)

	modes := []wavefront.MemoryMode{wavefront.FullMatrix, wavefront.Diagonals}
	scheds := []workerpool.Schedule{workerpool.Static, workerpool.Dynamic, workerpool.Guided}
	for _, mode := range modes {
		for _, sched := range scheds {
			for _, threads := range []int{1, 2, 3, 8} {
				t.Run(fmt.Sprintf("mode=%d/%s/threads=%d", mode, sched, threads), func(t *testing.T) {
					pool := workerpool.New(threads)
					defer pool.Close()

					opts := wavefront.DefaultOptions()
					opts.MemoryMode = mode
					opts.Schedule = sched
					opts.Chunk = 5
					opts.MinParallelCells = 1 // hand every wave to the pool
					res, err := wavefront.AlignWithOptions(pool, a, b, opts)
					require.NoError(t, err)
					assert.Equal(t, want, res.Score)
				})
			}
		}
	}
}

func TestAlignReturnMatrix(t *testing.T) {
	a, b := synth.Sequence(40, 5), synth.Sequence(33, 6)
	pool := workerpool.New(4)
	defer pool.Close()

	opts := wavefront.DefaultOptions()
	opts.ReturnMatrix = true
	opts.MinParallelCells = 1
	res, err := wavefront.AlignWithOptions(pool, a, b, opts)
	require.NoError(t, err)

	want := referenceMatrix(a, b, opts.Scoring)
	assert.Equal(t, want, res.Matrix)
	for j := range res.Matrix[0] {
		assert.Zero(t, res.Matrix[0][j])
	}
	for i := range res.Matrix {
		assert.Zero(t, res.Matrix[i][0])
	}
	assert.Equal(t, int32(res.Score), res.Matrix[res.EndI][res.EndJ])
}

func TestAlignTieBreak(t *testing.T) {
	pool := workerpool.New(3)
	defer pool.Close()
	opts := wavefront.DefaultOptions()
	opts.MinParallelCells = 1

	// H[1][1] and H[2][1] both score 2; the earlier anti-diagonal wins.
	res, err := wavefront.AlignWithOptions(pool, []byte("AA"), []byte("A"), opts)
	require.NoError(t, err)
	assert.Equal(t, wavefront.Result{Score: 2, EndI: 1, EndJ: 1}, res)

	// Same wave, different i: (1,2) and (2,1) on wave 3 both score 2.
	res, err = wavefront.AlignWithOptions(pool, []byte("CA"), []byte("AC"), opts)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Score)
	assert.Equal(t, 1, res.EndI)
	assert.Equal(t, 2, res.EndJ)
}

func TestAlignMonotoneUnderExtension(t *testing.T) {
	a, b := []byte("ACGT"), []byte("ACGT")
	base, err := wavefront.Align(a, b, 2)
	require.NoError(t, err)
	extended, err := wavefront.Align(append(slices.Clone(a), 'A'), append(slices.Clone(b), 'A'), 2)
	require.NoError(t, err)
	assert.Equal(t, 10, extended)
	assert.GreaterOrEqual(t, extended, base)

	x, y := synth.Sequence(60, 10), synth.Sequence(70, 11)
	prev, err := wavefront.Align(x, y, 3)
	require.NoError(t, err)
	for _, c := range []byte("ACGT") {
		got, err := wavefront.Align(append(slices.Clone(x), c), y, 3)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, prev)
	}
}

func TestAlignCustomScoring(t *testing.T) {
	a, b := synth.Sequence(80, 20), synth.Sequence(90, 21)
	sc := wavefront.Scoring{Match: 3, Mismatch: -2, Gap: -2}

	pool := workerpool.New(4)
	defer pool.Close()
	opts := wavefront.DefaultOptions()
	opts.Scoring = sc
	opts.MemoryMode = wavefront.Diagonals
	opts.MinParallelCells = 1
	res, err := wavefront.AlignWithOptions(pool, a, b, opts)
	require.NoError(t, err)
	assert.Equal(t, referenceScore(a, b, sc), res.Score)
}

func TestAlignDoesNotMutateInputs(t *testing.T) {
	a, b := synth.Sequence(50, 1), synth.Sequence(50, 2)
	ca, cb := slices.Clone(a), slices.Clone(b)
	_, err := wavefront.Align(a, b, 4)
	require.NoError(t, err)
	assert.Equal(t, ca, a)
	assert.Equal(t, cb, b)
}

func TestAlignErrors(t *testing.T) {
	_, err := wavefront.Align(nil, nil, 0)
	assert.ErrorIs(t, err, wavefront.ErrBadThreads)

	_, err = wavefront.AlignWithOptions(nil, nil, nil, wavefront.DefaultOptions())
	assert.ErrorIs(t, err, wavefront.ErrNilPool)

	pool := workerpool.New(2)
	defer pool.Close()

	opts := wavefront.DefaultOptions()
	opts.MemoryMode = wavefront.Diagonals
	opts.ReturnMatrix = true
	_, err = wavefront.AlignWithOptions(pool, nil, nil, opts)
	assert.ErrorIs(t, err, wavefront.ErrMatrixNeedsFull)

	opts = wavefront.DefaultOptions()
	opts.MemoryMode = wavefront.MemoryMode(7)
	_, err = wavefront.AlignWithOptions(pool, nil, nil, opts)
	assert.ErrorIs(t, err, wavefront.ErrUnknownMemoryMode)

	opts = wavefront.DefaultOptions()
	opts.Strict = true
	_, err = wavefront.AlignWithOptions(pool, []byte("ACGU"), []byte("A"), opts)
	assert.ErrorIs(t, err, wavefront.ErrInvalidSymbol)
	assert.ErrorContains(t, err, "'U' at 3")
}

func TestParseMemoryMode(t *testing.T) {
	for _, m := range []wavefront.MemoryMode{wavefront.FullMatrix, wavefront.Diagonals} {
		got, err := wavefront.ParseMemoryMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	assert.Equal(t, "MemoryMode(7)", wavefront.MemoryMode(7).String())
	_, err := wavefront.ParseMemoryMode("rows")
	assert.ErrorIs(t, err, wavefront.ErrUnknownMemoryMode)
}
