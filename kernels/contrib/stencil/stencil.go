// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package stencil

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

var (
	// ErrBadThreads indicates a thread count below one.
	ErrBadThreads = errors.New("stencil: thread count must be >= 1")

	// ErrNilPool indicates a nil worker pool.
	ErrNilPool = errors.New("stencil: nil worker pool")

	// ErrNilGrid indicates a nil grid.
	ErrNilGrid = errors.New("stencil: nil grid")

	// ErrBadSize indicates a grid edge below one or a non-square field.
	ErrBadSize = errors.New("stencil: grid must be square with n >= 1")

	// ErrBadSteps indicates a negative step count.
	ErrBadSteps = errors.New("stencil: steps must be >= 0")

	// ErrBadTile indicates a tile edge below one.
	ErrBadTile = errors.New("stencil: tile size must be >= 1")
)

// DefaultTile is the tile edge used when Options.Tile is unset.
const DefaultTile = 64

// Options configures RunWithOptions.
type Options struct {
	// Steps is the number of Jacobi steps.
	Steps int

	// Tile is the tile edge length; 0 selects DefaultTile.
	Tile int

	// Schedule distributes tiles across workers.
	Schedule workerpool.Schedule

	// Chunk is the batch size for Dynamic and the minimum chunk for Guided.
	Chunk int

	// OnStep, if set, is called on the calling goroutine after every step
	// with the step index and the sum of that step's new interior values.
	OnStep func(step int, heat float64)
}

// Run advances g by steps Jacobi steps over tiles of edge tile using
// threads workers and returns the sum of every interior value computed
// across all steps.
func Run(g *Grid, steps, tile, threads int) (float64, error) {
	if threads < 1 {
		return 0, fmt.Errorf("Run(threads=%d): %w", threads, ErrBadThreads)
	}
	if tile < 1 {
		return 0, fmt.Errorf("Run(tile=%d): %w", tile, ErrBadTile)
	}
	pool := workerpool.New(threads)
	defer pool.Close()
	return RunWithOptions(pool, g, Options{Steps: steps, Tile: tile})
}

// RunWithOptions is Run on a caller-owned pool.
func RunWithOptions(pool *workerpool.Pool, g *Grid, opts Options) (float64, error) {
	switch {
	case pool == nil:
		return 0, ErrNilPool
	case g == nil:
		return 0, ErrNilGrid
	case opts.Steps < 0:
		return 0, fmt.Errorf("RunWithOptions(steps=%d): %w", opts.Steps, ErrBadSteps)
	case opts.Tile < 0:
		return 0, fmt.Errorf("RunWithOptions(tile=%d): %w", opts.Tile, ErrBadTile)
	}
	tile := opts.Tile
	if tile == 0 {
		tile = DefaultTile
	}

	n := g.n
	interior := max(n-2, 0)
	tilesPerSide := (interior + tile - 1) / tile
	numTiles := tilesPerSide * tilesPerSide

	var total float64
	for step := range opts.Steps {
		heat := workerpool.Reduce(pool, opts.Schedule, numTiles, opts.Chunk, 0.0,
			func(start, end int, acc float64) float64 {
				for t := start; t < end; t++ {
					i0 := 1 + (t/tilesPerSide)*tile
					j0 := 1 + (t%tilesPerSide)*tile
					acc += sweepTile(g.cur, g.next, n, i0, min(i0+tile, n-1), j0, min(j0+tile, n-1))
				}
				return acc
			},
			func(a, b float64) float64 { return a + b })
		g.swap()

		total += heat
		if opts.OnStep != nil {
			opts.OnStep(step, heat)
		}
	}
	return total, nil
}

// sweepTile updates rows [i0, i1) and columns [j0, j1) of next from cur and
// returns the sum of the new values.
func sweepTile(cur, next []float64, n, i0, i1, j0, j1 int) float64 {
	var heat float64
	for i := i0; i < i1; i++ {
		up := cur[(i-1)*n : i*n]
		row := cur[i*n : (i+1)*n]
		down := cur[(i+1)*n : (i+2)*n]
		out := next[i*n : (i+1)*n]
		for j := j0; j < j1; j++ {
			v := 0.25 * (down[j] + up[j] + row[j+1] + row[j-1])
			out[j] = v
			heat += v
		}
	}
	return heat
}
