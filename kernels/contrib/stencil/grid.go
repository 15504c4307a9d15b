// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package stencil

import (
	"fmt"
	"slices"
)

// Grid is an N×N temperature field with two row-major buffers. The kernel
// owns both buffers while it runs; read the field between runs through At,
// Row or Snapshot.
type Grid struct {
	n    int
	cur  []float64
	next []float64
}

// NewGrid returns an n×n grid with row 0 set to hot and every other cell
// set to initial, in both buffers.
func NewGrid(n int, hot, initial float64) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewGrid(n=%d): %w", n, ErrBadSize)
	}
	g := &Grid{
		n:    n,
		cur:  make([]float64, n*n),
		next: make([]float64, n*n),
	}
	for idx := range g.cur {
		g.cur[idx] = initial
	}
	for j := range n {
		g.cur[j] = hot
	}
	copy(g.next, g.cur)
	return g, nil
}

// NewGridFrom returns a grid whose initial field is a copy of rows, which
// must be square.
func NewGridFrom(rows [][]float64) (*Grid, error) {
	n := len(rows)
	if n < 1 {
		return nil, fmt.Errorf("NewGridFrom(n=0): %w", ErrBadSize)
	}
	g := &Grid{
		n:    n,
		cur:  make([]float64, n*n),
		next: make([]float64, n*n),
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("NewGridFrom(row %d has %d cells, want %d): %w", i, len(row), n, ErrBadSize)
		}
		copy(g.cur[i*n:], row)
	}
	copy(g.next, g.cur)
	return g, nil
}

// N returns the edge length.
func (g *Grid) N() int {
	return g.n
}

// At returns the current value of cell (i, j).
func (g *Grid) At(i, j int) float64 {
	return g.cur[i*g.n+j]
}

// Row returns a copy of row i of the current field.
func (g *Grid) Row(i int) []float64 {
	return slices.Clone(g.cur[i*g.n : (i+1)*g.n])
}

// Snapshot returns a copy of the current field as rows.
func (g *Grid) Snapshot() [][]float64 {
	out := make([][]float64, g.n)
	for i := range out {
		out[i] = g.Row(i)
	}
	return out
}

// swap exchanges the roles of the two buffers.
func (g *Grid) swap() {
	g.cur, g.next = g.next, g.cur
}
