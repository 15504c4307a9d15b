// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package wavefront

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// Scoring holds the substitution and gap scores.
type Scoring struct {
	Match    int
	Mismatch int
	Gap      int
}

// DefaultScoring returns match +2, mismatch −1, gap −1.
func DefaultScoring() Scoring {
	return Scoring{Match: 2, Mismatch: -1, Gap: -1}
}

// MemoryMode selects how much of H is kept.
type MemoryMode int

const (
	// FullMatrix stores all (n+1)×(m+1) cells.
	FullMatrix MemoryMode = iota

	// Diagonals stores three rolling anti-diagonals.
	Diagonals
)

func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case Diagonals:
		return "diagonals"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// ParseMemoryMode maps "full" or "diagonals" to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "full":
		return FullMatrix, nil
	case "diagonals":
		return Diagonals, nil
	}
	return FullMatrix, fmt.Errorf("%w: %q", ErrUnknownMemoryMode, s)
}

// DefaultMinParallelCells is the shortest wave handed to the pool.
const DefaultMinParallelCells = 256

// Options configures AlignWithOptions.
type Options struct {
	Scoring    Scoring
	MemoryMode MemoryMode

	// ReturnMatrix copies H into Result.Matrix. Requires FullMatrix.
	ReturnMatrix bool

	// Strict rejects symbols outside the ACGT alphabet.
	Strict bool

	// Schedule distributes the cells of one wave.
	Schedule workerpool.Schedule

	// Chunk is the batch size for Dynamic and the minimum chunk for Guided.
	Chunk int

	// MinParallelCells is the shortest wave run on the pool; shorter waves
	// run on the calling goroutine.
	MinParallelCells int
}

// DefaultOptions returns default scoring, full matrix storage, a static
// schedule and DefaultMinParallelCells.
func DefaultOptions() Options {
	return Options{
		Scoring:          DefaultScoring(),
		MemoryMode:       FullMatrix,
		Schedule:         workerpool.Static,
		Chunk:            64,
		MinParallelCells: DefaultMinParallelCells,
	}
}

// Result is the outcome of an alignment.
type Result struct {
	// Score is the maximum cell value of H, 0 when either sequence is empty.
	Score int

	// EndI, EndJ locate the maximum cell. Ties go to the smallest
	// anti-diagonal, then the smallest i. Both are 0 when Score is 0.
	EndI, EndJ int

	// Matrix is H, row-major (n+1)×(m+1), when Options.ReturnMatrix is set.
	Matrix [][]int32
}

var (
	// ErrBadThreads indicates a thread count below one.
	ErrBadThreads = errors.New("wavefront: thread count must be >= 1")

	// ErrNilPool indicates a nil worker pool.
	ErrNilPool = errors.New("wavefront: nil worker pool")

	// ErrMatrixNeedsFull indicates ReturnMatrix without FullMatrix mode.
	ErrMatrixNeedsFull = errors.New("wavefront: ReturnMatrix requires MemoryMode=FullMatrix")

	// ErrUnknownMemoryMode indicates a MemoryMode outside the defined set.
	ErrUnknownMemoryMode = errors.New("wavefront: unknown memory mode")

	// ErrInvalidSymbol indicates a symbol outside the nucleotide alphabet.
	ErrInvalidSymbol = errors.New("wavefront: symbol outside ACGT alphabet")
)
