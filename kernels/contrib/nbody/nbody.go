// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package nbody

import (
	"errors"
	"fmt"

	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// Particle is a point with the force accumulated on it by the last
// Simulate call.
type Particle struct {
	X, Y, Z    float64
	FX, FY, FZ float64
}

// Accumulation selects how concurrent force contributions are combined.
type Accumulation int

const (
	// Partitioned gives every worker a private force array merged after the pair loop.
	Partitioned Accumulation = iota

	// Atomic adds forces in place with per-field atomic read-modify-write.
	Atomic
)

// String returns the strategy name.
func (a Accumulation) String() string {
	switch a {
	case Partitioned:
		return "partitioned"
	case Atomic:
		return "atomic"
	default:
		return fmt.Sprintf("Accumulation(%d)", int(a))
	}
}

// ParseAccumulation maps "partitioned" or "atomic" to an Accumulation.
func ParseAccumulation(s string) (Accumulation, error) {
	switch s {
	case "partitioned":
		return Partitioned, nil
	case "atomic":
		return Atomic, nil
	}
	return Partitioned, fmt.Errorf("%w: %q", ErrUnknownAccumulation, s)
}

// DefaultEpsilon is added to every squared distance so coincident
// particles produce a large but finite force instead of a division by zero.
const DefaultEpsilon = 1e-12

// Options configures SimulateWithOptions.
type Options struct {
	// Accumulation is the force accumulation strategy.
	Accumulation Accumulation

	// Epsilon is added to r² before inversion. Must be > 0.
	Epsilon float64

	// MinChunk is the smallest range of outer indices a worker grabs.
	MinChunk int
}

// DefaultOptions returns partitioned accumulation, DefaultEpsilon and
// single-index minimum chunks.
func DefaultOptions() Options {
	return Options{
		Accumulation: Partitioned,
		Epsilon:      DefaultEpsilon,
		MinChunk:     1,
	}
}

var (
	// ErrBadThreads indicates a thread count below one.
	ErrBadThreads = errors.New("nbody: thread count must be >= 1")

	// ErrNilPool indicates a nil worker pool.
	ErrNilPool = errors.New("nbody: nil worker pool")

	// ErrBadEpsilon indicates a non-positive distance epsilon.
	ErrBadEpsilon = errors.New("nbody: epsilon must be > 0")

	// ErrUnknownAccumulation indicates an Accumulation outside the defined set.
	ErrUnknownAccumulation = errors.New("nbody: unknown accumulation strategy")
)

// Simulate resets every particle's force, accumulates the pairwise
// Lennard-Jones forces with threads workers and returns the total potential
// energy. Forces are overwritten, never accumulated across calls.
// Positions are not modified.
func Simulate(particles []Particle, threads int) (float64, error) {
	if threads < 1 {
		return 0, fmt.Errorf("Simulate(threads=%d): %w", threads, ErrBadThreads)
	}
	pool := workerpool.New(threads)
	defer pool.Close()
	return SimulateWithOptions(pool, particles, DefaultOptions())
}

// SimulateWithOptions is Simulate on a caller-owned pool.
func SimulateWithOptions(pool *workerpool.Pool, particles []Particle, opts Options) (float64, error) {
	if pool == nil {
		return 0, ErrNilPool
	}
	if !(opts.Epsilon > 0) {
		return 0, fmt.Errorf("SimulateWithOptions(epsilon=%g): %w", opts.Epsilon, ErrBadEpsilon)
	}

	switch opts.Accumulation {
	case Partitioned, Atomic:
	default:
		return 0, fmt.Errorf("SimulateWithOptions(%s): %w", opts.Accumulation, ErrUnknownAccumulation)
	}

	resetForces(pool, particles)
	if len(particles) < 2 {
		return 0, nil
	}
	if opts.Accumulation == Atomic {
		return simulateAtomic(pool, particles, opts), nil
	}
	return simulatePartitioned(pool, particles, opts), nil
}

// PairPotential returns the 12-6 Lennard-Jones energy 4(r⁻¹² − r⁻⁶) and the
// force scale 48·r⁻²·r⁻⁶·(r⁻⁶ − ½) for a squared distance r2. The force on
// the first particle of a pair is scale·(dx, dy, dz) with d = p1 − p2.
func PairPotential(r2 float64) (energy, scale float64) {
	inv := 1.0 / r2
	r6 := inv * inv * inv
	energy = 4.0 * (r6*r6 - r6)
	scale = 48.0 * inv * r6 * (r6 - 0.5)
	return energy, scale
}

// TotalForce returns the vector sum of all particle forces. For a closed
// system after Simulate it is zero up to rounding.
func TotalForce(particles []Particle) (fx, fy, fz float64) {
	for i := range particles {
		fx += particles[i].FX
		fy += particles[i].FY
		fz += particles[i].FZ
	}
	return fx, fy, fz
}

func resetForces(pool *workerpool.Pool, particles []Particle) {
	pool.ParallelFor(len(particles), func(_, start, end int) {
		for i := start; i < end; i++ {
			p := &particles[i]
			p.FX, p.FY, p.FZ = 0, 0, 0
		}
	})
}
