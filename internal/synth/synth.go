// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Package synth generates seeded synthetic inputs for the kernels: random
// particle clouds, nucleotide sequences and sample matrices. The same seed
// always yields the same input, so thread-count sweeps compare like with like.
package synth

import (
	"math/rand/v2"

	"github.com/ajroetker/go-pairwise/kernels/contrib/nbody"
	"github.com/ajroetker/go-pairwise/kernels/contrib/vec"
)

// Nucleotides is the alphabet Sequence draws from.
const Nucleotides = "ACGT"

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Particles returns n particles placed uniformly in the cube [0, side)³
// with zero forces.
func Particles(n int, side float64, seed uint64) []nbody.Particle {
	r := newRand(seed)
	ps := make([]nbody.Particle, n)
	for i := range ps {
		ps[i].X = r.Float64() * side
		ps[i].Y = r.Float64() * side
		ps[i].Z = r.Float64() * side
	}
	return ps
}

// Lattice returns side³ particles on a cubic lattice with the given spacing,
// each displaced by up to ±jitter per axis. Keeping jitter well below
// spacing bounds the closest approach, which keeps forces moderate.
func Lattice(side int, spacing, jitter float64, seed uint64) []nbody.Particle {
	r := newRand(seed)
	ps := make([]nbody.Particle, 0, side*side*side)
	for x := range side {
		for y := range side {
			for z := range side {
				ps = append(ps, nbody.Particle{
					X: float64(x)*spacing + (2*r.Float64()-1)*jitter,
					Y: float64(y)*spacing + (2*r.Float64()-1)*jitter,
					Z: float64(z)*spacing + (2*r.Float64()-1)*jitter,
				})
			}
		}
	}
	return ps
}

// Sequence returns n symbols drawn uniformly from Nucleotides.
func Sequence(n int, seed uint64) []byte {
	r := newRand(seed)
	s := make([]byte, n)
	for i := range s {
		s[i] = Nucleotides[r.IntN(len(Nucleotides))]
	}
	return s
}

// Matrix returns an ny×nx row-major matrix of samples uniform in [0, 1).
func Matrix[T vec.Floats](ny, nx int, seed uint64) []T {
	r := newRand(seed)
	m := make([]T, ny*nx)
	for i := range m {
		m[i] = T(r.Float64())
	}
	return m
}
