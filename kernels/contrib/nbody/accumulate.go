// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package nbody

import (
	"math"
	"sync/atomic"
	"unsafe"

	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// simulatePartitioned accumulates into one private 3N force array per worker
// slot and merges them per particle in a second, static pass.
func simulatePartitioned(pool *workerpool.Pool, ps []Particle, opts Options) float64 {
	n := len(ps)
	workers := pool.NumWorkers()
	forces := make([][]float64, workers)
	energies := make([]float64, workers)

	pool.ParallelForGuided(n, opts.MinChunk, func(w, start, end int) {
		f := forces[w]
		if f == nil {
			f = make([]float64, 3*n)
			forces[w] = f
		}
		var energy float64
		for i := start; i < end; i++ {
			xi, yi, zi := ps[i].X, ps[i].Y, ps[i].Z
			var fxi, fyi, fzi float64
			for j := i + 1; j < n; j++ {
				dx := xi - ps[j].X
				dy := yi - ps[j].Y
				dz := zi - ps[j].Z
				e, s := PairPotential(dx*dx + dy*dy + dz*dz + opts.Epsilon)
				energy += e

				fx, fy, fz := s*dx, s*dy, s*dz
				fxi += fx
				fyi += fy
				fzi += fz
				f[3*j] -= fx
				f[3*j+1] -= fy
				f[3*j+2] -= fz
			}
			f[3*i] += fxi
			f[3*i+1] += fyi
			f[3*i+2] += fzi
		}
		energies[w] += energy
	})

	pool.ParallelFor(n, func(_, start, end int) {
		for i := start; i < end; i++ {
			var fx, fy, fz float64
			for _, f := range forces {
				if f == nil {
					continue
				}
				fx += f[3*i]
				fy += f[3*i+1]
				fz += f[3*i+2]
			}
			ps[i].FX, ps[i].FY, ps[i].FZ = fx, fy, fz
		}
	})

	var total float64
	for _, e := range energies {
		total += e
	}
	return total
}

// simulateAtomic adds every contribution in place. Particle i's own share is
// gathered locally over the inner loop and published with one atomic add per
// field; j's share is published per pair.
func simulateAtomic(pool *workerpool.Pool, ps []Particle, opts Options) float64 {
	n := len(ps)
	return workerpool.Reduce(pool, workerpool.Guided, n, opts.MinChunk, 0.0,
		func(start, end int, energy float64) float64 {
			for i := start; i < end; i++ {
				pi := &ps[i]
				xi, yi, zi := pi.X, pi.Y, pi.Z
				var fxi, fyi, fzi float64
				for j := i + 1; j < n; j++ {
					pj := &ps[j]
					dx := xi - pj.X
					dy := yi - pj.Y
					dz := zi - pj.Z
					e, s := PairPotential(dx*dx + dy*dy + dz*dz + opts.Epsilon)
					energy += e

					fx, fy, fz := s*dx, s*dy, s*dz
					fxi += fx
					fyi += fy
					fzi += fz
					atomicAddFloat64(&pj.FX, -fx)
					atomicAddFloat64(&pj.FY, -fy)
					atomicAddFloat64(&pj.FZ, -fz)
				}
				atomicAddFloat64(&pi.FX, fxi)
				atomicAddFloat64(&pi.FY, fyi)
				atomicAddFloat64(&pi.FZ, fzi)
			}
			return energy
		},
		func(a, b float64) float64 { return a + b })
}

// atomicAddFloat64 performs *addr += delta as a single atomic
// read-modify-write. float64 fields of Particle are 8-byte aligned because
// the struct contains only float64 values.
func atomicAddFloat64(addr *float64, delta float64) {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		updated := math.Float64bits(math.Float64frombits(old) + delta)
		if atomic.CompareAndSwapUint64(bits, old, updated) {
			return
		}
	}
}
