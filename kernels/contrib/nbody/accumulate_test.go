// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package nbody

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAtomicAddFloat64Concurrent(t *testing.T) {
	var p Particle
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				atomicAddFloat64(&p.FY, 0.5)
				atomicAddFloat64(&p.FZ, -1)
			}
		}()
	}
	wg.Wait()

	// Halves and integers are exact in float64, so the order of adds cannot matter.
	assert.Equal(t, 4000.0, p.FY)
	assert.Equal(t, -8000.0, p.FZ)
	assert.Zero(t, p.FX)
}
