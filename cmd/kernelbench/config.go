// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"

	"github.com/ajroetker/go-pairwise/kernels/contrib/correlate"
	"github.com/ajroetker/go-pairwise/kernels/contrib/nbody"
	"github.com/ajroetker/go-pairwise/kernels/contrib/wavefront"
	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// Config mirrors the INI file layout:
//
//	[sweep]
//	threads = 1-12
//	repeat = 3
//
//	[heat]
//	n = 2000
//	steps = 200
//	tile = 64
type Config struct {
	Sweep struct {
		Threads string
		Repeat  int
		Seed    uint64
	}
	Nbody struct {
		Particles    int
		Side         float64
		Accumulation string
	}
	Align struct {
		Length   int
		Memory   string
		Schedule string
	}
	Heat struct {
		N        int
		Steps    int
		Tile     int
		Schedule string
	}
	Correlate struct {
		Ny       int
		Nx       int
		Strategy string
	}
}

// DefaultConfig returns sizes that keep one run of each kernel in the
// range of a second on a desktop machine.
func DefaultConfig() Config {
	var c Config
	c.Sweep.Threads = "1-12"
	c.Sweep.Repeat = 1
	c.Sweep.Seed = 42

	c.Nbody.Particles = 8000
	c.Nbody.Side = 10
	c.Nbody.Accumulation = "partitioned"

	c.Align.Length = 2000
	c.Align.Memory = "full"
	c.Align.Schedule = "static"

	c.Heat.N = 2000
	c.Heat.Steps = 200
	c.Heat.Tile = 64
	c.Heat.Schedule = "static"

	c.Correlate.Ny = 1000
	c.Correlate.Nx = 1000
	c.Correlate.Strategy = "optimized"
	return c
}

// CheckInit validates every section.
func (c *Config) CheckInit() error {
	if _, err := parseThreads(c.Sweep.Threads); err != nil {
		return fmt.Errorf("[sweep] %w", err)
	}
	if c.Sweep.Repeat < 1 {
		return fmt.Errorf("[sweep] repeat must be >= 1, but is %d", c.Sweep.Repeat)
	}

	if c.Nbody.Particles < 0 {
		return fmt.Errorf("[nbody] particles must be >= 0, but is %d", c.Nbody.Particles)
	}
	if !(c.Nbody.Side > 0) {
		return fmt.Errorf("[nbody] side must be > 0, but is %g", c.Nbody.Side)
	}
	if _, err := nbody.ParseAccumulation(c.Nbody.Accumulation); err != nil {
		return fmt.Errorf("[nbody] %w", err)
	}

	if c.Align.Length < 0 {
		return fmt.Errorf("[align] length must be >= 0, but is %d", c.Align.Length)
	}
	if _, err := wavefront.ParseMemoryMode(c.Align.Memory); err != nil {
		return fmt.Errorf("[align] %w", err)
	}
	if _, err := workerpool.ParseSchedule(c.Align.Schedule); err != nil {
		return fmt.Errorf("[align] %w", err)
	}

	if c.Heat.N < 1 || c.Heat.Steps < 1 || c.Heat.Tile < 1 {
		return fmt.Errorf("[heat] n, steps and tile must be >= 1, but are %d, %d, %d",
			c.Heat.N, c.Heat.Steps, c.Heat.Tile)
	}
	if _, err := workerpool.ParseSchedule(c.Heat.Schedule); err != nil {
		return fmt.Errorf("[heat] %w", err)
	}

	if c.Correlate.Ny < 0 || c.Correlate.Nx < 0 {
		return fmt.Errorf("[correlate] ny and nx must be >= 0, but are %d, %d", c.Correlate.Ny, c.Correlate.Nx)
	}
	if _, err := correlate.ParseStrategy(c.Correlate.Strategy); err != nil {
		return fmt.Errorf("[correlate] %w", err)
	}
	return nil
}
