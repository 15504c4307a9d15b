// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-pairwise/internal/synth"
	"github.com/ajroetker/go-pairwise/kernels/contrib/correlate"
	"github.com/ajroetker/go-pairwise/kernels/contrib/nbody"
	"github.com/ajroetker/go-pairwise/kernels/contrib/stencil"
	"github.com/ajroetker/go-pairwise/kernels/contrib/wavefront"
	"github.com/ajroetker/go-pairwise/kernels/contrib/workerpool"
)

// Heat grid boundary values.
const (
	heatSource  = 100.0
	heatInitial = 50.0
)

// runSweep parses the thread list, sweeps t and prints the table.
func (a *app) runSweep(cmd *cobra.Command, w workload, t trial) error {
	threads, err := parseThreads(a.cfg.Sweep.Threads)
	if err != nil {
		return err
	}
	samples, err := sweep(threads, a.cfg.Sweep.Repeat, t)
	if err != nil {
		return fmt.Errorf("%s: %w", cmd.Name(), err)
	}
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, machineLine()); err != nil {
		return err
	}
	return report(out, w, samples)
}

func newNbodyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nbody",
		Short: "Lennard-Jones pair interaction over N particles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg.Nbody
			accumulation, err := nbody.ParseAccumulation(c.Accumulation)
			if err != nil {
				return err
			}
			opts := nbody.DefaultOptions()
			opts.Accumulation = accumulation

			particles := synth.Particles(c.Particles, c.Side, a.cfg.Sweep.Seed)
			w := workload{
				title: fmt.Sprintf("nbody: %d particles, %s accumulation", c.Particles, accumulation),
				units: float64(c.Particles) * float64(c.Particles-1) / 2,
				unit:  "pairs",
			}
			return a.runSweep(cmd, w, func(pool *workerpool.Pool) (string, time.Duration, error) {
				var energy float64
				elapsed, err := timed(func() (err error) {
					energy, err = nbody.SimulateWithOptions(pool, particles, opts)
					return err
				})
				return fmt.Sprintf("%.6g", energy), elapsed, err
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&a.cfg.Nbody.Particles, "particles", a.cfg.Nbody.Particles, "number of particles")
	f.Float64Var(&a.cfg.Nbody.Side, "side", a.cfg.Nbody.Side, "edge of the cube particles are placed in")
	f.StringVar(&a.cfg.Nbody.Accumulation, "accumulation", a.cfg.Nbody.Accumulation, "partitioned or atomic")
	return cmd
}

func newAlignCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "align",
		Short: "Wavefront Smith-Waterman over two random nucleotide sequences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg.Align
			mode, err := wavefront.ParseMemoryMode(c.Memory)
			if err != nil {
				return err
			}
			schedule, err := workerpool.ParseSchedule(c.Schedule)
			if err != nil {
				return err
			}
			opts := wavefront.DefaultOptions()
			opts.MemoryMode = mode
			opts.Schedule = schedule

			seqA := synth.Sequence(c.Length, a.cfg.Sweep.Seed)
			seqB := synth.Sequence(c.Length, a.cfg.Sweep.Seed+1)
			w := workload{
				title: fmt.Sprintf("align: %d×%d, %s memory, %s schedule", c.Length, c.Length, mode, schedule),
				units: float64(c.Length) * float64(c.Length),
				unit:  "cells",
			}
			return a.runSweep(cmd, w, func(pool *workerpool.Pool) (string, time.Duration, error) {
				var res wavefront.Result
				elapsed, err := timed(func() (err error) {
					res, err = wavefront.AlignWithOptions(pool, seqA, seqB, opts)
					return err
				})
				return fmt.Sprintf("%d @ (%d,%d)", res.Score, res.EndI, res.EndJ), elapsed, err
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&a.cfg.Align.Length, "length", a.cfg.Align.Length, "length of both sequences")
	f.StringVar(&a.cfg.Align.Memory, "memory", a.cfg.Align.Memory, "full or diagonals")
	f.StringVar(&a.cfg.Align.Schedule, "schedule", a.cfg.Align.Schedule, "static, dynamic or guided")
	return cmd
}

func newHeatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "heat",
		Short: "Tiled Jacobi heat diffusion on an N×N grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg.Heat
			schedule, err := workerpool.ParseSchedule(c.Schedule)
			if err != nil {
				return err
			}
			opts := stencil.Options{Steps: c.Steps, Tile: c.Tile, Schedule: schedule}
			interior := float64(max(c.N-2, 0))
			w := workload{
				title: fmt.Sprintf("heat: %d×%d, %d steps, tile %d, %s schedule", c.N, c.N, c.Steps, c.Tile, schedule),
				units: interior * interior * float64(c.Steps),
				unit:  "updates",
			}
			return a.runSweep(cmd, w, func(pool *workerpool.Pool) (string, time.Duration, error) {
				g, err := stencil.NewGrid(c.N, heatSource, heatInitial)
				if err != nil {
					return "", 0, err
				}
				var heat float64
				elapsed, err := timed(func() (err error) {
					heat, err = stencil.RunWithOptions(pool, g, opts)
					return err
				})
				return fmt.Sprintf("%.6g", heat), elapsed, err
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&a.cfg.Heat.N, "n", a.cfg.Heat.N, "grid edge")
	f.IntVar(&a.cfg.Heat.Steps, "steps", a.cfg.Heat.Steps, "Jacobi steps")
	f.IntVar(&a.cfg.Heat.Tile, "tile", a.cfg.Heat.Tile, "tile edge")
	f.StringVar(&a.cfg.Heat.Schedule, "schedule", a.cfg.Heat.Schedule, "static, dynamic or guided")
	return cmd
}

func newCorrelateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "correlate",
		Short: "Pearson correlation between every pair of rows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg.Correlate
			strategy, err := correlate.ParseStrategy(c.Strategy)
			if err != nil {
				return err
			}
			opts := correlate.Options{Strategy: strategy}

			data := synth.Matrix[float32](c.Ny, c.Nx, a.cfg.Sweep.Seed)
			result := make([]float32, c.Ny*c.Ny)
			w := workload{
				title: fmt.Sprintf("correlate: %d rows × %d columns, %s", c.Ny, c.Nx, strategy),
				units: float64(c.Ny) * float64(c.Ny+1) / 2 * float64(c.Nx),
				unit:  "products",
			}
			return a.runSweep(cmd, w, func(pool *workerpool.Pool) (string, time.Duration, error) {
				elapsed, err := timed(func() error {
					return correlate.CorrelateWithOptions(pool, c.Ny, c.Nx, data, result, opts)
				})
				var trace float64
				for i := range c.Ny {
					trace += float64(result[i*c.Ny+i])
				}
				return fmt.Sprintf("trace %.4g", trace), elapsed, err
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&a.cfg.Correlate.Ny, "ny", a.cfg.Correlate.Ny, "number of rows")
	f.IntVar(&a.cfg.Correlate.Nx, "nx", a.cfg.Correlate.Nx, "samples per row")
	f.StringVar(&a.cfg.Correlate.Strategy, "strategy", a.cfg.Correlate.Strategy, "baseline, partitioned or optimized")
	return cmd
}
