// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"math"
	"text/tabwriter"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-pairwise/kernels/dispatch"
)

// machineLine describes the host in one line for the top of a sweep.
func machineLine() string {
	cpu := cpuid.CPU
	brand := cpu.BrandName
	if brand == "" {
		brand = "unknown cpu"
	}
	return message.NewPrinter(language.English).Sprintf("%s, %d cores / %d threads, dispatch %s",
		brand, cpu.PhysicalCores, cpu.LogicalCores, dispatch.CurrentName())
}

// report writes the sweep table. Speedup and efficiency are relative to
// the first (smallest) thread count.
func report(out io.Writer, w workload, samples []sample) error {
	p := message.NewPrinter(language.English)
	p.Fprintf(out, "%s\n", w.title)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	p.Fprintf(tw, "Threads\tTime(s)\t± sd\tSpeedup\tEfficiency\t%s/s\tResult\t\n", w.unit)
	if len(samples) == 0 {
		return tw.Flush()
	}

	base := samples[0]
	for _, s := range samples {
		speedup := math.NaN()
		if s.mean > 0 {
			speedup = base.mean / s.mean
		}
		efficiency := speedup * float64(base.threads) / float64(s.threads)
		throughput := 0.0
		if s.mean > 0 {
			throughput = w.units / s.mean
		}
		p.Fprintf(tw, "%d\t%.4f\t%.4f\t%.2f\t%.1f%%\t%.0f\t%s\t\n",
			s.threads, s.mean, s.stddev, speedup, 100*efficiency, throughput, s.result)
	}
	return tw.Flush()
}
