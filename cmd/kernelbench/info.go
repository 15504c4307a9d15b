// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"runtime"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-pairwise/kernels/dispatch"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and CPU description",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			p := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()
			cpu := cpuid.CPU

			p.Fprintf(out, "dispatch:   %s (%d-byte vectors, %d float64 lanes)\n",
				dispatch.CurrentName(), dispatch.CurrentWidth(), dispatch.Lanes64())
			if dispatch.NoSimdEnv() {
				p.Fprintf(out, "            %s is set\n", dispatch.NoSimdEnvVar)
			}
			p.Fprintf(out, "cpu:        %s\n", cpu.BrandName)
			p.Fprintf(out, "vendor:     %s, family %d model %d\n", cpu.VendorString, cpu.Family, cpu.Model)
			p.Fprintf(out, "cores:      %d physical, %d logical\n", cpu.PhysicalCores, cpu.LogicalCores)
			p.Fprintf(out, "caches:     L1d %d B, L2 %d B, L3 %d B, line %d B\n",
				cpu.Cache.L1D, cpu.Cache.L2, cpu.Cache.L3, cpu.CacheLine)
			p.Fprintf(out, "features:   %s\n", strings.Join(cpu.FeatureSet(), " "))
			p.Fprintf(out, "runtime:    %s/%s, GOMAXPROCS %d\n", runtime.GOOS, runtime.GOARCH, runtime.GOMAXPROCS(0))
		},
	}
}
