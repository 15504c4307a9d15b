// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Command kernelbench sweeps thread counts over the pairwise kernels and
// reports time, speedup, efficiency and throughput for each count.
//
// Usage:
//
//	kernelbench nbody --particles 8000 --threads 1-12
//	kernelbench align --length 2000 --memory diagonals
//	kernelbench heat --n 2000 --steps 200 --tile 64 --schedule guided
//	kernelbench correlate --ny 1000 --nx 1000 --strategy optimized
//	kernelbench info
//
// Every subcommand accepts --config pointing at an INI file with [sweep],
// [nbody], [align], [heat] and [correlate] sections; flags given on the
// command line win over the file.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
