// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

// Package dispatch reports the vector instruction level the kernels tune
// themselves for. Detection runs once in init() from the per-architecture
// files; the PAIRWISE_NO_SIMD environment variable forces the scalar level.
//
// The kernels are written in pure Go, so the level does not select assembly.
// It decides how many independent accumulators the reduction loops in
// kernels/contrib/vec keep live, which is what lets the compiler keep the
// floating-point pipelines busy on wider machines.
package dispatch

import (
	"os"
	"strconv"
)

// Level represents the vector instruction set detected for this runtime.
type Level int

const (
	// LevelScalar indicates no usable vector unit.
	LevelScalar Level = iota

	// LevelSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	LevelSSE2

	// LevelAVX2 indicates AVX2 instructions (256-bit).
	LevelAVX2

	// LevelAVX512 indicates AVX-512 instructions (512-bit).
	LevelAVX512

	// LevelNEON indicates ARM NEON instructions (128-bit).
	LevelNEON
)

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case LevelScalar:
		return "scalar"
	case LevelSSE2:
		return "sse2"
	case LevelAVX2:
		return "avx2"
	case LevelAVX512:
		return "avx512"
	case LevelNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// NoSimdEnvVar is the environment variable that disables vector tuning.
const NoSimdEnvVar = "PAIRWISE_NO_SIMD"

var (
	currentLevel Level
	currentWidth int
)

// CurrentLevel returns the detected level.
func CurrentLevel() Level {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes.
// 16 for SSE2/NEON/scalar, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns the name of the current level, e.g. "avx2".
func CurrentName() string {
	return currentLevel.String()
}

// Lanes64 returns how many float64 values fit in one vector register.
func Lanes64() int {
	return max(currentWidth/8, 1)
}

// NoSimdEnv reports whether PAIRWISE_NO_SIMD is set to a truthy value.
// Any non-empty value that does not parse as a bool counts as true.
func NoSimdEnv() bool {
	val := os.Getenv(NoSimdEnvVar)
	if val == "" {
		return false
	}
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

func setScalarMode() {
	currentLevel = LevelScalar
	currentWidth = 16 // keep 16-byte vectors in scalar mode so loops stay unrolled by two
}

// WidthOf returns the register width in bytes a level implies.
func WidthOf(l Level) int {
	switch l {
	case LevelAVX2:
		return 32
	case LevelAVX512:
		return 64
	default:
		return 16
	}
}

// Force pins the dispatch level, e.g. to compare tunings in a benchmark,
// and returns a function restoring the previous level. It is not safe to
// call while kernels are running.
func Force(l Level) (restore func()) {
	prevLevel, prevWidth := currentLevel, currentWidth
	currentLevel, currentWidth = l, WidthOf(l)
	return func() {
		currentLevel, currentWidth = prevLevel, prevWidth
	}
}
