// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

//go:build amd64

package dispatch

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}
	detectX86()
}

func detectX86() {
	switch {
	case cpu.X86.HasAVX512F && cpu.X86.HasAVX512DQ:
		currentLevel = LevelAVX512
		currentWidth = 64
	case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
		currentLevel = LevelAVX2
		currentWidth = 32
	case cpu.X86.HasSSE2:
		currentLevel = LevelSSE2
		currentWidth = 16
	default:
		setScalarMode()
	}
}
