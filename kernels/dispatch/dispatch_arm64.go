// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

//go:build arm64

package dispatch

import "golang.org/x/sys/cpu"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ASIMD is part of the ARMv8-A base architecture; the check guards
	// against exotic kernels that hide it.
	if cpu.ARM64.HasASIMD {
		currentLevel = LevelNEON
		currentWidth = 16
		return
	}
	setScalarMode()
}
