// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelScalar, "scalar"},
		{LevelSSE2, "sse2"},
		{LevelAVX2, "avx2"},
		{LevelAVX512, "avx512"},
		{LevelNEON, "neon"},
		{Level(99), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestCurrentLevelConsistent(t *testing.T) {
	assert.Contains(t, []int{16, 32, 64}, CurrentWidth())
	assert.Equal(t, CurrentLevel().String(), CurrentName())
	assert.Equal(t, CurrentWidth()/8, Lanes64())

	switch runtime.GOARCH {
	case "amd64":
		if !NoSimdEnv() {
			assert.NotEqual(t, LevelNEON, CurrentLevel())
		}
	case "arm64":
		if !NoSimdEnv() {
			assert.Equal(t, LevelNEON, CurrentLevel())
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"1", true},
		{"true", true},
		{"yes", true},
	}
	for _, tt := range tests {
		t.Run(tt.val, func(t *testing.T) {
			t.Setenv(NoSimdEnvVar, tt.val)
			assert.Equal(t, tt.want, NoSimdEnv())
		})
	}
}

func TestForceRestore(t *testing.T) {
	before, beforeWidth := CurrentLevel(), CurrentWidth()

	restore := Force(LevelAVX512)
	assert.Equal(t, LevelAVX512, CurrentLevel())
	assert.Equal(t, 8, Lanes64())

	inner := Force(LevelScalar)
	assert.Equal(t, 2, Lanes64())
	inner()
	assert.Equal(t, LevelAVX512, CurrentLevel())

	restore()
	assert.Equal(t, before, CurrentLevel())
	assert.Equal(t, beforeWidth, CurrentWidth())
}
