// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

//go:build !amd64 && !arm64

package dispatch

func init() {
	setScalarMode()
}
