// Copyright 2025 The go-pairwise Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// parseThreads expands a list like "1,2,4-8" into sorted, distinct counts.
func parseThreads(list string) ([]int, error) {
	parts := lo.Compact(lo.Map(strings.Split(list, ","), func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty thread list %q", list)
	}

	var counts []int
	for _, part := range parts {
		first, last, isRange := strings.Cut(part, "-")
		from, err := strconv.Atoi(strings.TrimSpace(first))
		if err != nil {
			return nil, fmt.Errorf("bad thread count %q: %w", part, err)
		}
		to := from
		if isRange {
			if to, err = strconv.Atoi(strings.TrimSpace(last)); err != nil {
				return nil, fmt.Errorf("bad thread range %q: %w", part, err)
			}
		}
		if from < 1 || to < from {
			return nil, fmt.Errorf("thread counts must be >= 1 and ranges ascending, got %q", part)
		}
		counts = append(counts, lo.RangeFrom(from, to-from+1)...)
	}

	counts = lo.Uniq(counts)
	slices.Sort(counts)
	return counts, nil
}
