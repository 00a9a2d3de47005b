// Package partition splits an index space into contiguous worker ranges.
package partition

import "ParReduce/internal/types"

// Split divides [0, n) into exactly workers contiguous half-open ranges.
// Every range has n/workers elements except the last, which also takes the
// remainder and always ends at n. When n < workers the leading ranges are empty.
func Split(n, workers int) []types.Partition {
	if workers < 1 {
		workers = 1
	}
	if n < 0 {
		n = 0
	}

	chunk := n / workers
	parts := make([]types.Partition, workers)
	for i := 0; i < workers; i++ {
		start := i * chunk
		end := start + chunk
		if i == workers-1 {
			end = n
		}
		parts[i] = types.Partition{Start: start, End: end}
	}
	return parts
}

// Covers reports whether parts tile [0, n) exactly once, in order, with no gaps or overlaps.
func Covers(parts []types.Partition, n int) bool {
	next := 0
	for _, p := range parts {
		if p.Start != next || p.End < p.Start {
			return false
		}
		next = p.End
	}
	return next == n
}
