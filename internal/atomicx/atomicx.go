// Package atomicx provides a compare-and-swap retry loop that applies a pure
// transform to an atomic integer.
package atomicx

import "sync/atomic"

// Update applies fn to the current value of v until a compare-and-swap succeeds.
// Each attempt reloads v, so a failed CAS never retries with a stale value.
// When fn leaves the value unchanged no CAS is issued. It returns the value
// that was in place when Update returned.
func Update(v *atomic.Int64, fn func(old int64) int64) int64 {
	next, _ := UpdateCounted(v, fn)
	return next
}

// UpdateCounted is Update that also reports how many CAS attempts failed.
func UpdateCounted(v *atomic.Int64, fn func(old int64) int64) (int64, int) {
	retries := 0
	for {
		old := v.Load()
		next := fn(old)
		if next == old {
			return old, retries
		}
		if v.CompareAndSwap(old, next) {
			return next, retries
		}
		retries++
	}
}

// Sub atomically subtracts x from v.
func Sub(v *atomic.Int64, x int64) int64 {
	return Update(v, func(old int64) int64 { return old - x })
}

// Min atomically lowers v to x if x is smaller.
func Min(v *atomic.Int64, x int64) int64 {
	return Update(v, func(old int64) int64 { return min(old, x) })
}
