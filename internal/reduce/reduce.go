// Package reduce computes the negated sum and the minimum of the odd elements
// of an array using three strategies: a sequential fold, a parallel fold that
// serializes updates through one mutex, and a parallel fold that updates two
// atomics with compare-and-swap loops.
//
// Oddness uses Go's truncating remainder, so negative odd values such as -3
// are odd (-3 % 2 == -1). Sums wrap on int64 overflow in every strategy.
package reduce

import (
	"sync"
	"sync/atomic"
	"time"

	"ParReduce/internal/atomicx"
	"ParReduce/internal/mapreduce"
	"ParReduce/internal/types"
)

// DefaultWorkers is the worker count used by the benchmark driver.
const DefaultWorkers = 4

// IsOdd reports whether v % 2 != 0.
func IsOdd(v int64) bool {
	return v%2 != 0
}

// Sequential folds arr on the calling goroutine.
func Sequential(arr []int64) types.Result {
	res := types.EmptyResult()
	for _, v := range arr {
		if IsOdd(v) {
			res.Sum -= v
			res.Min = min(res.Min, v)
		}
	}
	return res
}

// lockedResult is a Result that may only be touched through update.
type lockedResult struct {
	mu  sync.Mutex
	res types.Result
}

// update acquires the lock, records how long acquisition took and folds v in.
func (l *lockedResult) update(v int64, waitMicros *atomic.Int64) {
	t0 := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	waitMicros.Add(time.Since(t0).Microseconds())

	l.res.Sum -= v
	l.res.Min = min(l.res.Min, v)
}

// Locking splits arr across workers goroutines that fold every odd element into
// one shared Result under a single mutex. It also returns the total time, in
// microseconds, that all workers spent waiting to acquire that mutex.
func Locking(arr []int64, workers int) (types.Result, int64) {
	shared := &lockedResult{res: types.EmptyResult()}
	var waitMicros atomic.Int64

	mapreduce.NewEngine(workers).Execute(len(arr), func(p types.Partition) {
		for _, v := range arr[p.Start:p.End] {
			if IsOdd(v) {
				shared.update(v, &waitMicros)
			}
		}
	})

	return shared.res, waitMicros.Load()
}

// LockFree splits arr across workers goroutines that update the sum and the
// minimum as two independent atomics. The fields are not updated jointly;
// each converges to the correct value on its own.
func LockFree(arr []int64, workers int) types.Result {
	var sum, minOdd atomic.Int64
	minOdd.Store(types.Sentinel)

	mapreduce.NewEngine(workers).Execute(len(arr), func(p types.Partition) {
		for _, v := range arr[p.Start:p.End] {
			if IsOdd(v) {
				atomicx.Sub(&sum, v)
				atomicx.Min(&minOdd, v)
			}
		}
	})

	return types.Result{Sum: sum.Load(), Min: minOdd.Load()}
}
