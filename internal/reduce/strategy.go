package reduce

import "ParReduce/internal/types"

// Reducer runs one strategy over arr with the given worker count.
// Sequential ignores workers.
type Reducer func(arr []int64, workers int) types.Result

// Entry pairs a strategy name with its reducer.
type Entry struct {
	Strategy types.Strategy
	Reduce   Reducer
}

// Strategies returns the three strategies in report order.
func Strategies() []Entry {
	return []Entry{
		{types.StrategySequential, func(arr []int64, _ int) types.Result { return Sequential(arr) }},
		{types.StrategyLocking, func(arr []int64, workers int) types.Result {
			res, _ := Locking(arr, workers)
			return res
		}},
		{types.StrategyLockFree, LockFree},
	}
}
