package types

import (
	"fmt"
	"math"
)

// Sentinel marks "no odd value found" in Result.Min.
const Sentinel int64 = math.MaxInt64

// Result is the (negatedOddSum, minOdd) pair produced by every reducer.
type Result struct {
	Sum int64 `json:"sum" yaml:"sum"`
	Min int64 `json:"min" yaml:"min"`
}

// EmptyResult returns the accumulator pair every reduction starts from.
func EmptyResult() Result {
	return Result{Sum: 0, Min: Sentinel}
}

// HasOdd reports whether Min holds a real odd value rather than the sentinel.
func (r Result) HasOdd() bool {
	return r.Min != Sentinel
}

func (r Result) String() string {
	if !r.HasOdd() {
		return fmt.Sprintf("sum=%d min=none", r.Sum)
	}
	return fmt.Sprintf("sum=%d min=%d", r.Sum, r.Min)
}

// Partition is the half-open index range [Start, End) handed to one worker.
type Partition struct {
	Start int
	End   int
}

// Empty reports whether the partition has no elements.
func (p Partition) Empty() bool {
	return p.End <= p.Start
}
