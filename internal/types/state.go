package types

import "time"

// Strategy names a reduction strategy
type Strategy string

const (
	StrategySequential Strategy = "sequential"
	StrategyLocking    Strategy = "locking"
	StrategyLockFree   Strategy = "lockfree"
)

// Timing is the elapsed wall-clock time of one reducer on one input
type Timing struct {
	Strategy Strategy `json:"strategy" yaml:"strategy"`
	Micros   int64    `json:"micros" yaml:"micros"`
}

// SizeReport holds the measurements for a single input size
type SizeReport struct {
	Size           int    `json:"size" yaml:"size"`
	Sequential     Timing `json:"sequential" yaml:"sequential"`
	Locking        Timing `json:"locking" yaml:"locking"`
	LockFree       Timing `json:"lockfree" yaml:"lockfree"`
	LockWaitMicros int64  `json:"lock_wait_micros" yaml:"lock_wait_micros"`
	Result         Result `json:"result" yaml:"result"`
	Consistent     bool   `json:"consistent" yaml:"consistent"`
}

// BenchmarkRun is the full output of one benchmark invocation
type BenchmarkRun struct {
	ID        string       `json:"id" yaml:"id"`
	StartedAt time.Time    `json:"started_at" yaml:"started_at"`
	Workers   int          `json:"workers" yaml:"workers"`
	Seed      uint64       `json:"seed" yaml:"seed"`
	Min       int64        `json:"min" yaml:"min"`
	Max       int64        `json:"max" yaml:"max"`
	Sizes     []SizeReport `json:"sizes" yaml:"sizes"`
}

// Consistent reports whether every size produced matching results
func (r *BenchmarkRun) Consistent() bool {
	for _, s := range r.Sizes {
		if !s.Consistent {
			return false
		}
	}
	return true
}

// ContentionPoint summarises lock-wait time for one worker count
type ContentionPoint struct {
	Workers        int     `json:"workers" yaml:"workers"`
	Trials         int     `json:"trials" yaml:"trials"`
	MeanWaitMicros float64 `json:"mean_wait_micros" yaml:"mean_wait_micros"`
	MaxWaitMicros  int64   `json:"max_wait_micros" yaml:"max_wait_micros"`
}
