package mapreduce

import (
	"golang.org/x/sync/errgroup"

	"ParReduce/internal/partition"
	"ParReduce/internal/types"
)

// MapFunc processes one partition of the input.
type MapFunc func(p types.Partition)

// Engine runs a MapFunc over a fixed number of contiguous partitions in parallel.
type Engine struct {
	workers int
}

// NewEngine creates an engine that always splits work across workers goroutines.
func NewEngine(workers int) *Engine {
	if workers < 1 {
		workers = 1
	}
	return &Engine{workers: workers}
}

// Workers returns the configured worker count.
func (e *Engine) Workers() int {
	return e.workers
}

// Partitions returns the ranges Execute would hand out for an input of length n.
func (e *Engine) Partitions(n int) []types.Partition {
	return partition.Split(n, e.workers)
}

// Execute splits [0, n) into the engine's partitions, runs fn on each in its
// own goroutine and blocks until every worker has returned.
// Workers that receive an empty partition return immediately.
func (e *Engine) Execute(n int, fn MapFunc) {
	var g errgroup.Group

	for _, p := range e.Partitions(n) {
		g.Go(func() error {
			if p.Empty() {
				return nil
			}
			fn(p)
			return nil
		})
	}

	// workers never fail, so Wait is only the join point
	_ = g.Wait()
}
