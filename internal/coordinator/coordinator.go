package coordinator

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"ParReduce/internal/config"
	"ParReduce/internal/logger"
	"ParReduce/internal/partition"
	"ParReduce/internal/random"
	"ParReduce/internal/reduce"
	"ParReduce/internal/stopwatch"
	"ParReduce/internal/types"
)

// ErrInconsistent is returned when reducers disagree on the same input.
var ErrInconsistent = errors.New("reducers produced different results")

// Driver runs the benchmark: it generates inputs, times every reducer and keeps
// the finished runs.
type Driver struct {
	cfg    *config.Config
	gen    *random.Generator
	logger *logger.Logger
	mu     sync.RWMutex
	runs   []*types.BenchmarkRun
}

// NewDriver validates cfg and creates a driver with its own seeded generator.
func NewDriver(cfg *config.Config, lg *logger.Logger) (*Driver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	gen, err := random.New(cfg.Input.Seed, cfg.Input.Min, cfg.Input.Max)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	if lg == nil {
		lg = logger.NewNop()
	}
	lg.Info("Driver initialized: workers=%d seed=%d range=[%d,%d]", cfg.Workers, gen.Seed(), cfg.Input.Min, cfg.Input.Max)

	return &Driver{
		cfg:    cfg,
		gen:    gen,
		logger: lg,
		runs:   make([]*types.BenchmarkRun, 0),
	}, nil
}

// Seed returns the seed in use, for reproducing a run.
func (d *Driver) Seed() uint64 {
	return d.gen.Seed()
}

// Run benchmarks every configured size. The run is recorded and returned even
// when reducers disagree; in that case the error wraps ErrInconsistent.
func (d *Driver) Run() (*types.BenchmarkRun, error) {
	run := &types.BenchmarkRun{
		ID:        "run-" + uuid.New().String()[:8],
		StartedAt: time.Now(),
		Workers:   d.cfg.Workers,
		Seed:      d.gen.Seed(),
		Min:       d.cfg.Input.Min,
		Max:       d.cfg.Input.Max,
		Sizes:     make([]types.SizeReport, 0, len(d.cfg.Sizes)),
	}

	lg := d.logger.With(map[string]interface{}{"run_id": run.ID})
	lg.Info("Benchmark started: sizes=%v", d.cfg.Sizes)

	for _, size := range d.cfg.Sizes {
		sr := d.runSize(lg, d.gen.Array(size))
		run.Sizes = append(run.Sizes, sr)
	}

	d.mu.Lock()
	d.runs = append(d.runs, run)
	d.mu.Unlock()

	if !run.Consistent() {
		return run, fmt.Errorf("run %s: %w", run.ID, ErrInconsistent)
	}

	lg.Info("Benchmark finished")
	return run, nil
}

// RunSize times the three reducers on arr, in sequential, locking, lock-free order.
func (d *Driver) RunSize(arr []int64) types.SizeReport {
	return d.runSize(d.logger, arr)
}

func (d *Driver) runSize(lg *logger.Logger, arr []int64) types.SizeReport {
	var (
		seq, locking, lockFree types.Result
		waitMicros             int64
	)

	sr := types.SizeReport{Size: len(arr)}

	sr.Sequential = types.Timing{
		Strategy: types.StrategySequential,
		Micros:   stopwatch.Time(func() { seq = reduce.Sequential(arr) }),
	}
	sr.Locking = types.Timing{
		Strategy: types.StrategyLocking,
		Micros:   stopwatch.Time(func() { locking, waitMicros = reduce.Locking(arr, d.cfg.Workers) }),
	}
	sr.LockFree = types.Timing{
		Strategy: types.StrategyLockFree,
		Micros:   stopwatch.Time(func() { lockFree = reduce.LockFree(arr, d.cfg.Workers) }),
	}

	sr.LockWaitMicros = waitMicros
	sr.Result = seq
	sr.Consistent = seq == locking && seq == lockFree

	if sr.Consistent {
		lg.Debug("Size done: size=%d %s seq=%dus locking=%dus lockfree=%dus wait=%dus",
			sr.Size, seq, sr.Sequential.Micros, sr.Locking.Micros, sr.LockFree.Micros, waitMicros)
	} else {
		lg.Error("Reducers disagree: size=%d sequential=[%s] locking=[%s] lockfree=[%s]",
			sr.Size, seq, locking, lockFree)
	}

	return sr
}

// Verify generates one array of the configured verify size and checks it with
// VerifyArray.
func (d *Driver) Verify() error {
	arr := d.gen.Array(d.cfg.Verify.Size)
	return d.VerifyArray(arr, d.cfg.Verify.WorkerCounts, d.cfg.Verify.Repeats)
}

// VerifyArray checks partition coverage for every worker count, then runs
// every strategy repeats times and compares each result with the sequential one.
func (d *Driver) VerifyArray(arr []int64, workerCounts []int, repeats int) error {
	want := reduce.Sequential(arr)
	checks := 0

	for _, w := range workerCounts {
		if parts := partition.Split(len(arr), w); !partition.Covers(parts, len(arr)) {
			return fmt.Errorf("partitions for %d workers do not cover [0, %d): %v", w, len(arr), parts)
		}
		for i := 0; i < repeats; i++ {
			for _, e := range reduce.Strategies() {
				got := e.Reduce(arr, w)
				checks++
				if got != want {
					d.logger.Error("Verification failed: strategy=%s workers=%d repeat=%d want=[%s] got=[%s]",
						e.Strategy, w, i, want, got)
					return fmt.Errorf("%s with %d workers: want %s, got %s: %w", e.Strategy, w, want, got, ErrInconsistent)
				}
			}
		}
	}

	d.logger.Info("Verification passed: size=%d checks=%d %s", len(arr), checks, want)
	return nil
}

// Contention measures mean and max lock-wait time of the locking reducer per
// worker count over the configured number of trials, all on the same input.
func (d *Driver) Contention() ([]types.ContentionPoint, error) {
	arr := d.gen.Array(d.cfg.Contention.Size)
	return d.ContentionArray(arr, d.cfg.Contention.WorkerCounts, d.cfg.Contention.Trials)
}

// ContentionArray is Contention on a caller-supplied array.
func (d *Driver) ContentionArray(arr []int64, workerCounts []int, trials int) ([]types.ContentionPoint, error) {
	if trials < 1 {
		return nil, fmt.Errorf("trials must be >= 1, got %d", trials)
	}

	want := reduce.Sequential(arr)
	points := make([]types.ContentionPoint, 0, len(workerCounts))

	for _, w := range workerCounts {
		p := types.ContentionPoint{Workers: w, Trials: trials}
		var total int64
		for i := 0; i < trials; i++ {
			res, wait := reduce.Locking(arr, w)
			if res != want {
				return nil, fmt.Errorf("locking with %d workers: want %s, got %s: %w", w, want, res, ErrInconsistent)
			}
			total += wait
			p.MaxWaitMicros = max(p.MaxWaitMicros, wait)
		}
		p.MeanWaitMicros = float64(total) / float64(trials)
		points = append(points, p)

		d.logger.Debug("Contention point: workers=%d mean_wait=%.1fus max_wait=%dus", w, p.MeanWaitMicros, p.MaxWaitMicros)
	}

	return points, nil
}

// Runs returns the finished runs in order.
func (d *Driver) Runs() []*types.BenchmarkRun {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*types.BenchmarkRun, len(d.runs))
	copy(out, d.runs)
	return out
}

// GetRun returns a finished run by id.
func (d *Driver) GetRun(id string) (*types.BenchmarkRun, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, r := range d.runs {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, fmt.Errorf("run not found: %s", id)
}
