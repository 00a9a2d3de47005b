package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ParReduce/internal/config"
	"ParReduce/internal/coordinator"
	"ParReduce/internal/logger"
	"ParReduce/internal/report"
)

var (
	// Global flags
	configPath string
	logLevel   string
	format     string
	workers    int
	seed       uint64

	cfg *config.Config
	lg  *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "parreduce",
	Short: "Benchmark sequential, mutex and CAS reductions over odd integers",
	Long: `parreduce computes the negated sum and the minimum of the odd elements of
random integer arrays with three strategies and reports the wall-clock time of each:

  Sequential   single goroutine fold
  Blocking     4 workers, one shared mutex per odd element
  NonBlocking  4 workers, compare-and-swap loops on two atomics

Run without a subcommand to execute the benchmark.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = loaded
		lg = logger.New(cfg.Logging.Level)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if lg != nil {
			_ = lg.Sync()
		}
	},
	RunE: runBench,
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time the three reducers for every configured size",
	RunE:  runBench,
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that all reducers agree across worker counts",
	RunE:  runVerify,
}

var contentionCmd = &cobra.Command{
	Use:   "contention",
	Short: "Measure mutex wait time of the blocking reducer per worker count",
	RunE:  runContention,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	RunE:  runConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "output format: table, json, yaml")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "worker goroutines per parallel reduction; replaces the verify and contention sweeps")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")

	rootCmd.AddCommand(benchCmd, verifyCmd, contentionCmd, configCmd)
}

// loadConfig reads the config file, then applies flags that were set explicitly.
// An explicit --workers also pins the verify and contention sweeps to that count.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = logLevel
	}
	if flags.Changed("format") {
		cfg.Format = format
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
		cfg.Verify.WorkerCounts = []int{workers}
		cfg.Contention.WorkerCounts = []int{workers}
	}
	if flags.Changed("seed") {
		cfg.Input.Seed = seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newDriver() (*coordinator.Driver, error) {
	d, err := coordinator.NewDriver(cfg, lg)
	if err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}
	return d, nil
}

func runBench(cmd *cobra.Command, args []string) error {
	d, err := newDriver()
	if err != nil {
		return err
	}

	run, runErr := d.Run()
	if run != nil {
		if err := report.Render(cmd.OutOrStdout(), run, cfg.Format); err != nil {
			return err
		}
	}
	return runErr
}

func runVerify(cmd *cobra.Command, args []string) error {
	d, err := newDriver()
	if err != nil {
		return err
	}

	if err := d.Verify(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %d worker counts x %d repeats on %d elements (seed %d)\n",
		len(cfg.Verify.WorkerCounts), cfg.Verify.Repeats, cfg.Verify.Size, d.Seed())
	return nil
}

func runContention(cmd *cobra.Command, args []string) error {
	d, err := newDriver()
	if err != nil {
		return err
	}

	points, err := d.Contention()
	if err != nil {
		return err
	}
	return report.RenderContention(cmd.OutOrStdout(), points, cfg.Format)
}

func runConfig(cmd *cobra.Command, args []string) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return enc.Close()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
