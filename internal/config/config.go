package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"ParReduce/internal/reduce"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all benchmark configuration.
type Config struct {
	// Input sizes benchmarked in order
	Sizes []int `yaml:"sizes"`

	// Worker goroutines per parallel reduction
	Workers int `yaml:"workers"`

	// Input generation
	Input InputConfig `yaml:"input"`

	// Contention sweep (lock-wait vs worker count)
	Contention ContentionConfig `yaml:"contention"`

	// Equivalence check
	Verify VerifyConfig `yaml:"verify"`

	// Output
	Format string `yaml:"format"` // table, json, yaml

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig configures random input arrays.
type InputConfig struct {
	Seed uint64 `yaml:"seed"` // 0 = derive from clock
	Min  int64  `yaml:"min"`
	Max  int64  `yaml:"max"`
}

// ContentionConfig configures the lock-wait sweep.
type ContentionConfig struct {
	Size         int   `yaml:"size"`
	WorkerCounts []int `yaml:"worker_counts"`
	Trials       int   `yaml:"trials"`
}

// VerifyConfig configures the cross-strategy equivalence check.
type VerifyConfig struct {
	Size         int   `yaml:"size"`
	WorkerCounts []int `yaml:"worker_counts"`
	Repeats      int   `yaml:"repeats"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // DEBUG, INFO, WARN, ERROR
}

// DefaultConfig returns the configuration of the reference benchmark.
func DefaultConfig() *Config {
	return &Config{
		Sizes:   []int{1000, 10000, 100000, 1000000},
		Workers: reduce.DefaultWorkers,
		Input: InputConfig{
			Seed: 0,
			Min:  -10000,
			Max:  10000,
		},
		Contention: ContentionConfig{
			Size:         100000,
			WorkerCounts: []int{1, 2, 4, 8},
			Trials:       5,
		},
		Verify: VerifyConfig{
			Size:         100000,
			WorkerCounts: []int{1, 2, 4, 8},
			Repeats:      20,
		},
		Format: "table",
		Logging: LoggingConfig{
			Level: "INFO",
		},
	}
}

// Load reads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied after the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies PARREDUCE_* environment variables. Unparseable
// numeric values are ignored so a bad variable cannot mask the file setting.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PARREDUCE_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Workers = n
		}
	}
	if v := os.Getenv("PARREDUCE_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Input.Seed = n
		}
	}
	if v := os.Getenv("PARREDUCE_FORMAT"); v != "" {
		c.Format = strings.ToLower(v)
	}
	if v := os.Getenv("PARREDUCE_LOG_LEVEL"); v != "" {
		c.Logging.Level = strings.ToUpper(v)
	}
}

// Validate checks the configuration for values no run could use.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return fmt.Errorf("%w: at least one size is required", ErrInvalidConfig)
	}
	for _, s := range c.Sizes {
		if s < 0 {
			return fmt.Errorf("%w: negative size %d", ErrInvalidConfig, s)
		}
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalidConfig, c.Workers)
	}
	if c.Input.Min > c.Input.Max {
		return fmt.Errorf("%w: input range [%d, %d] is empty", ErrInvalidConfig, c.Input.Min, c.Input.Max)
	}
	if c.Contention.Size < 0 {
		return fmt.Errorf("%w: negative contention size %d", ErrInvalidConfig, c.Contention.Size)
	}
	if err := validateWorkerCounts("contention", c.Contention.WorkerCounts); err != nil {
		return err
	}
	if c.Contention.Trials < 1 {
		return fmt.Errorf("%w: contention trials must be >= 1", ErrInvalidConfig)
	}
	if c.Verify.Size < 0 {
		return fmt.Errorf("%w: negative verify size %d", ErrInvalidConfig, c.Verify.Size)
	}
	if err := validateWorkerCounts("verify", c.Verify.WorkerCounts); err != nil {
		return err
	}
	if c.Verify.Repeats < 1 {
		return fmt.Errorf("%w: verify repeats must be >= 1", ErrInvalidConfig)
	}
	switch c.Format {
	case "table", "json", "yaml":
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

func validateWorkerCounts(section string, counts []int) error {
	if len(counts) == 0 {
		return fmt.Errorf("%w: %s worker_counts is empty", ErrInvalidConfig, section)
	}
	for _, w := range counts {
		if w < 1 {
			return fmt.Errorf("%w: %s worker count must be >= 1, got %d", ErrInvalidConfig, section, w)
		}
	}
	return nil
}
