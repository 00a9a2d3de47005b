package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ParReduce/internal/reduce"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, []int{1000, 10000, 100000, 1000000}, cfg.Sizes)
	assert.Equal(t, reduce.DefaultWorkers, cfg.Workers)
	assert.Equal(t, int64(-10000), cfg.Input.Min)
	assert.Equal(t, int64(10000), cfg.Input.Max)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parreduce.yaml")
	data := "sizes: [10, 20]\nworkers: 8\ninput:\n  seed: 42\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20}, cfg.Sizes)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, uint64(42), cfg.Input.Seed)
	assert.Equal(t, int64(-10000), cfg.Input.Min)
	assert.Equal(t, "table", cfg.Format)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sizes: [1, 2\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "parreduce.yaml")
	cfg := DefaultConfig()
	cfg.Workers = 2
	cfg.Contention.Trials = 9
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("numeric overrides", func(t *testing.T) {
		t.Setenv("PARREDUCE_WORKERS", "16")
		t.Setenv("PARREDUCE_SEED", "7")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 16, cfg.Workers)
		assert.Equal(t, uint64(7), cfg.Input.Seed)
	})

	t.Run("bad numbers are ignored", func(t *testing.T) {
		t.Setenv("PARREDUCE_WORKERS", "many")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, 4, cfg.Workers)
	})

	t.Run("strings are normalized", func(t *testing.T) {
		t.Setenv("PARREDUCE_FORMAT", "JSON")
		t.Setenv("PARREDUCE_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "json", cfg.Format)
		assert.Equal(t, "DEBUG", cfg.Logging.Level)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no sizes", func(c *Config) { c.Sizes = nil }},
		{"negative size", func(c *Config) { c.Sizes = []int{10, -1} }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"inverted range", func(c *Config) { c.Input.Min, c.Input.Max = 5, -5 }},
		{"empty contention counts", func(c *Config) { c.Contention.WorkerCounts = nil }},
		{"bad contention count", func(c *Config) { c.Contention.WorkerCounts = []int{1, 0} }},
		{"negative contention size", func(c *Config) { c.Contention.Size = -1 }},
		{"zero trials", func(c *Config) { c.Contention.Trials = 0 }},
		{"negative verify size", func(c *Config) { c.Verify.Size = -1 }},
		{"bad verify count", func(c *Config) { c.Verify.WorkerCounts = []int{-2} }},
		{"zero repeats", func(c *Config) { c.Verify.Repeats = 0 }},
		{"unknown format", func(c *Config) { c.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestEmptyVerifyAndContentionSizesAreValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Verify.Size = 0
	cfg.Contention.Size = 0
	assert.NoError(t, cfg.Validate())
}
