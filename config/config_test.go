package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9095, cfg.Port)
	assert.Equal(t, 3, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 10_000_000, cfg.MaxSteps)
	assert.Equal(t, []string{"fcfs", "sjf", "srt", "rr"}, cfg.Algorithms)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 250*time.Millisecond, cfg.WatchDebounce)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
port: 8080
scheduler:
  round_robin:
    time_quantum: 4
  max_steps: 1000
  algorithms: [rr, fcfs]
log:
  level: debug
  format: json
api:
  rate_limit:
    rps: 5
    burst: 10
watch:
  debounce: 1s
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 4, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 1000, cfg.MaxSteps)
	assert.Equal(t, []string{"rr", "fcfs"}, cfg.Algorithms)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, cfg.Log)
	assert.Equal(t, RateLimitConfig{RPS: 5, Burst: 10}, cfg.RateLimit)
	assert.Equal(t, time.Second, cfg.WatchDebounce)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM", "7")
	t.Setenv("CPUSCHED_PORT", "7000")

	cfg, err := Load(writeConfig(t, "port: 8080\n"))
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.RoundRobinTimeQuantum)
	assert.Equal(t, 7000, cfg.Port)
}

func TestLoadAlgorithmsFromEnv(t *testing.T) {
	t.Setenv("CPUSCHED_SCHEDULER_ALGORITHMS", "fcfs, rr")
	cfg, err := Load(writeConfig(t, "scheduler:\n  algorithms: [sjf]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"fcfs", "rr"}, cfg.Algorithms)

	t.Setenv("CPUSCHED_SCHEDULER_ALGORITHMS", "srt")
	cfg, err = Load(writeConfig(t, "port: 8080\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"srt"}, cfg.Algorithms)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "scheduler:\n  round_robin:\n    time_quantum: 0\n"))
	assert.ErrorContains(t, err, "time_quantum")

	_, err = Load(writeConfig(t, "port: 70000\n"))
	assert.ErrorContains(t, err, "port")
}
