package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	MaxSteps              int
	Algorithms            []string
	Log                   LogConfig
	RateLimit             RateLimitConfig
	WatchDebounce         time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

type RateLimitConfig struct {
	RPS   int
	Burst int
}

const envPrefix = "CPUSCHED"

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 3)
	v.SetDefault("scheduler.max_steps", 10_000_000)
	v.SetDefault("scheduler.algorithms", []string{"fcfs", "sjf", "srt", "rr"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("api.rate_limit.rps", 20)
	v.SetDefault("api.rate_limit.burst", 40)
	v.SetDefault("watch.debounce", "250ms")
}

// Load reads the scheduler configuration. An empty path looks for
// config.yaml in the working directory and falls back to defaults when none
// exists; an explicit path must be readable. CPUSCHED_* environment
// variables override file values, e.g. CPUSCHED_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(path string) (*SchedulerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MaxSteps:              v.GetInt("scheduler.max_steps"),
		Algorithms:            splitList(v.GetStringSlice("scheduler.algorithms")),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		RateLimit: RateLimitConfig{
			RPS:   v.GetInt("api.rate_limit.rps"),
			Burst: v.GetInt("api.rate_limit.burst"),
		},
		WatchDebounce: v.GetDuration("watch.debounce"),
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// splitList flattens comma separated entries. Environment values reach viper
// as a single string, so CPUSCHED_SCHEDULER_ALGORITHMS=fcfs,rr arrives as one
// element.
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		for _, item := range strings.Split(value, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

func (c *SchedulerConfig) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("config: scheduler.round_robin.time_quantum must be greater than 0, got %d", c.RoundRobinTimeQuantum)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return errors.New("config: api.rate_limit values must not be negative")
	}
	if c.WatchDebounce < 0 {
		return errors.New("config: watch.debounce must not be negative")
	}
	return nil
}
