// Package config loads service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Defaults for settings without a shared parser.
const (
	DefaultSourceTopic   = "earthquake-scenarios"
	DefaultSinkTopic     = "damage-assessments"
	DefaultGroupID       = "quake-impact"
	defaultMapboxTimeout = "5s"
	defaultMapboxCache   = 1000
	maxEvaluationWorkers = 256
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
	HTTPAddr         string
	LogLevel         string
	LogFormat        string
	ShutdownTimeout  time.Duration

	BatchSize          int
	BatchFlushInterval time.Duration

	// RosterPath names a YAML or JSON roster; empty selects the reference roster.
	RosterPath string
	// EvalWorkers bounds per-scenario parallelism; 1 evaluates sequentially.
	EvalWorkers int

	// Epicenter reverse geocoding.
	MapboxToken     string
	MapboxEnabled   bool
	MapboxTimeout   time.Duration
	MapboxCacheSize int
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	cfg := &Config{
		KafkaBrokers:     sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic: sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", DefaultSourceTopic),
		KafkaSinkTopic:   sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", DefaultSinkTopic),
		KafkaGroupID:     sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", DefaultGroupID),
		HTTPAddr:         sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		RosterPath:       strings.TrimSpace(os.Getenv("ROSTER_PATH")),
		MapboxToken:      os.Getenv("MAPBOX_TOKEN"),
	}

	var err error
	if cfg.ShutdownTimeout, err = sharedcfg.ParseShutdownTimeout(); err != nil {
		return nil, err
	}
	if cfg.BatchSize, err = sharedcfg.ParseBatchSize(); err != nil {
		return nil, err
	}
	if cfg.BatchFlushInterval, err = sharedcfg.ParseBatchFlushInterval(); err != nil {
		return nil, err
	}
	if cfg.EvalWorkers, err = parseEvalWorkers(); err != nil {
		return nil, err
	}
	if cfg.MapboxTimeout, err = parsePositiveDuration("MAPBOX_TIMEOUT", defaultMapboxTimeout); err != nil {
		return nil, err
	}
	cfg.MapboxCacheSize = parseMapboxCacheSize()

	cfg.MapboxEnabled = cfg.MapboxToken != ""
	if v := os.Getenv("MAPBOX_ENABLED"); v != "" {
		cfg.MapboxEnabled = v == "true"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case len(c.KafkaBrokers) == 0:
		return errors.New("KAFKA_BROKERS is required")
	case c.KafkaSourceTopic == "":
		return errors.New("KAFKA_SOURCE_TOPIC is required")
	case c.KafkaSinkTopic == "":
		return errors.New("KAFKA_SINK_TOPIC is required")
	case c.KafkaSourceTopic == c.KafkaSinkTopic:
		return fmt.Errorf("KAFKA_SINK_TOPIC must differ from KAFKA_SOURCE_TOPIC (%s)", c.KafkaSourceTopic)
	case c.MapboxEnabled && c.MapboxToken == "":
		return errors.New("MAPBOX_ENABLED is true but MAPBOX_TOKEN is not set")
	}
	return nil
}

// parseEvalWorkers defaults to the CPU count.
func parseEvalWorkers() (int, error) {
	s := os.Getenv("EVAL_WORKERS")
	if s == "" {
		return runtime.GOMAXPROCS(0), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 || n > maxEvaluationWorkers {
		return 0, fmt.Errorf("invalid EVAL_WORKERS %q: must be between 1 and %d", s, maxEvaluationWorkers)
	}
	return n, nil
}

func parsePositiveDuration(key, def string) (time.Duration, error) {
	s := sharedcfg.EnvOrDefault(key, def)
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return d, nil
}

func parseMapboxCacheSize() int {
	if s := os.Getenv("MAPBOX_CACHE_SIZE"); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return defaultMapboxCache
}
