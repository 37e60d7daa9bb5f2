package config

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/c360/bytestream/errors"
	"github.com/c360/bytestream/pipeline"
)

// Config represents the complete library configuration
type Config struct {
	Buffer   BufferConfig   `yaml:"buffer"`
	Pipeline PipelineConfig `yaml:"pipeline"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// BufferConfig tunes SharedFIFO allocation
type BufferConfig struct {
	// InitialCapacity pre-allocates buffer storage; 0 allocates lazily.
	InitialCapacity int `yaml:"initial_capacity"`
}

// PipelineConfig tunes pipeline execution
type PipelineConfig struct {
	// Name labels the pipeline in logs and metrics
	Name string `yaml:"name"`
	// Mode selects execution scheduling: "sync" or "async"
	Mode string `yaml:"mode"`
}

// LogConfig tunes the streamlog handle
type LogConfig struct {
	// Level is the minimum local log level: debug, info, warn or error
	Level string `yaml:"level"`
	// Component names the log source
	Component string `yaml:"component"`
	// NATSURL enables remote log streaming when non-empty
	NATSURL string `yaml:"nats_url"`
}

// MetricsConfig tunes the Prometheus endpoint
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		Pipeline: PipelineConfig{
			Name: "pipeline",
			Mode: "async",
		},
		Log: LogConfig{
			Level:     "info",
			Component: "bytestream",
		},
		Metrics: MetricsConfig{
			Port: 9090,
			Path: "/metrics",
		},
	}
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapInvalid(errors.ErrConfigNotFound, "config", "Load", path)
		}
		return nil, errors.WrapTransient(err, "config", "Load", "read file")
	}
	return Parse(data)
}

// Parse decodes and validates YAML configuration bytes. Missing fields keep
// their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapInvalid(err, "config", "Parse", "decode yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Buffer.InitialCapacity < 0 {
		return errors.WrapInvalid(
			fmt.Errorf("initial_capacity %d is negative", c.Buffer.InitialCapacity),
			"config", "Validate", "buffer")
	}
	if _, err := c.Pipeline.ExecutionMode(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return errors.WrapInvalid(
			fmt.Errorf("unknown log level %q", c.Log.Level),
			"config", "Validate", "log")
	}
	if c.Metrics.Port < 0 || c.Metrics.Port > 65535 {
		return errors.WrapInvalid(
			fmt.Errorf("port %d out of range", c.Metrics.Port),
			"config", "Validate", "metrics")
	}
	return nil
}

// ExecutionMode converts the configured mode string into the pipeline type.
func (pc PipelineConfig) ExecutionMode() (pipeline.ExecutionMode, error) {
	switch strings.ToLower(pc.Mode) {
	case "sync":
		return pipeline.Sync, nil
	case "async", "":
		return pipeline.Async, nil
	default:
		return pipeline.Async, errors.WrapInvalid(
			fmt.Errorf("unknown execution mode %q", pc.Mode),
			"config", "ExecutionMode", "pipeline")
	}
}

// SafeConfig provides thread-safe access to a configuration that can be
// swapped at runtime.
type SafeConfig struct {
	mu     sync.RWMutex
	config *Config
}

// NewSafeConfig creates a new thread-safe config wrapper
func NewSafeConfig(cfg *Config) *SafeConfig {
	if cfg == nil {
		cfg = Default()
	}
	return &SafeConfig{config: cfg}
}

// Get returns a copy of the current configuration
func (sc *SafeConfig) Get() Config {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return *sc.config
}

// Set replaces the current configuration after validating it
func (sc *SafeConfig) Set(cfg *Config) error {
	if cfg == nil {
		return errors.WrapInvalid(errors.ErrMissingConfig, "SafeConfig", "Set", "nil config")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	sc.mu.Lock()
	sc.config = cfg
	sc.mu.Unlock()
	return nil
}
