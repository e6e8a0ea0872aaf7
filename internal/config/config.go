package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ID strategies.
const (
	StrategySequence = "sequence"
	StrategyUUID     = "uuid"
)

// Config holds docstore settings for embedding processes.
type Config struct {
	IDs        IDConfig         `yaml:"ids"`
	Validation ValidationConfig `yaml:"validation"`
	Batch      BatchConfig      `yaml:"batch"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// IDConfig controls identifier generation for documents saved without an ID.
type IDConfig struct {
	Strategy string `yaml:"strategy"` // sequence (default), uuid
	Start    int64  `yaml:"start"`    // first sequence value (default: 1)
}

// ValidationConfig controls required-field checks on save.
type ValidationConfig struct {
	Enabled *bool `yaml:"enabled"` // default: true
}

// BatchConfig holds batch upsert limits.
type BatchConfig struct {
	MaxSize int `yaml:"max_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Env   string `yaml:"env"`   // prod, dev, local, none (default: none)
	Level string `yaml:"level"` // debug, info, warn, error
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"` // registers on the default registerer
}

// Load reads configuration from a YAML file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, expanding ${VAR} references first.
func Parse(data []byte) (Config, error) {
	data = expandEnvVars(data)

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Default returns a configuration with every default applied.
func Default() Config {
	var cfg Config
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.IDs.Strategy == "" {
		c.IDs.Strategy = StrategySequence
	}
	if c.IDs.Start <= 0 {
		c.IDs.Start = 1
	}
	if c.Validation.Enabled == nil {
		enabled := true
		c.Validation.Enabled = &enabled
	}
	if c.Batch.MaxSize <= 0 {
		c.Batch.MaxSize = 1000
	}
	if c.Logging.Env == "" {
		c.Logging.Env = "none"
	}
}

// ValidationEnabled reports whether required-field validation is on.
func (c *Config) ValidationEnabled() bool {
	return c.Validation.Enabled == nil || *c.Validation.Enabled
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.IDs.Strategy {
	case StrategySequence, StrategyUUID:
		// ok
	default:
		return fmt.Errorf("ids.strategy must be %q or %q, got %q", StrategySequence, StrategyUUID, c.IDs.Strategy)
	}
	switch c.Logging.Env {
	case "prod", "dev", "local", "none":
		// ok
	default:
		return fmt.Errorf("logging.env must be one of prod, dev, local, none, got %q", c.Logging.Env)
	}
	return nil
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
