// Package config loads the optional YAML configuration of the aoc command:
// logging settings and batch manifests.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent/internal/puzzle"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the root of the YAML document.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Batch   BatchConfig   `yaml:"batch"`
}

// LoggingConfig selects the zap level and encoder.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// BatchConfig is a manifest of puzzle runs.
type BatchConfig struct {
	Jobs int         `yaml:"jobs"` // 0 means GOMAXPROCS
	Runs []RunConfig `yaml:"runs"`
}

// RunConfig is one manifest entry.
type RunConfig = puzzle.Run

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"json", "console"}
)

// Default returns the configuration used without a config file.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over Default. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes a YAML document over Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}

	return cfg, nil
}

// Validate checks the logging settings and every manifest entry.
func (c *Config) Validate() error {
	if !contains(validLevels, c.Logging.Level) {
		return fmt.Errorf("%w: logging level %q (valid: %v)", ErrInvalid, c.Logging.Level, validLevels)
	}
	if !contains(validFormats, c.Logging.Format) {
		return fmt.Errorf("%w: logging format %q (valid: %v)", ErrInvalid, c.Logging.Format, validFormats)
	}
	if c.Batch.Jobs < 0 {
		return fmt.Errorf("%w: batch jobs cannot be negative (%d)", ErrInvalid, c.Batch.Jobs)
	}
	for i, run := range c.Batch.Runs {
		if _, err := puzzle.Lookup(run.Puzzle); err != nil {
			return fmt.Errorf("%w: run %d: %w", ErrInvalid, i, err)
		}
		if run.Input == "" {
			return fmt.Errorf("%w: run %d (%s): input is required", ErrInvalid, i, run.Label())
		}
	}

	return nil
}

func contains(vs []string, v string) bool {
	for _, s := range vs {
		if s == v {
			return true
		}
	}

	return false
}
