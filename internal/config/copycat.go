package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all engine configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Run settings
	Run RunConfig `yaml:"run"`

	// Problems to solve in batch mode
	Problems []ProblemConfig `yaml:"problems"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// RunConfig configures how trials are driven.
type RunConfig struct {
	// Seed for the random source; trials use seed, seed+1, ...
	Seed int64 `yaml:"seed"`

	// Workers is the number of concurrent trial goroutines.
	Workers int `yaml:"workers"`

	// Ticks to run for the plain tick-driver commands.
	Ticks int `yaml:"ticks"`
}

// ProblemConfig is one analogy puzzle: initial:modified::target:?
type ProblemConfig struct {
	Initial    string `yaml:"initial"`
	Modified   string `yaml:"modified"`
	Target     string `yaml:"target"`
	Iterations int    `yaml:"iterations"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "copycat",
		Version: "1.0.0",

		Run: RunConfig{
			Seed:    42,
			Workers: 4,
			Ticks:   100,
		},

		Problems: []ProblemConfig{
			{Initial: "abc", Modified: "abd", Target: "ijk", Iterations: 30},
		},

		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   "copycat.log",
		},
	}
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
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
