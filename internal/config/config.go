package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for numq.
type Config struct {
	// JSON makes machine-readable output the default for commands that
	// support it (equivalent to passing --json everywhere).
	JSON bool `yaml:"json" env:"NUMQ_JSON"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" env:"NUMQ_VERBOSE"`

	// CacheEnabled turns on the persistent factorial result cache.
	// Off by default so a bare `numq` run touches nothing on disk.
	CacheEnabled bool `yaml:"cache_enabled" env:"NUMQ_CACHE_ENABLED"`

	// CachePath is where the result cache is persisted.
	CachePath string `yaml:"cache_path" env:"NUMQ_CACHE_PATH"`

	// CacheSize is the maximum number of cached results. 0 means unlimited.
	CacheSize int `yaml:"cache_size" env:"NUMQ_CACHE_SIZE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		JSON:         false,
		Verbose:      false,
		CacheEnabled: false,
		CachePath:    defaultCachePath(),
		CacheSize:    128,
	}
}

func defaultCachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".numq", "results.msgpack")
	}
	return filepath.Join(home, ".numq", "results.msgpack")
}

// GlobalConfigFilePath returns the global config file path (~/.numq/config.yaml).
func GlobalConfigFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".numq", "config.yaml")
	}
	return filepath.Join(home, ".numq", "config.yaml")
}

// ProjectConfigFilePath returns the project-level config file path (./.numq/config.yaml).
func ProjectConfigFilePath() string {
	return filepath.Join(".numq", "config.yaml")
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Project-level config (./.numq/config.yaml)
// 2. Environment variables
// 3. Global config (~/.numq/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	globalPath := GlobalConfigFilePath()
	if data, err := os.ReadFile(globalPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", globalPath, err)
		}
	}

	applyEnvOverrides(cfg)

	projectPath := ProjectConfigFilePath()
	if data, err := os.ReadFile(projectPath); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", projectPath, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to the specified YAML file path.
// It creates parent directories if they don't exist.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NUMQ_JSON"); v != "" {
		cfg.JSON = parseBool(v)
	}
	if v := os.Getenv("NUMQ_VERBOSE"); v != "" {
		cfg.Verbose = parseBool(v)
	}
	if v := os.Getenv("NUMQ_CACHE_ENABLED"); v != "" {
		cfg.CacheEnabled = parseBool(v)
	}
	if v := os.Getenv("NUMQ_CACHE_PATH"); v != "" {
		cfg.CachePath = v
	}
	if v := os.Getenv("NUMQ_CACHE_SIZE"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			cfg.CacheSize = i
		}
	}
}

func parseBool(v string) bool {
	return v == "true" || v == "1" || v == "yes"
}

// Validate checks that the configuration has valid required fields.
func (c *Config) Validate() error {
	if c.CacheSize < 0 {
		return fmt.Errorf("cache_size must be non-negative")
	}
	if c.CacheEnabled && c.CachePath == "" {
		return fmt.Errorf("cache_path is required when cache_enabled is true")
	}
	return nil
}
