// Package config loads server configuration from an optional YAML file.
//
// All fields have defaults; a missing file is not an error. Command-line
// flags in cmd/server override whatever the file provides.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port           int      `yaml:"Port"`
	DatabasePath   string   `yaml:"DatabasePath"`
	AllowedOrigins []string `yaml:"AllowedOrigins"`
}

func Default() *Config {
	return &Config{
		Port:         8080,
		DatabasePath: "standby.db",
	}
}

// Load reads the config file at path. An empty path or a missing file
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	if cfg.Port == 0 {
		cfg.Port = 8080
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "standby.db"
	}
	return cfg, nil
}

// Validate checks the configuration for common issues.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config validation error: Port - must be 1-65535, got %d", c.Port)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("config validation error: DatabasePath - database path is required")
	}
	return nil
}
