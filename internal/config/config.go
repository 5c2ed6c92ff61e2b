// Package config provides configuration management for dmn.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/open-cli-collective/mention-cli/pkg/mention"
)

// Config holds the dmn configuration. Every field is optional; an absent
// config file simply means defaults everywhere.
type Config struct {
	OutputFormat string   `yaml:"output_format,omitempty"`
	DefaultKinds []string `yaml:"default_kinds,omitempty"`
	NoColor      bool     `yaml:"no_color,omitempty"`
}

// Validate checks that all set fields hold recognized values.
func (c *Config) Validate() error {
	switch c.OutputFormat {
	case "", "table", "json", "plain":
	default:
		return fmt.Errorf("invalid output_format %q: must be table, json, or plain", c.OutputFormat)
	}

	for _, k := range c.DefaultKinds {
		if _, err := mention.ParseKind(k); err != nil {
			return fmt.Errorf("invalid default_kinds entry: %w", err)
		}
	}

	return nil
}

// Kinds returns the configured default kind filter as typed kinds. An empty
// filter means all kinds.
func (c *Config) Kinds() ([]mention.Kind, error) {
	var kinds []mention.Kind
	for _, name := range c.DefaultKinds {
		k, err := mention.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// LoadFromEnv loads configuration from environment variables. Environment
// variables override existing values only if set and non-empty.
func (c *Config) LoadFromEnv() {
	if format := os.Getenv("DMN_OUTPUT_FORMAT"); format != "" {
		c.OutputFormat = format
	}
	if kinds := os.Getenv("DMN_DEFAULT_KINDS"); kinds != "" {
		c.DefaultKinds = splitKinds(kinds)
	}
	if v := os.Getenv("DMN_NO_COLOR"); v == "1" || v == "true" {
		c.NoColor = true
	}
}

// splitKinds splits a comma-separated kind list, trimming whitespace and
// dropping empty entries.
func splitKinds(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// DefaultConfigPath returns the default configuration file path.
func DefaultConfigPath() string {
	// Try XDG config directory first
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "dmn", "config.yml")
	}

	// Fall back to ~/.config/dmn/config.yml
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".dmn", "config.yml")
	}

	return filepath.Join(home, ".config", "dmn", "config.yml")
}

// Save writes the configuration to the specified path.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Load reads the configuration from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// LoadWithEnv loads configuration from file and overrides with environment
// variables. A missing file is not an error; dmn works without one.
func LoadWithEnv(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		cfg = &Config{}
	}

	cfg.LoadFromEnv()
	return cfg, nil
}
