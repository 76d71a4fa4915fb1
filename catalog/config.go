package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tailored-agentic-units/patterns/behavioral/memento"
	"github.com/tailored-agentic-units/patterns/structural/proxy"
)

const defaultConcurrency = 4

// Config holds settings shared by the CLI and individual demos.
type Config struct {
	Demos       []string       `json:"demos,omitempty" yaml:"demos,omitempty"`
	Category    string         `json:"category,omitempty" yaml:"category,omitempty"`
	Observer    string         `json:"observer,omitempty" yaml:"observer,omitempty"`
	Concurrency int            `json:"concurrency,omitempty" yaml:"concurrency,omitempty"`
	Proxy       proxy.Config   `json:"proxy" yaml:"proxy"`
	History     memento.Config `json:"history" yaml:"history"`
}

// DefaultConfig returns a Config with sensible defaults for all demos.
func DefaultConfig() Config {
	return Config{
		Observer:    "slog",
		Concurrency: defaultConcurrency,
		Proxy:       proxy.DefaultConfig(),
		History:     memento.DefaultConfig(),
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	c.Proxy.Merge(&source.Proxy)
	c.History.Merge(&source.History)

	if len(source.Demos) > 0 {
		c.Demos = source.Demos
	}
	if source.Category != "" {
		c.Category = source.Category
	}
	if source.Observer != "" {
		c.Observer = source.Observer
	}
	if source.Concurrency > 0 {
		c.Concurrency = source.Concurrency
	}
}

// LoadConfig reads a JSON or YAML config file (by extension: .yaml and .yml
// are YAML, anything else JSON), merges it with defaults, and returns the
// resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &loaded)
	default:
		err = json.Unmarshal(data, &loaded)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
