// Package config loads host-level wiring for a sessionscope Manager from a
// yaml document addressed by URL (file://, mem://, or a plain path).
package config

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Config describes how a Manager is wired.
type Config struct {
	// SnapshotURL is the base URL suspended scopes are persisted under.
	// Empty keeps snapshots in process memory.
	SnapshotURL string `yaml:"snapshotURL,omitempty" json:"snapshotURL,omitempty"`
	// LogLevel is one of debug, info, warn, error (default info).
	LogLevel string `yaml:"logLevel,omitempty" json:"logLevel,omitempty"`
	// LogFormat is json or text (default json).
	LogFormat string `yaml:"logFormat,omitempty" json:"logFormat,omitempty"`
}

// Load reads and validates a config document from URL.
func Load(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", URL, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", URL, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enum fields.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "", "json", "text":
	default:
		return fmt.Errorf("unsupported log format %q", c.LogFormat)
	}
	return nil
}
