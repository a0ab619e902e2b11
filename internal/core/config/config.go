// Package config handles configuration loading and validation for postbrowser.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/postbrowser/internal/core/browser"
	"github.com/colonyops/postbrowser/internal/core/post"
	"github.com/colonyops/postbrowser/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Endpoint       string        `yaml:"endpoint"`
	Timeout        time.Duration `yaml:"timeout"`
	PageSize       int           `yaml:"page_size"`
	TruncateLength int           `yaml:"truncate_length"`
	MessageTTL     time.Duration `yaml:"message_ttl"`
	Theme          string        `yaml:"theme"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint:       post.DefaultEndpoint,
		Timeout:        10 * time.Second,
		PageSize:       browser.DefaultPageSize,
		TruncateLength: browser.DefaultTruncateAt,
		MessageTTL:     6 * time.Second,
		Theme:          styles.DefaultTheme,
	}
}

// Load reads configuration from the given path.
// If configPath is empty or doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Endpoint == "" {
		c.Endpoint = defaults.Endpoint
	}
	if c.Timeout == 0 {
		c.Timeout = defaults.Timeout
	}
	if c.PageSize == 0 {
		c.PageSize = defaults.PageSize
	}
	if c.TruncateLength == 0 {
		c.TruncateLength = defaults.TruncateLength
	}
	if c.MessageTTL == 0 {
		c.MessageTTL = defaults.MessageTTL
	}
	if c.Theme == "" {
		c.Theme = defaults.Theme
	}
}

// BrowserOptions returns the initial state options for the browser.
func (c *Config) BrowserOptions() browser.Options {
	return browser.Options{
		PageSize:   c.PageSize,
		TruncateAt: c.TruncateLength,
	}
}
