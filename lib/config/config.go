// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ConfigEnvVar names the environment variable [Load] reads the config
// file path from.
const ConfigEnvVar = "ROLLCALL_CONFIG"

// Accepted values for the ordering and expiry policy fields.
const (
	RefreshLatestIssued = "latest-issued"
	RefreshLastResolved = "last-resolved"

	NoticeCancelPending = "cancel-pending"
	NoticeOverlapping   = "overlapping"
)

// Config is the master configuration for the rollcall client.
type Config struct {
	// Service locates the remote activity service.
	Service ServiceConfig `yaml:"service"`

	// Display configures what the operator sees and for how long.
	Display DisplayConfig `yaml:"display"`

	// Log configures diagnostic logging.
	Log LogConfig `yaml:"log"`
}

// ServiceConfig locates the remote activity service.
type ServiceConfig struct {
	// URL is the base URL that /activities is resolved against.
	URL string `yaml:"url" env:"ROLLCALL_SERVER_URL"`

	// RequestTimeout bounds each HTTP request. Zero leaves requests
	// bounded only by the transport.
	RequestTimeout time.Duration `yaml:"request_timeout" env:"ROLLCALL_REQUEST_TIMEOUT"`
}

// DisplayConfig configures rendering and timing.
type DisplayConfig struct {
	// Title is the heading shown above the activity list.
	Title string `yaml:"title" env:"ROLLCALL_TITLE"`

	// Locale selects the language for fallback and label strings.
	// Empty means the LANG environment variable, then English.
	Locale string `yaml:"locale" env:"ROLLCALL_LOCALE"`

	// NoticeDelay is how long a notice stays visible.
	NoticeDelay time.Duration `yaml:"notice_delay" env:"ROLLCALL_NOTICE_DELAY"`

	// HighlightDuration is how long a card stays highlighted after a
	// successful signup.
	HighlightDuration time.Duration `yaml:"highlight_duration" env:"ROLLCALL_HIGHLIGHT_DURATION"`

	// RefreshOrdering is "latest-issued" or "last-resolved".
	RefreshOrdering string `yaml:"refresh_ordering" env:"ROLLCALL_REFRESH_ORDERING"`

	// NoticeExpiry is "cancel-pending" or "overlapping".
	NoticeExpiry string `yaml:"notice_expiry" env:"ROLLCALL_NOTICE_EXPIRY"`

	// NoColor strips all color from the interface.
	NoColor bool `yaml:"no_color" env:"ROLLCALL_NO_COLOR"`
}

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is debug, info, warn, or error.
	Level string `yaml:"level" env:"ROLLCALL_LOG_LEVEL"`

	// Output is a file that receives every record as JSON in addition
	// to the status line. Empty disables file logging.
	Output string `yaml:"output" env:"ROLLCALL_LOG_OUTPUT"`
}

// Default returns a configuration with the built-in defaults.
func Default() *Config {
	return &Config{
		Service: ServiceConfig{
			URL:            "http://localhost:8000",
			RequestTimeout: 10 * time.Second,
		},
		Display: DisplayConfig{
			Title:             "Mergington High School Activities",
			NoticeDelay:       5 * time.Second,
			HighlightDuration: 1500 * time.Millisecond,
			RefreshOrdering:   RefreshLatestIssued,
			NoticeExpiry:      NoticeCancelPending,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from defaults, the file named by
// ROLLCALL_CONFIG if set, and environment overrides.
func Load() (*Config, error) {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return LoadFile(path)
	}
	cfg := Default()
	if err := cfg.applyEnvironment(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile builds the configuration from defaults, the file at path,
// and environment overrides. Keys absent from the file keep their
// default values.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnvironment(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges a single configuration file into the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		// Stripped JSON is valid YAML, so one decoder handles both
		// formats and durations parse the same way.
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// applyEnvironment overwrites fields whose ROLLCALL_* variable is set.
func (c *Config) applyEnvironment() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Service.URL == "" {
		errs = append(errs, fmt.Errorf("service.url is required"))
	} else if parsed, err := url.Parse(c.Service.URL); err != nil {
		errs = append(errs, fmt.Errorf("service.url: %w", err))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errs = append(errs, fmt.Errorf("service.url must be an http or https URL, got %q", c.Service.URL))
	} else if parsed.Host == "" {
		errs = append(errs, fmt.Errorf("service.url has no host: %q", c.Service.URL))
	}

	if c.Service.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("service.request_timeout must not be negative"))
	}
	if c.Display.NoticeDelay <= 0 {
		errs = append(errs, fmt.Errorf("display.notice_delay must be positive"))
	}
	if c.Display.HighlightDuration <= 0 {
		errs = append(errs, fmt.Errorf("display.highlight_duration must be positive"))
	}

	orderings := []string{RefreshLatestIssued, RefreshLastResolved}
	if !contains(orderings, c.Display.RefreshOrdering) {
		errs = append(errs, fmt.Errorf("display.refresh_ordering must be one of: %v", orderings))
	}
	expiries := []string{NoticeCancelPending, NoticeOverlapping}
	if !contains(expiries, c.Display.NoticeExpiry) {
		errs = append(errs, fmt.Errorf("display.notice_expiry must be one of: %v", expiries))
	}

	if _, err := c.LogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

func contains(slice []string, s string) bool {
	for _, item := range slice {
		if item == s {
			return true
		}
	}
	return false
}
