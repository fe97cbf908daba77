// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// clearEnvironment unsets every variable the loader reads, restoring
// them when the test ends.
func clearEnvironment(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		ConfigEnvVar,
		"ROLLCALL_SERVER_URL",
		"ROLLCALL_REQUEST_TIMEOUT",
		"ROLLCALL_TITLE",
		"ROLLCALL_LOCALE",
		"ROLLCALL_NOTICE_DELAY",
		"ROLLCALL_HIGHLIGHT_DURATION",
		"ROLLCALL_REFRESH_ORDERING",
		"ROLLCALL_NOTICE_EXPIRY",
		"ROLLCALL_NO_COLOR",
		"ROLLCALL_LOG_LEVEL",
		"ROLLCALL_LOG_OUTPUT",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Service.URL != "http://localhost:8000" {
		t.Errorf("Service.URL = %q", cfg.Service.URL)
	}
	if cfg.Display.NoticeDelay != 5*time.Second {
		t.Errorf("NoticeDelay = %v", cfg.Display.NoticeDelay)
	}
	if cfg.Display.HighlightDuration != 1500*time.Millisecond {
		t.Errorf("HighlightDuration = %v", cfg.Display.HighlightDuration)
	}
	if cfg.Display.RefreshOrdering != RefreshLatestIssued {
		t.Errorf("RefreshOrdering = %q", cfg.Display.RefreshOrdering)
	}
	if cfg.Display.NoticeExpiry != NoticeCancelPending {
		t.Errorf("NoticeExpiry = %q", cfg.Display.NoticeExpiry)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestLoad_WithoutConfigFile(t *testing.T) {
	clearEnvironment(t)
	t.Setenv("ROLLCALL_SERVER_URL", "http://school.example:9000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.URL != "http://school.example:9000" {
		t.Errorf("Service.URL = %q", cfg.Service.URL)
	}
	if cfg.Display.NoticeDelay != 5*time.Second {
		t.Errorf("unset variables should keep defaults, NoticeDelay = %v", cfg.Display.NoticeDelay)
	}
}

func TestLoad_WithConfigEnvVar(t *testing.T) {
	clearEnvironment(t)
	path := writeFile(t, "rollcall.yaml", `
service:
  url: http://from-file:8000
display:
  locale: fr
`)
	t.Setenv(ConfigEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Service.URL != "http://from-file:8000" {
		t.Errorf("Service.URL = %q", cfg.Service.URL)
	}
	if cfg.Display.Locale != "fr" {
		t.Errorf("Locale = %q", cfg.Display.Locale)
	}
}

func TestLoadFile_YAML(t *testing.T) {
	clearEnvironment(t)
	path := writeFile(t, "rollcall.yaml", `
service:
  url: https://activities.example.edu
  request_timeout: 3s
display:
  title: Springfield Clubs
  notice_delay: 2s
  highlight_duration: 750ms
  refresh_ordering: last-resolved
  notice_expiry: overlapping
  no_color: true
log:
  level: debug
  output: /tmp/rollcall.log
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Service.URL != "https://activities.example.edu" {
		t.Errorf("Service.URL = %q", cfg.Service.URL)
	}
	if cfg.Service.RequestTimeout != 3*time.Second {
		t.Errorf("RequestTimeout = %v", cfg.Service.RequestTimeout)
	}
	if cfg.Display.Title != "Springfield Clubs" {
		t.Errorf("Title = %q", cfg.Display.Title)
	}
	if cfg.Display.NoticeDelay != 2*time.Second {
		t.Errorf("NoticeDelay = %v", cfg.Display.NoticeDelay)
	}
	if cfg.Display.HighlightDuration != 750*time.Millisecond {
		t.Errorf("HighlightDuration = %v", cfg.Display.HighlightDuration)
	}
	if cfg.Display.RefreshOrdering != RefreshLastResolved {
		t.Errorf("RefreshOrdering = %q", cfg.Display.RefreshOrdering)
	}
	if cfg.Display.NoticeExpiry != NoticeOverlapping {
		t.Errorf("NoticeExpiry = %q", cfg.Display.NoticeExpiry)
	}
	if !cfg.Display.NoColor {
		t.Error("NoColor should be true")
	}
	if cfg.Log.Output != "/tmp/rollcall.log" {
		t.Errorf("Log.Output = %q", cfg.Log.Output)
	}
	level, err := cfg.LogLevel()
	if err != nil || level != slog.LevelDebug {
		t.Errorf("LogLevel = %v, %v", level, err)
	}
}

func TestLoadFile_JSONC(t *testing.T) {
	clearEnvironment(t)
	path := writeFile(t, "rollcall.jsonc", `{
  // Local development server.
  "service": {"url": "http://127.0.0.1:8080"},
  "display": {
    "notice_delay": "1s", /* shorter for demos */
    "locale": "es",
  },
}`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Service.URL != "http://127.0.0.1:8080" {
		t.Errorf("Service.URL = %q", cfg.Service.URL)
	}
	if cfg.Display.NoticeDelay != time.Second {
		t.Errorf("NoticeDelay = %v", cfg.Display.NoticeDelay)
	}
	if cfg.Display.Locale != "es" {
		t.Errorf("Locale = %q", cfg.Display.Locale)
	}
	if cfg.Display.HighlightDuration != 1500*time.Millisecond {
		t.Errorf("absent keys should keep defaults, HighlightDuration = %v", cfg.Display.HighlightDuration)
	}
}

func TestLoadFile_EnvironmentOverridesFile(t *testing.T) {
	clearEnvironment(t)
	path := writeFile(t, "rollcall.yaml", `
service:
  url: http://from-file:8000
display:
  notice_delay: 2s
`)
	t.Setenv("ROLLCALL_SERVER_URL", "http://from-env:8000")
	t.Setenv("ROLLCALL_NOTICE_DELAY", "9s")
	t.Setenv("ROLLCALL_NO_COLOR", "true")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Service.URL != "http://from-env:8000" {
		t.Errorf("Service.URL = %q", cfg.Service.URL)
	}
	if cfg.Display.NoticeDelay != 9*time.Second {
		t.Errorf("NoticeDelay = %v", cfg.Display.NoticeDelay)
	}
	if !cfg.Display.NoColor {
		t.Error("NoColor should be true")
	}
}

func TestLoadFile_Errors(t *testing.T) {
	clearEnvironment(t)

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := writeFile(t, "bad.yaml", "service: [unterminated\n")
	if _, err := LoadFile(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	good := writeFile(t, "good.yaml", "service:\n  url: http://x:1\n")
	t.Setenv("ROLLCALL_NOTICE_DELAY", "soon")
	_, err := LoadFile(good)
	if err == nil {
		t.Fatal("expected error for unparseable duration in environment")
	}
	if !strings.Contains(err.Error(), "parsing environment") {
		t.Errorf("error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"missing url", func(c *Config) { c.Service.URL = "" }, "service.url is required"},
		{"bad scheme", func(c *Config) { c.Service.URL = "ftp://x" }, "http or https"},
		{"no host", func(c *Config) { c.Service.URL = "http://" }, "no host"},
		{"negative timeout", func(c *Config) { c.Service.RequestTimeout = -time.Second }, "request_timeout"},
		{"zero notice delay", func(c *Config) { c.Display.NoticeDelay = 0 }, "notice_delay"},
		{"zero highlight", func(c *Config) { c.Display.HighlightDuration = 0 }, "highlight_duration"},
		{"bad ordering", func(c *Config) { c.Display.RefreshOrdering = "random" }, "refresh_ordering"},
		{"bad expiry", func(c *Config) { c.Display.NoticeExpiry = "never" }, "notice_expiry"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error %q does not mention %q", err, test.wantErr)
			}
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Service.URL = ""
	cfg.Display.NoticeExpiry = "never"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "service.url") || !strings.Contains(err.Error(), "notice_expiry") {
		t.Errorf("expected both problems reported, got %q", err)
	}
}
