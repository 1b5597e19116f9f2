// SPDX-License-Identifier: MIT
package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	tmp := t.TempDir()
	path := filepath.Join(tmp, "toolkit.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	return path
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig("")
	if err != nil {
		t.Errorf("expected nil error, got %v", err)
	}
	if cfg == nil {
		t.Error("expected default config, got nil")
	}
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig("nonexistent.yaml")
	if err == nil {
		t.Errorf("expected error for missing file, got nil")
	}
	if cfg != nil {
		t.Errorf("expected nil config on error, got %+v", cfg)
	}
}

func TestLoadConfig_UnmarshalError(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, ":\n:bad")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
		t.Error("expected unmarshal error, got nil or wrong error")
	}
}

func TestLoadConfig_FileValues(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, `debug: true
log_level: debug
random:
  count: 5
accuracy:
  samples: 512
  seed: 42
output:
  format: csv
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !cfg.Debug {
		t.Error("expected debug to be true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level debug, got %q", cfg.LogLevel)
	}
	if cfg.Random.Count != 5 {
		t.Errorf("expected random.count 5, got %d", cfg.Random.Count)
	}
	if cfg.Accuracy.Samples != 512 {
		t.Errorf("expected accuracy.samples 512, got %d", cfg.Accuracy.Samples)
	}
	if cfg.Accuracy.Seed != 42 {
		t.Errorf("expected accuracy.seed 42, got %d", cfg.Accuracy.Seed)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("expected output.format csv, got %q", cfg.Output.Format)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, "random:\n  count: 3\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.Random.Count != 3 {
		t.Errorf("expected random.count 3, got %d", cfg.Random.Count)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected default log_level, got %q", cfg.LogLevel)
	}
	if cfg.Accuracy.Samples != DefaultAccuracySamples {
		t.Errorf("expected default accuracy.samples, got %d", cfg.Accuracy.Samples)
	}
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	t.Parallel()
	path := writeTempConfig(t, "output:\n  format: xml\n")
	_, err := LoadConfig(path)
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Error("expected validation error, got nil or wrong error")
	}
}

// No t.Parallel here or below: t.Setenv forbids it.
func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("TOOLKIT_LOG_LEVEL", "debug")
	t.Setenv("TOOLKIT_RANDOM_COUNT", "7")
	t.Setenv("TOOLKIT_ACCURACY_SAMPLES", "128")
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log_level debug, got %q", cfg.LogLevel)
	}
	if cfg.Random.Count != 7 {
		t.Errorf("expected random.count 7, got %d", cfg.Random.Count)
	}
	if cfg.Accuracy.Samples != 128 {
		t.Errorf("expected accuracy.samples 128, got %d", cfg.Accuracy.Samples)
	}
}

func TestLoadConfig_EnvBeatsFile(t *testing.T) {
	path := writeTempConfig(t, "log_level: warn\n")
	t.Setenv("TOOLKIT_LOG_LEVEL", "error")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("expected env to win over file, got %q", cfg.LogLevel)
	}
}

func TestLoadConfig_BadEnvValue(t *testing.T) {
	t.Setenv("TOOLKIT_RANDOM_COUNT", "many")
	_, err := LoadConfig("")
	if err == nil || !strings.Contains(err.Error(), "failed to parse environment overrides") {
		t.Error("expected env parse error, got nil or wrong error")
	}
}

func TestNewConfigDefaults(t *testing.T) {
	t.Parallel()
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate, got %v", err)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected log_level %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.Random.Count != DefaultRandomCount {
		t.Errorf("expected random.count %d, got %d", DefaultRandomCount, cfg.Random.Count)
	}
	if cfg.Accuracy.Samples != DefaultAccuracySamples {
		t.Errorf("expected accuracy.samples %d, got %d", DefaultAccuracySamples, cfg.Accuracy.Samples)
	}
	if cfg.Output.Format != DefaultOutputFormat {
		t.Errorf("expected output.format %q, got %q", DefaultOutputFormat, cfg.Output.Format)
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"zero count", func(c *Config) { c.Random.Count = 0 }},
		{"negative count", func(c *Config) { c.Random.Count = -4 }},
		{"zero samples", func(c *Config) { c.Accuracy.Samples = 0 }},
		{"oversized samples", func(c *Config) { c.Accuracy.Samples = MaxAccuracySamples + 1 }},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
