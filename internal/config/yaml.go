// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"toolkit/pkg/fsutil"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// envPrefix namespaces every override so the toolkit never collides
// with unrelated process environment.
const envPrefix = "TOOLKIT_"

// LoadConfig loads configuration from a YAML file specified by path. If
// path is empty, it searches default locations ("toolkit.yaml"); if no
// file is found, the built-in defaults apply. After loading, it applies
// TOOLKIT_* environment variable overrides and validates the final
// configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := NewConfig()

	if path == "" {
		candidates := []string{"toolkit.yaml"}
		for _, candidate := range candidates {
			if fsutil.Exists(candidate) {
				path = candidate
				break
			}
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Environment overrides win over file values.
	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyEnvOverrides maps TOOLKIT_* environment variables onto the
// config struct via its env tags. Unset variables leave the current
// values untouched.
func applyEnvOverrides(cfg *Config) error {
	return env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix})
}
