package config

import "fmt"

// Core configuration constants that define the defaults and limits for
// the toolkit.
const (
	DefaultLogLevel        = "info"  // Quiet operation
	DefaultRandomCount     = 1       // One value per rand invocation
	DefaultAccuracySamples = 4096    // Grid points per function
	DefaultAccuracySeed    = 1       // Reproducible sweep grids
	DefaultOutputFormat    = "table" // Human-readable rendering

	// Processing limits
	MaxAccuracySamples = 1 << 20 // Grids beyond this are a mistake, not a workload
)

// Config holds all runtime configuration for the toolkit, merged from
// built-in defaults, an optional YAML file and TOOLKIT_* environment
// variables, in that order.
type Config struct {
	Debug    bool           `yaml:"debug" env:"DEBUG"`         // Force debug logging
	LogLevel string         `yaml:"log_level" env:"LOG_LEVEL"` // Logging level (e.g. "debug", "info", "warn", "error")
	Random   RandomConfig   `yaml:"random" envPrefix:"RANDOM_"`
	Accuracy AccuracyConfig `yaml:"accuracy" envPrefix:"ACCURACY_"`
	Output   OutputConfig   `yaml:"output" envPrefix:"OUTPUT_"`
}

// RandomConfig holds settings for the rand subcommands.
type RandomConfig struct {
	Count int `yaml:"count" env:"COUNT"` // Values emitted per invocation
}

// AccuracyConfig holds settings for the approximation error sweep.
type AccuracyConfig struct {
	Samples int    `yaml:"samples" env:"SAMPLES"` // Grid points per function
	Seed    uint64 `yaml:"seed" env:"SEED"`       // Seed for the jittered sweep grid
}

// OutputConfig holds settings for rendering command results.
type OutputConfig struct {
	Format string `yaml:"format" env:"FORMAT"` // "table" or "csv"
}

// NewConfig returns a Config populated with the built-in defaults.
// This is the base configuration before file and environment layers
// are applied.
func NewConfig() *Config {
	return &Config{
		Debug:    false,
		LogLevel: DefaultLogLevel,
		Random: RandomConfig{
			Count: DefaultRandomCount,
		},
		Accuracy: AccuracyConfig{
			Samples: DefaultAccuracySamples,
			Seed:    DefaultAccuracySeed,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// Validate rejects values no command could run with.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("log_level %q is not a recognized level", c.LogLevel)
	}

	if c.Random.Count <= 0 {
		return fmt.Errorf("random.count must be positive, got %d", c.Random.Count)
	}

	if c.Accuracy.Samples <= 0 || c.Accuracy.Samples > MaxAccuracySamples {
		return fmt.Errorf("accuracy.samples must be in 1..%d, got %d", MaxAccuracySamples, c.Accuracy.Samples)
	}

	switch c.Output.Format {
	case "table", "csv":
	default:
		return fmt.Errorf("output.format must be %q or %q, got %q", "table", "csv", c.Output.Format)
	}

	return nil
}
