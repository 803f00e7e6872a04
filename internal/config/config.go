package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"godice/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Analysis AnalysisConfig
	Output   OutputConfig
	LogLevel string
}

// AnalysisConfig holds the statistical defaults
type AnalysisConfig struct {
	Column string  // column extracted from the input table
	Alpha  float64 // significance level for the non-inferiority verdict
	Bins   int     // histogram bin count
}

// OutputConfig holds artifact destinations
type OutputConfig struct {
	Dir string // directory for histogram.png / report.html
}

// Load reads configuration from a local .env (if present) and the
// environment, then validates it. CLI flags override the result.
func Load() (*Config, error) {
	// .env is optional; environment wins when both are set
	_ = godotenv.Load()

	cfg := &Config{
		Analysis: AnalysisConfig{
			Column: getEnvOrDefault("GODICE_COLUMN", "Dice"),
			Alpha:  0.05,
			Bins:   30,
		},
		Output: OutputConfig{
			Dir: getEnvOrDefault("GODICE_OUT_DIR", "."),
		},
		LogLevel: getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if alphaStr := os.Getenv("GODICE_ALPHA"); alphaStr != "" {
		alpha, err := strconv.ParseFloat(alphaStr, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid GODICE_ALPHA %q", alphaStr)
		}
		cfg.Analysis.Alpha = alpha
	}

	if binsStr := os.Getenv("GODICE_BINS"); binsStr != "" {
		bins, err := strconv.Atoi(binsStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid GODICE_BINS %q", binsStr)
		}
		cfg.Analysis.Bins = bins
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Analysis.Column == "" {
		return errors.ConfigInvalid("column name cannot be empty")
	}
	if c.Analysis.Alpha <= 0 || c.Analysis.Alpha >= 1 {
		return errors.ConfigInvalid("alpha must be in (0, 1)")
	}
	if c.Analysis.Bins < 1 {
		return errors.ConfigInvalid("bins must be positive")
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
