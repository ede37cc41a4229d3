package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"charm.land/log/v2"
	"github.com/joho/godotenv"

	"github.com/abhisek/scaletrainer/internal/scales"
	"github.com/abhisek/scaletrainer/internal/trainer"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvKey           = "SCALETRAINER_KEY"
	EnvFeedbackDelay = "SCALETRAINER_FEEDBACK_DELAY"
	EnvSeed          = "SCALETRAINER_SEED"
	EnvLogFile       = "SCALETRAINER_LOG_FILE"
	EnvLogLevel      = "SCALETRAINER_LOG_LEVEL"
)

// DotEnvFile is the optional file loaded into the environment before
// variables are read. Variables already set in the process win.
const DotEnvFile = ".env"

// Config holds the trainer settings.
type Config struct {
	// Key is the scale selected at startup.
	Key string

	// FeedbackDelay is how long feedback stays up before the next question.
	FeedbackDelay time.Duration

	// Seed for the degree generator. 0 seeds from the clock.
	Seed int64

	// LogFile receives the debug log. Empty disables logging; the
	// terminal belongs to the TUI.
	LogFile string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Key:           scales.DefaultKey,
		FeedbackDelay: trainer.DefaultFeedbackDelay,
		LogLevel:      "info",
	}
}

// LoadDotEnv loads path into the process environment. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if k := os.Getenv(EnvKey); k != "" {
		cfg.Key = k
	}
	if d := os.Getenv(EnvFeedbackDelay); d != "" {
		delay, err := time.ParseDuration(d)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvFeedbackDelay, err)
		}
		cfg.FeedbackDelay = delay
	}
	if s := os.Getenv(EnvSeed); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	}
	if f := os.Getenv(EnvLogFile); f != "" {
		cfg.LogFile = f
	}
	if l := os.Getenv(EnvLogLevel); l != "" {
		cfg.LogLevel = l
	}

	return cfg, nil
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if !scales.IsKey(c.Key) {
		return fmt.Errorf("config: %w", &scales.InvalidKeyError{Key: c.Key})
	}
	if c.FeedbackDelay <= 0 {
		return fmt.Errorf("config: feedback delay must be positive, got %s", c.FeedbackDelay)
	}
	if _, err := c.Level(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (log.Level, error) {
	return log.ParseLevel(c.LogLevel)
}
