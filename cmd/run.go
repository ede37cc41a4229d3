package cmd

import (
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/log/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/scaletrainer/internal/app"
	"github.com/abhisek/scaletrainer/internal/config"
)

// runApp resolves the config, sets up logging, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Logging disabled:", err)
	}
	defer closeLog()

	logger.Info("starting", "key", cfg.Key, "delay", cfg.FeedbackDelay, "seed", cfg.Seed)

	return app.Run(app.Options{
		Config: cfg,
		Logger: logger,
	})
}

// resolveConfig applies, in increasing priority, the defaults, the .env
// file, the environment, and the command line flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	if err := config.LoadDotEnv(config.DotEnvFile); err != nil {
		fmt.Fprintln(os.Stderr, "Ignoring", config.DotEnvFile+":", err)
	}

	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("key") {
		cfg.Key, _ = flags.GetString("key")
	}
	if flags.Changed("delay") {
		cfg.FeedbackDelay, _ = flags.GetDuration("delay")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger returns a logger writing to cfg.LogFile, or discarding when no
// file is configured. The returned close func is always safe to call.
func newLogger(cfg config.Config) (*log.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		level = log.InfoLevel
	}
	logger := log.NewWithOptions(io.Discard, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})

	if cfg.LogFile == "" {
		return logger, func() {}, nil
	}

	f, err := tea.LogToFileWith(cfg.LogFile, "scaletrainer", logger)
	if err != nil {
		return logger, func() {}, fmt.Errorf("open log file: %w", err)
	}
	return logger, func() { f.Close() }, nil
}
