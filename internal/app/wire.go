package app

import (
	"context"
	"fmt"
	"path/filepath"

	"fexplorer/internal/adapters/filesystem"
	"fexplorer/internal/adapters/terminal"
	"fexplorer/internal/logging"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger, picking the handler format from the log stream when asked to.
	cfg.Logging.Format = logging.ResolveFormat(cfg.Logging.Format, terminal.IsTerminal(cfg.Logging.Output))
	logger := logging.NewLogger(cfg.Logging)

	// Create filesystem adapter.
	fs := filesystem.New()

	// Create console over the configured streams.
	console := terminal.NewAdapter(cfg.Stdin, cfg.Stdout)

	startDir := cfg.StartDir
	if startDir == "" {
		wd, err := fs.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		startDir = wd
	}
	startDir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	// Log configuration details.
	logger.DebugContext(ctx, "Initializing fexplorer with configuration",
		"logLevel", string(cfg.Logging.Level),
		"logFormat", cfg.Logging.Format,
		"startDir", startDir,
		"interactive", console.IsInteractive())

	return &App{
		FileSystem: fs,
		Console:    console,
		Logger:     logger,
		StartDir:   startDir,
		Config:     cfg,
	}, nil
}
