package app

import (
	"context"
	"io"
	"log/slog"
	"os"

	"fexplorer/internal/config"
	"fexplorer/internal/domain"
	"fexplorer/internal/explorer"
	"fexplorer/internal/logging"
)

// App contains all application dependencies.
type App struct {
	// File operations
	FileSystem domain.FileSystemAdapter

	// I/O dependencies
	Console domain.Console

	// Logging
	Logger *slog.Logger

	// StartDir is the absolute directory new sessions start in.
	StartDir string

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	Logging logging.Config
	// StartDir is the start directory as configured, possibly relative or
	// empty. NewAppWithConfig resolves it into App.StartDir, which is the
	// field sessions use.
	StartDir string
	Stdin    io.Reader
	Stdout   io.Writer
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithSettings applies resolved settings. The log output already configured is kept.
func WithSettings(settings *config.Settings) Option {
	return func(cfg *Config) {
		cfg.Logging = settings.LoggingConfig(cfg.Logging.Output)
		if settings.StartDir != "" {
			WithStartDir(settings.StartDir)(cfg)
		}
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		if verbose {
			cfg.Logging.Level = logging.LevelDebug
		}
	}
}

// WithStartDir sets the directory sessions start in.
func WithStartDir(dir string) Option {
	return func(cfg *Config) {
		cfg.StartDir = dir
	}
}

// WithIO sets the console streams and the log output.
func WithIO(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(cfg *Config) {
		cfg.Stdin = stdin
		cfg.Stdout = stdout
		cfg.Logging.Output = stderr
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		Logging: logging.DefaultConfig(),
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}

// NewExplorer creates an Explorer positioned at dir, or at StartDir when dir is empty.
func (a *App) NewExplorer(dir string, opts ...explorer.Option) *explorer.Explorer {
	if dir == "" {
		dir = a.StartDir
	}
	return explorer.New(dir, a.FileSystem, a.Console, a.Logger, opts...)
}
