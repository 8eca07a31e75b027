package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fexplorer/internal/app"
	"fexplorer/internal/config"
	"fexplorer/internal/logging"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string
	envFile string

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "fexplorer",
	Short: "An interactive command-line file browser",
	Long: `fexplorer lists the current directory with sizes and modification ages
and lets you change directory, copy, delete and create files from a numbered menu.

Any filesystem error ends the session with a non-zero exit status.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: initApp,
	RunE:              runBrowse,
}

func Execute() {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fexplorer/config.yaml)")
	rootCmd.PersistentFlags().
		StringVar(&envFile, "env-file", "", "dotenv file with FEXPLORER_* settings")
	rootCmd.PersistentFlags().
		BoolP(config.KeyVerbose, "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		String(config.KeyLogLevel, string(logging.LevelWarn), "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().
		String(config.KeyLogFormat, logging.FormatAuto, "Log format: auto (text on a terminal, json otherwise), text, json")
	rootCmd.PersistentFlags().
		String(config.KeyDir, "", "Directory to start in (default is the current working directory)")
}

func initApp(cmd *cobra.Command, _ []string) error {
	home, err := os.UserHomeDir()
	if err != nil && cfgFile == "" {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}
	if err := config.Init(v, cfgFile, home); err != nil {
		return err
	}
	if envFile != "" {
		if err := config.LoadEnvFile(v, envFile); err != nil {
			return err
		}
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	// Initialize the application with dependency injection
	application, err = app.NewApp(cmd.Context(),
		app.WithIO(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr()),
		app.WithSettings(settings),
		app.WithVerbose(settings.Verbose),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if used := v.ConfigFileUsed(); used != "" {
		application.Logger.DebugContext(cmd.Context(), "Using config file", "path", used)
	}
	return nil
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return errors.New("application not initialized")
	}

	return app.NewExplorer("").Run(cmd.Context())
}
