// Package config loads fexplorer settings from flags, environment and an
// optional YAML file through viper.
package config

import (
	stderrors "errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"fexplorer/internal/errors"
	"fexplorer/internal/logging"
)

// Setting keys. Flags use the same names; environment variables use the
// FEXPLORER_ prefix with dashes replaced by underscores.
const (
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyVerbose   = "verbose"
	KeyDir       = "dir"

	EnvPrefix = "FEXPLORER"
)

// Settings represents the resolved application configuration.
type Settings struct {
	LogLevel  logging.LogLevel
	LogFormat string
	// Verbose forces debug logging regardless of LogLevel.
	Verbose bool
	// StartDir is the absolute directory the session starts in. Empty means the
	// process working directory.
	StartDir string
}

// DefaultConfigPath returns the default config file location under home.
func DefaultConfigPath(home string) string {
	return filepath.Join(home, ".config", "fexplorer", "config.yaml")
}

// SetDefaults registers default values for every setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, string(logging.LevelWarn))
	v.SetDefault(KeyLogFormat, logging.FormatAuto)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyDir, "")
}

// Init points v at the config file and environment. An explicit cfgFile must
// be readable; the default file under home is optional.
func Init(v *viper.Viper, cfgFile, home string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultConfigPath(home)))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && stderrors.As(err, &notFound) {
			return nil
		}
		return errors.NewConfigurationError("config", cfgFile, "failed to read config file", err)
	}

	return nil
}

// LoadEnvFile merges FEXPLORER_ variables from a dotenv file into v. Values
// land in the config layer, so flags and real environment variables still win
// and the YAML file loses. Other variables in the file are ignored.
func LoadEnvFile(v *viper.Viper, path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return errors.NewConfigurationError("env-file", path, "failed to read env file", err)
	}

	settings := make(map[string]any, len(vars))
	for key, value := range vars {
		name, ok := strings.CutPrefix(key, EnvPrefix+"_")
		if !ok || name == "" {
			continue
		}
		settings[strings.ReplaceAll(strings.ToLower(name), "_", "-")] = value
	}

	if err := v.MergeConfigMap(settings); err != nil {
		return errors.NewConfigurationError("env-file", path, "failed to merge env file", err)
	}
	return nil
}

// Load resolves and validates settings from v.
func Load(v *viper.Viper) (*Settings, error) {
	level := strings.ToLower(strings.TrimSpace(v.GetString(KeyLogLevel)))
	if !logging.IsValidLevel(level) {
		return nil, errors.NewConfigurationError(KeyLogLevel, level,
			"log level must be one of: debug, info, warn, error", nil)
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString(KeyLogFormat)))
	if !logging.IsValidFormat(format) {
		return nil, errors.NewConfigurationError(KeyLogFormat, format,
			"log format must be one of: auto, text, json", nil)
	}

	settings := &Settings{
		LogLevel:  logging.LogLevel(level),
		LogFormat: format,
		Verbose:   v.GetBool(KeyVerbose),
	}

	if dir := strings.TrimSpace(v.GetString(KeyDir)); dir != "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, errors.NewConfigurationError(KeyDir, dir, "failed to resolve start directory", err)
		}
		settings.StartDir = abs
	}

	return settings, nil
}

// LoggingConfig returns the logger configuration for these settings.
func (s *Settings) LoggingConfig(output io.Writer) logging.Config {
	return logging.Config{
		Level:  s.LogLevel,
		Format: s.LogFormat,
		Output: output,
	}
}
