package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	config := Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
	}

	logger := NewLogger(config)
	require.NotNil(t, logger)

	logger.Info("test message", "key", "value")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "test message", record["msg"])
	assert.Equal(t, "value", record["key"])
}

func TestNewLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	logger.InfoContext(context.Background(), "test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "INFO")
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, LevelWarn, config.Level)
	assert.Equal(t, FormatAuto, config.Format)
	assert.NotNil(t, config.Output)
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level    LogLevel
		logFunc  func(logger *slog.Logger, msg string)
		expected bool
	}{
		{LevelDebug, func(l *slog.Logger, msg string) { l.Debug(msg) }, true},
		{LevelInfo, func(l *slog.Logger, msg string) { l.Debug(msg) }, false},
		{LevelInfo, func(l *slog.Logger, msg string) { l.Info(msg) }, true},
		{LevelWarn, func(l *slog.Logger, msg string) { l.Info(msg) }, false},
		{LevelWarn, func(l *slog.Logger, msg string) { l.Warn(msg) }, true},
		{LevelError, func(l *slog.Logger, msg string) { l.Warn(msg) }, false},
		{LevelError, func(l *slog.Logger, msg string) { l.Error(msg) }, true},
	}

	for _, test := range tests {
		var buf bytes.Buffer
		logger := NewLogger(Config{Level: test.level, Format: FormatText, Output: &buf})
		test.logFunc(logger, "test message")

		containsMessage := strings.Contains(buf.String(), "test message")
		if containsMessage != test.expected {
			t.Errorf("Level %s: expected message present = %v, got = %v, output: %s",
				test.level, test.expected, containsMessage, buf.String())
		}
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level LogLevel
		want  slog.Level
	}{
		{name: "debug", level: LevelDebug, want: slog.LevelDebug},
		{name: "upper_case", level: "WARN", want: slog.LevelWarn},
		{name: "error", level: LevelError, want: slog.LevelError},
		{name: "unknown_falls_back_to_info", level: "verbose", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.SlogLevel())
		})
	}
}

func TestIsValidLevelAndFormat(t *testing.T) {
	assert.True(t, IsValidLevel("debug"))
	assert.True(t, IsValidLevel("Error"))
	assert.False(t, IsValidLevel("trace"))

	assert.True(t, IsValidFormat(FormatJSON))
	assert.True(t, IsValidFormat(FormatText))
	assert.True(t, IsValidFormat(FormatAuto))
	assert.False(t, IsValidFormat("xml"))
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		terminal bool
		want     string
	}{
		{name: "auto_on_terminal", format: FormatAuto, terminal: true, want: FormatText},
		{name: "auto_redirected", format: FormatAuto, terminal: false, want: FormatJSON},
		{name: "explicit_text_redirected", format: FormatText, terminal: false, want: FormatText},
		{name: "explicit_json_on_terminal", format: FormatJSON, terminal: true, want: FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveFormat(tt.format, tt.terminal))
		})
	}
}

func TestWithOperation(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(Config{Level: LevelInfo, Format: FormatText, Output: &buf})

	WithOperation(logger, "copy").Info("starting operation")

	output := buf.String()
	assert.Contains(t, output, "starting operation")
	assert.Contains(t, output, "operation=copy")
}

func TestNewTestLogger(t *testing.T) {
	logger := NewTestLogger()
	require.NotNil(t, logger)

	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelError))

	logger.DebugContext(ctx, "debug message")
	logger.ErrorContext(ctx, "error message")
}
