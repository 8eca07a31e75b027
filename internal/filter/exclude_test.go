package filter

import (
	"testing"

	"fexplorer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExcludeFilter_Success(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
	}{
		{
			name:     "single pattern",
			patterns: []string{`\.log$`},
		},
		{
			name:     "multiple patterns",
			patterns: []string{`\.log$`, `^\.`, "~$"},
		},
		{
			name:     "complex regex patterns",
			patterns: []string{`^(build|dist)$`, `\.(tmp|swp)$`, `^core\.\d+$`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			filter, err := NewExcludeFilter(tt.patterns, testutil.Logger())

			// Assert
			require.NoError(t, err)
			assert.NotNil(t, filter)
			assert.Len(t, filter.patterns, len(tt.patterns))
		})
	}
}

func TestNewExcludeFilter_NoPatterns(t *testing.T) {
	for _, patterns := range [][]string{nil, {}} {
		// Act
		filter, err := NewExcludeFilter(patterns, testutil.Logger())

		// Assert
		require.Error(t, err)
		assert.Nil(t, filter)
		assert.Contains(t, err.Error(), "no patterns provided for exclude filter")
	}
}

func TestNewExcludeFilter_InvalidRegex(t *testing.T) {
	tests := []struct {
		name     string
		patterns []string
	}{
		{name: "invalid bracket", patterns: []string{"[invalid"}},
		{name: "invalid escape", patterns: []string{`\`}},
		{name: "invalid quantifier", patterns: []string{"*.log"}},
		{name: "mixed valid and invalid", patterns: []string{`\.log$`, "[invalid"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			filter, err := NewExcludeFilter(tt.patterns, testutil.Logger())

			// Assert
			require.Error(t, err)
			assert.Nil(t, filter)
			assert.Contains(t, err.Error(), "invalid regex pattern")
		})
	}
}

func TestExcludeFilter_ShouldExclude(t *testing.T) {
	// Arrange
	filter, err := NewExcludeFilter([]string{`\.log$`, `^\.`, `^core\.\d+$`}, testutil.Logger())
	require.NoError(t, err)

	tests := []struct {
		name        string
		entryName   string
		shouldMatch bool
	}{
		{name: "log file", entryName: "app.log", shouldMatch: true},
		{name: "hidden file", entryName: ".gitignore", shouldMatch: true},
		{name: "core dump", entryName: "core.1234", shouldMatch: true},
		{name: "core without digits", entryName: "core.txt", shouldMatch: false},
		{name: "log in the middle", entryName: "app.log.txt", shouldMatch: false},
		{name: "regular file", entryName: "main.go", shouldMatch: false},
		{name: "case sensitive", entryName: "APP.LOG", shouldMatch: false},
		{name: "empty name", entryName: "", shouldMatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			result := filter.ShouldExclude(tt.entryName)

			// Assert
			assert.Equal(t, tt.shouldMatch, result)
		})
	}
}

func TestNoOpFilter_ShouldExclude(t *testing.T) {
	filter := NewNoOpFilter()

	for _, name := range []string{"", "a.log", ".hidden", "ファイル"} {
		assert.False(t, filter.ShouldExclude(name), "entry %q should not be excluded", name)
	}
}

func TestNew(t *testing.T) {
	t.Run("no patterns yields no-op filter", func(t *testing.T) {
		filter, err := New(nil, testutil.Logger())

		require.NoError(t, err)
		assert.IsType(t, &NoOpFilter{}, filter)
	})

	t.Run("patterns yield exclude filter", func(t *testing.T) {
		filter, err := New([]string{`\.log$`}, testutil.Logger())

		require.NoError(t, err)
		assert.IsType(t, &ExcludeFilter{}, filter)
		assert.True(t, filter.ShouldExclude("x.log"))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := New([]string{"["}, testutil.Logger())

		require.Error(t, err)
	})
}
