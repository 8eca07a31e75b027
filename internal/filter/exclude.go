// Package filter provides entry-name filters for directory listings.
package filter

import (
	"errors"
	"fmt"
	"log/slog"
	"regexp"

	"fexplorer/internal/domain"
)

// ExcludeFilter filters entries based on exclude regex patterns.
type ExcludeFilter struct {
	patterns []*regexp.Regexp
	logger   *slog.Logger
}

// NewExcludeFilter creates a new exclude filter with the given patterns.
func NewExcludeFilter(patterns []string, logger *slog.Logger) (*ExcludeFilter, error) {
	if len(patterns) == 0 {
		return nil, errors.New("no patterns provided for exclude filter")
	}

	compiledPatterns := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q: %w", pattern, err)
		}
		compiledPatterns = append(compiledPatterns, compiled)
	}

	return &ExcludeFilter{
		patterns: compiledPatterns,
		logger:   logger,
	}, nil
}

// ShouldExclude returns true if the entry name matches any exclude pattern.
func (f *ExcludeFilter) ShouldExclude(name string) bool {
	for _, pattern := range f.patterns {
		if pattern.MatchString(name) {
			f.logger.Debug("Entry excluded",
				"name", name,
				"pattern", pattern.String())
			return true
		}
	}
	return false
}

// New returns an ExcludeFilter for patterns, or a NoOpFilter when there are none.
func New(patterns []string, logger *slog.Logger) (domain.EntryFilter, error) {
	if len(patterns) == 0 {
		return NewNoOpFilter(), nil
	}
	exclude, err := NewExcludeFilter(patterns, logger)
	if err != nil {
		return nil, err
	}
	return exclude, nil
}
