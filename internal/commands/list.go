// Package commands holds the one-shot operations behind the non-interactive subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fexplorer/internal/domain"
	"fexplorer/internal/explorer"
	"fexplorer/internal/filter"
	"fexplorer/internal/logging"
)

// ListCommand handles listing a single directory.
type ListCommand struct {
	fs     domain.FileSystemAdapter
	logger *slog.Logger
	now    func() time.Time
}

// NewListCommand creates a new list command.
func NewListCommand(fs domain.FileSystemAdapter, logger *slog.Logger) *ListCommand {
	return &ListCommand{
		fs:     fs,
		logger: logger,
		now:    time.Now,
	}
}

// ListRequest contains the parameters for the list command.
type ListRequest struct {
	Dir    string
	Filter domain.EntryFilter // nil keeps every entry
}

// ListResult contains the result of the list command.
type ListResult struct {
	Dir      string
	Entries  []domain.DirectoryEntry
	Count    int
	Excluded int
}

// Execute runs the list command.
func (c *ListCommand) Execute(ctx context.Context, req ListRequest) (*ListResult, error) {
	logger := logging.WithOperation(c.logger, "list")
	logger.DebugContext(ctx, "Listing directory", "path", req.Dir)

	entries, err := explorer.ReadDirectory(c.fs, req.Dir, c.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	entryFilter := req.Filter
	if entryFilter == nil {
		entryFilter = filter.NewNoOpFilter()
	}

	kept := make([]domain.DirectoryEntry, 0, len(entries))
	for _, entry := range entries {
		if entryFilter.ShouldExclude(entry.Name) {
			continue
		}
		kept = append(kept, entry)
	}

	result := &ListResult{
		Dir:      req.Dir,
		Entries:  kept,
		Count:    len(kept),
		Excluded: len(entries) - len(kept),
	}

	logger.DebugContext(ctx, "Listed directory",
		"path", req.Dir,
		"count", result.Count,
		"excluded", result.Excluded)
	return result, nil
}
