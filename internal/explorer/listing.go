package explorer

import (
	"context"
	"path/filepath"
	"time"

	"fexplorer/internal/domain"
	"fexplorer/internal/errors"
	"fexplorer/internal/render"
)

// ReadEntries enumerates the immediate children of the current path.
func (e *Explorer) ReadEntries(ctx context.Context) ([]domain.DirectoryEntry, error) {
	entries, err := ReadDirectory(e.fs, e.currentPath, e.now())
	if err != nil {
		return nil, err
	}

	e.logger.DebugContext(ctx, "Read directory", "path", e.currentPath, "entries", len(entries))
	return entries, nil
}

// ReadDirectory enumerates the immediate children of dir, computing elapsed
// times against now. Metadata follows symlinks; the first entry whose metadata
// cannot be read aborts the whole listing.
func ReadDirectory(fs domain.FileSystemAdapter, dir string, now time.Time) ([]domain.DirectoryEntry, error) {
	dirEntries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, errors.NewIOError("list", dir, err)
	}

	entries := make([]domain.DirectoryEntry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		path := filepath.Join(dir, dirEntry.Name())
		info, err := fs.Stat(path)
		if err != nil {
			return nil, errors.NewIOError("stat", path, err)
		}

		entries = append(entries, domain.DirectoryEntry{
			Name:    dirEntry.Name(),
			IsDir:   !info.Mode().IsRegular(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Elapsed: elapsedSince(now, info.ModTime()),
		})
	}

	return entries, nil
}

// ListDirectoryWithProperties prints the listing table for the current path.
func (e *Explorer) ListDirectoryWithProperties(ctx context.Context) error {
	entries, err := e.ReadEntries(ctx)
	if err != nil {
		return err
	}
	if err := render.WriteTable(e.console, entries); err != nil {
		return errors.NewIOError("write listing", "", err)
	}
	return nil
}

// elapsedSince returns now-modified, clamped to zero for future timestamps and
// for timestamps before the Unix epoch.
func elapsedSince(now, modified time.Time) time.Duration {
	if modified.Before(time.Unix(0, 0)) {
		return 0
	}
	elapsed := now.Sub(modified)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}
