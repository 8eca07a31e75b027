// Package explorer implements the interactive file browser session: the current
// directory state, the file operations, and the menu loop that drives them.
package explorer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"syscall"
	"time"

	"fexplorer/internal/domain"
	"fexplorer/internal/errors"
)

// Explorer holds the session's current directory and performs file operations
// relative to it. It is not safe for concurrent use.
type Explorer struct {
	currentPath string

	fs      domain.FileSystemAdapter
	console domain.Console
	logger  *slog.Logger
	now     func() time.Time
}

// Option is a functional option for configuring the Explorer.
type Option func(*Explorer)

// WithClock sets the time source used to compute elapsed times in listings.
func WithClock(now func() time.Time) Option {
	return func(e *Explorer) {
		e.now = now
	}
}

// New creates an Explorer positioned at startPath.
func New(
	startPath string,
	fs domain.FileSystemAdapter,
	console domain.Console,
	logger *slog.Logger,
	opts ...Option,
) *Explorer {
	e := &Explorer{
		currentPath: filepath.Clean(startPath),
		fs:          fs,
		console:     console,
		logger:      logger,
		now:         time.Now,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// CurrentDirectory returns the current path.
func (e *Explorer) CurrentDirectory() string {
	return e.currentPath
}

// Resolve returns name interpreted relative to the current path. Absolute names
// replace the current path. The result is cleaned lexically, so ".." segments
// are collapsed without consulting the filesystem.
func (e *Explorer) Resolve(name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(e.currentPath, name)
}

// ChangeDirectory appends segment to the current path. The path is cleaned
// lexically: "missing/.." leaves the current path unchanged even though
// "missing" does not exist. The result is not checked for existence; a missing
// directory surfaces on the next listing.
func (e *Explorer) ChangeDirectory(ctx context.Context, segment string) {
	e.currentPath = e.Resolve(segment)
	e.logger.DebugContext(ctx, "Changed directory", "path", e.currentPath)
}

// NavigateUp moves to the parent directory, or reports that the root was reached.
func (e *Explorer) NavigateUp(ctx context.Context) {
	parent := filepath.Dir(e.currentPath)
	if parent == e.currentPath {
		e.printf("Already at the root directory.\n")
		return
	}

	e.currentPath = parent
	e.logger.DebugContext(ctx, "Navigated up", "path", e.currentPath)
	e.printf("Navigated up to: %q\n", e.currentPath)
}

// CopyFile streams source into destination, creating or truncating it.
// File metadata is not preserved.
func (e *Explorer) CopyFile(ctx context.Context, source, destination string) error {
	e.logger.DebugContext(ctx, "Copying file", "source", source, "destination", destination)

	src, err := e.fs.Open(source)
	if err != nil {
		return errors.NewIOError("copy", source, err)
	}
	defer src.Close()

	dst, err := e.fs.Create(destination)
	if err != nil {
		return errors.NewIOError("copy", destination, err)
	}

	written, err := io.Copy(dst, src)
	if err != nil {
		_ = dst.Close()
		return errors.NewIOError("copy", destination, err)
	}
	if err := dst.Close(); err != nil {
		return errors.NewIOError("copy", destination, err)
	}

	e.logger.DebugContext(ctx, "Copied file", "destination", destination, "bytes", written)
	e.printf("File copied successfully.\n")
	return nil
}

// DeleteFile removes the file at path. Directories are refused.
func (e *Explorer) DeleteFile(ctx context.Context, path string) error {
	e.logger.DebugContext(ctx, "Deleting file", "path", path)

	info, err := e.fs.Lstat(path)
	if err != nil {
		return errors.NewIOError("delete", path, err)
	}
	if info.IsDir() {
		return errors.NewIOError("delete", path, syscall.EISDIR)
	}

	if err := e.fs.Remove(path); err != nil {
		return errors.NewIOError("delete", path, err)
	}

	e.printf("File deleted successfully.\n")
	return nil
}

// CreateFile creates an empty file at path, truncating any existing file.
func (e *Explorer) CreateFile(ctx context.Context, path string) error {
	e.logger.DebugContext(ctx, "Creating file", "path", path)

	f, err := e.fs.Create(path)
	if err != nil {
		return errors.NewIOError("create", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.NewIOError("create", path, err)
	}

	e.printf("File created successfully.\n")
	return nil
}

func (e *Explorer) printf(format string, args ...any) {
	fmt.Fprintf(e.console, format, args...)
}
