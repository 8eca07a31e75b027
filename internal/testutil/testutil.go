// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fexplorer/internal/adapters/terminal"
	"fexplorer/internal/logging"
)

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// ScriptedConsole returns a console that reads the given lines as user input
// and the buffer capturing everything written to it.
func ScriptedConsole(lines ...string) (*terminal.Adapter, *bytes.Buffer) {
	var out bytes.Buffer
	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}
	return terminal.NewAdapter(strings.NewReader(input), &out), &out
}

// WriteFile creates a file under dir with the given content and returns its path.
func WriteFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// FileInfo is a static fs.FileInfo for mocked filesystems.
type FileInfo struct {
	FileName    string
	FileSize    int64
	FileMode    fs.FileMode
	FileModTime time.Time
}

func (fi FileInfo) Name() string       { return fi.FileName }
func (fi FileInfo) Size() int64        { return fi.FileSize }
func (fi FileInfo) Mode() fs.FileMode  { return fi.FileMode }
func (fi FileInfo) ModTime() time.Time { return fi.FileModTime }
func (fi FileInfo) IsDir() bool        { return fi.FileMode.IsDir() }
func (fi FileInfo) Sys() any           { return nil }

// DirEntries converts static file infos into directory entries.
func DirEntries(infos ...FileInfo) []os.DirEntry {
	entries := make([]os.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	return entries
}
