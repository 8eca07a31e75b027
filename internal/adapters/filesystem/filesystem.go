package filesystem

import (
	"io"
	"os"
)

// Adapter provides file system operations.
type Adapter struct{}

// New creates a new filesystem adapter.
func New() *Adapter {
	return &Adapter{}
}

// ReadDir returns the entries of a directory in the order the host yields them.
func (a *Adapter) ReadDir(path string) ([]os.DirEntry, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	// os.ReadDir sorts by name; listings keep the host order.
	return dir.ReadDir(-1)
}

// Stat returns file info, following symlinks.
func (a *Adapter) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Lstat returns file info without following symlinks.
func (a *Adapter) Lstat(path string) (os.FileInfo, error) {
	return os.Lstat(path)
}

// Open opens a file for reading.
func (a *Adapter) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// Create creates or truncates a file for writing.
func (a *Adapter) Create(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// Remove deletes a file.
func (a *Adapter) Remove(path string) error {
	return os.Remove(path)
}

// Getwd returns the process working directory.
func (a *Adapter) Getwd() (string, error) {
	return os.Getwd()
}
