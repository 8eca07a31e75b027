package domain

import "time"

// DirectoryEntry is one child of a listed directory.
type DirectoryEntry struct {
	Name    string        `json:"name" yaml:"name"`
	IsDir   bool          `json:"dir" yaml:"dir"`
	Size    int64         `json:"size" yaml:"size"`
	ModTime time.Time     `json:"modified" yaml:"modified"`
	Elapsed time.Duration `json:"-" yaml:"-"`
}

// ElapsedSeconds returns the whole seconds between ModTime and the listing time.
func (e DirectoryEntry) ElapsedSeconds() int64 {
	return int64(e.Elapsed / time.Second)
}
