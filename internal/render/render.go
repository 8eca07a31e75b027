// Package render formats directory listings for console and machine consumption.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"fexplorer/internal/domain"
	"fexplorer/internal/errors"
)

// Output formats accepted by Write.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

const (
	nameWidth = 25
	sizeWidth = 15

	// DirMarker replaces the byte size for anything that is not a regular file.
	DirMarker = "<DIR>"

	headerRule = "------------------------------------------------------------"
)

// Record is the machine-readable form of a listing entry.
type Record struct {
	Name           string    `json:"name" yaml:"name"`
	Dir            bool      `json:"dir" yaml:"dir"`
	Size           *int64    `json:"size,omitempty" yaml:"size,omitempty"`
	Modified       time.Time `json:"modified" yaml:"modified"`
	ElapsedSeconds int64     `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}

// IsValidFormat reports whether format is supported by Write.
func IsValidFormat(format string) bool {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// Write renders entries to w in the requested format.
func Write(w io.Writer, format string, entries []domain.DirectoryEntry) error {
	switch format {
	case FormatTable, "":
		return WriteTable(w, entries)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(Records(entries)); err != nil {
			return fmt.Errorf("failed to encode listing as json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(Records(entries)); err != nil {
			return fmt.Errorf("failed to encode listing as yaml: %w", err)
		}
		return enc.Close()
	default:
		return errors.NewValidationError("output", format, "supported_values",
			"output must be one of: table, json, yaml")
	}
}

// WriteTable writes the fixed-width listing: header, rule, then one line per entry.
func WriteTable(w io.Writer, entries []domain.DirectoryEntry) error {
	if _, err := fmt.Fprintf(w, "%-*s %-*s %s\n", nameWidth, "File/Directory", sizeWidth, "Size (bytes)", "Last Modified"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, headerRule); err != nil {
		return err
	}
	for _, entry := range entries {
		if _, err := fmt.Fprintln(w, FormatEntry(entry)); err != nil {
			return err
		}
	}
	return nil
}

// FormatEntry formats a single listing line without the trailing newline.
func FormatEntry(entry domain.DirectoryEntry) string {
	return fmt.Sprintf("%-*s %-*s %d seconds ago",
		nameWidth, entry.Name,
		sizeWidth, SizeColumn(entry),
		entry.ElapsedSeconds())
}

// SizeColumn returns the byte size, or DirMarker for non-regular files.
func SizeColumn(entry domain.DirectoryEntry) string {
	if entry.IsDir {
		return DirMarker
	}
	return strconv.FormatInt(entry.Size, 10)
}

// Records converts entries into their machine-readable form.
func Records(entries []domain.DirectoryEntry) []Record {
	records := make([]Record, 0, len(entries))
	for _, entry := range entries {
		record := Record{
			Name:           entry.Name,
			Dir:            entry.IsDir,
			Modified:       entry.ModTime.UTC(),
			ElapsedSeconds: entry.ElapsedSeconds(),
		}
		if !entry.IsDir {
			size := entry.Size
			record.Size = &size
		}
		records = append(records, record)
	}
	return records
}
