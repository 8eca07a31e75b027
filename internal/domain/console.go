package domain

import (
	"context"
	"io"
)

// Console is the line-oriented I/O capability the interactive session runs on.
type Console interface {
	io.Writer

	// ReadLine blocks until a full line is available and returns it without the
	// trailing line terminator. It returns io.EOF once input is exhausted.
	ReadLine(ctx context.Context) (string, error)

	IsInteractive() bool
}
