package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Adapter handles line-oriented console input and output.
type Adapter struct {
	stdin  io.Reader
	reader *bufio.Reader
	stdout io.Writer
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stdout io.Writer) *Adapter {
	return &Adapter{
		stdin:  stdin,
		reader: bufio.NewReader(stdin),
		stdout: stdout,
	}
}

// Write writes console output.
func (a *Adapter) Write(p []byte) (int, error) {
	return a.stdout.Write(p)
}

// ReadLine reads one line of input without its line terminator.
func (a *Adapter) ReadLine(ctx context.Context) (string, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	line, err := a.reader.ReadString('\n')
	if err != nil {
		// A final line without a terminator still counts as input.
		if errors.Is(err, io.EOF) && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}

	return trimLineEnding(line), nil
}

// IsInteractive returns true if the terminal is interactive.
func (a *Adapter) IsInteractive() bool {
	return IsTerminal(a.stdin)
}

// IsTerminal reports whether stream is an *os.File attached to a terminal.
func IsTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
