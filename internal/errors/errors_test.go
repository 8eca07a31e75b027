package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func TestIOError(t *testing.T) {
	cause := &fs.PathError{Op: "open", Path: "/tmp/missing.txt", Err: syscall.ENOENT}
	err := NewIOError("copy", "/tmp/missing.txt", cause)

	expectedMsg := "copy /tmp/missing.txt: open /tmp/missing.txt: no such file or directory"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsNotFound(err) {
		t.Error("Expected IOError wrapping ENOENT to be identified as NotFound")
	}

	if !errors.Is(err, ErrNotFound) {
		t.Error("Expected IOError wrapping ENOENT to match ErrNotFound")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected IOError to wrap the underlying cause")
	}
}

func TestIOErrorWithoutPath(t *testing.T) {
	err := NewIOError("read input", "", errors.New("broken pipe"))

	expectedMsg := "read input: broken pipe"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestIOErrorCategoryMapping(t *testing.T) {
	tests := []struct {
		cause    error
		expected error
	}{
		{syscall.ENOENT, ErrNotFound},
		{fs.ErrNotExist, ErrNotFound},
		{syscall.EACCES, ErrPermission},
		{fs.ErrPermission, ErrPermission},
		{fs.ErrExist, ErrAlreadyExists},
		{syscall.EISDIR, ErrIsDirectory},
	}

	for _, test := range tests {
		err := NewIOError("op", "/path", test.cause)
		if !errors.Is(err, test.expected) {
			t.Errorf("Expected cause %v to map to %v", test.cause, test.expected)
		}
	}
}

func TestIOErrorDoesNotMatchUnrelatedCategory(t *testing.T) {
	err := NewIOError("delete", "/path", syscall.EISDIR)

	if errors.Is(err, ErrNotFound) {
		t.Error("Expected EISDIR not to match ErrNotFound")
	}
	if IsValidation(err) {
		t.Error("Expected IOError not to be a validation error")
	}
}

func TestIOErrorFromRealFilesystem(t *testing.T) {
	_, statErr := os.Stat(filepath.Join(t.TempDir(), "nope"))
	err := fmt.Errorf("failed to stat: %w", NewIOError("stat", "nope", statErr))

	if !IsNotFound(err) {
		t.Error("Expected wrapped os.Stat failure to be identified as NotFound")
	}

	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatal("Expected errors.As to find IOError")
	}
	if ioErr.Op != "stat" {
		t.Errorf("Expected Op 'stat', got %q", ioErr.Op)
	}
}

func TestConfigurationError(t *testing.T) {
	cause := errors.New("unknown level")
	err := NewConfigurationError("log-level", "loud", "unsupported log level", cause)

	expectedMsg := "configuration error in field 'log-level': unsupported log level"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsConfiguration(err) {
		t.Error("Expected ConfigurationError to be identified as configuration error")
	}

	if !errors.Is(err, cause) {
		t.Error("Expected ConfigurationError to wrap the underlying cause")
	}
}

func TestConfigurationErrorWithoutField(t *testing.T) {
	err := NewConfigurationError("", "", "config file unreadable", nil)

	expectedMsg := "configuration error: config file unreadable"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("choice", "abc", "unsigned_integer", "menu choice must be a number")

	expectedMsg := "validation error in field 'choice': menu choice must be a number"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !IsValidation(err) {
		t.Error("Expected ValidationError to be identified as validation error")
	}

	if !errors.Is(err, ErrInvalidInput) {
		t.Error("Expected ValidationError to match ErrInvalidInput")
	}
}

func TestHelpersOnPlainErrors(t *testing.T) {
	if !IsPermission(fs.ErrPermission) {
		t.Error("Expected fs.ErrPermission to be identified as permission error")
	}
	if !IsIsDirectory(syscall.EISDIR) {
		t.Error("Expected EISDIR to be identified as is-directory error")
	}
	if IsNotFound(errors.New("something else")) {
		t.Error("Expected arbitrary error not to be NotFound")
	}
}
