package explorer

import (
	"context"
	stderrors "errors"
	"io"
	"strconv"
	"strings"

	"fexplorer/internal/errors"
)

// Choice is a menu option number.
type Choice uint32

// Menu options in display order.
const (
	ChoiceChangeDirectory Choice = iota + 1
	ChoiceCopyFile
	ChoiceDeleteFile
	ChoiceCreateFile
	ChoiceNavigateUp
	ChoiceList
	ChoiceExit
)

const (
	sectionRule          = "-----------------------------"
	invalidChoiceMessage = "Invalid choice. Try again."
)

//nolint:gochecknoglobals // Fixed menu layout
var menuLabels = []struct {
	choice Choice
	label  string
}{
	{ChoiceChangeDirectory, "Change Directory"},
	{ChoiceCopyFile, "Copy File"},
	{ChoiceDeleteFile, "Delete File"},
	{ChoiceCreateFile, "Create New File"},
	{ChoiceNavigateUp, "Navigate Up"},
	{ChoiceList, "List Directory with Properties"},
	{ChoiceExit, "Exit"},
}

// ParseChoice parses a menu selection as an unsigned 32-bit integer. One
// leading plus sign is accepted.
func ParseChoice(input string) (Choice, error) {
	trimmed := strings.TrimSpace(input)
	n, err := strconv.ParseUint(strings.TrimPrefix(trimmed, "+"), 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("choice", trimmed, "unsigned_integer", "menu choice must be a number")
	}
	return Choice(n), nil
}

// Run drives the interactive session until the user exits, input ends, or an
// operation fails. Any listing or operation failure ends the session.
func (e *Explorer) Run(ctx context.Context) error {
	if !e.console.IsInteractive() {
		e.logger.DebugContext(ctx, "Console is not a terminal, reading scripted input")
	}
	e.logger.InfoContext(ctx, "Starting session", "path", e.currentPath)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		e.printf("Current Directory: %q\n", e.currentPath)
		e.printf("%s\n", sectionRule)
		if err := e.ListDirectoryWithProperties(ctx); err != nil {
			e.logger.ErrorContext(ctx, "Failed to list directory", "path", e.currentPath, "error", err)
			return err
		}
		e.printf("%s\n", sectionRule)
		e.printMenu()

		input, err := e.prompt(ctx, "Enter choice: ")
		if err != nil {
			if stderrors.Is(err, io.EOF) {
				e.logger.InfoContext(ctx, "Input closed, ending session")
				e.printf("\nExiting...\n")
				return nil
			}
			return err
		}

		choice, err := ParseChoice(input)
		if err != nil {
			e.logger.DebugContext(ctx, "Rejected menu input", "error", err)
			e.printf("%s\n", invalidChoiceMessage)
			continue
		}

		exit, err := e.dispatch(ctx, choice)
		if err != nil {
			e.logger.ErrorContext(ctx, "Operation failed", "choice", uint32(choice), "error", err)
			return err
		}
		if exit {
			e.logger.InfoContext(ctx, "Session ended by user")
			return nil
		}
	}
}

func (e *Explorer) dispatch(ctx context.Context, choice Choice) (bool, error) {
	switch choice {
	case ChoiceChangeDirectory:
		name, err := e.prompt(ctx, "Enter directory name: ")
		if err != nil {
			return false, err
		}
		e.ChangeDirectory(ctx, strings.TrimSpace(name))

	case ChoiceCopyFile:
		source, err := e.prompt(ctx, "Enter source file: ")
		if err != nil {
			return false, err
		}
		destination, err := e.prompt(ctx, "Enter destination file: ")
		if err != nil {
			return false, err
		}
		return false, e.CopyFile(ctx,
			e.Resolve(strings.TrimSpace(source)),
			e.Resolve(strings.TrimSpace(destination)))

	case ChoiceDeleteFile:
		name, err := e.prompt(ctx, "Enter file to delete: ")
		if err != nil {
			return false, err
		}
		return false, e.DeleteFile(ctx, e.Resolve(strings.TrimSpace(name)))

	case ChoiceCreateFile:
		name, err := e.prompt(ctx, "Enter new file name: ")
		if err != nil {
			return false, err
		}
		return false, e.CreateFile(ctx, e.Resolve(strings.TrimSpace(name)))

	case ChoiceNavigateUp:
		e.NavigateUp(ctx)

	case ChoiceList:
		e.printf("Listing Directory with Properties:\n")
		return false, e.ListDirectoryWithProperties(ctx)

	case ChoiceExit:
		e.printf("Exiting...\n")
		return true, nil

	default:
		e.printf("%s\n", invalidChoiceMessage)
	}

	return false, nil
}

func (e *Explorer) printMenu() {
	e.printf("Options:\n")
	for _, item := range menuLabels {
		e.printf("  %d. %s\n", item.choice, item.label)
	}
}

// prompt writes text without a newline and reads one line of input.
func (e *Explorer) prompt(ctx context.Context, text string) (string, error) {
	e.printf("%s", text)
	line, err := e.console.ReadLine(ctx)
	if err != nil {
		return "", errors.NewIOError("read input", "", err)
	}
	return line, nil
}

