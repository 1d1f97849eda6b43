// Package errors provides sentinel errors and error types for textchess.
// Engine rejections are plain boolean results; these errors are used by
// the layers that parse user input, configuration and setup commands.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidCoordinate indicates a square outside the board or malformed notation.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrInvalidPieceCode indicates an unknown setup piece code.
	ErrInvalidPieceCode = errors.New("invalid piece code")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidCommand indicates an unrecognised or malformed command.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidFEN indicates a malformed FEN placement string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrSetupRejected indicates a setup board that failed verification.
	ErrSetupRejected = errors.New("setup rejected")
)

// CommandError wraps errors with the command line that caused them.
type CommandError struct {
	Err     error  // The underlying error
	Command string // The command word (if known)
	Line    int    // 1-based input line (0 if unknown)
}

// Error returns a formatted error message including all available context.
func (e *CommandError) Error() string {
	var parts []string
	if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}
	if e.Command != "" {
		parts = append(parts, fmt.Sprintf("command %q", e.Command))
	}
	context := strings.Join(parts, ", ")

	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "command error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the CommandError wrapper.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
