// Package errors provides sentinel errors and error types for movecheck.
// It separates syntax failures (malformed move text, bad FEN, bad config),
// which are errors, from semantic illegality, which the engine reports as a
// plain false and never as an error.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrMalformedMove indicates move text without a command and a FROM,TO pair.
	ErrMalformedMove = errors.New("malformed move")

	// ErrInvalidSquare indicates a coordinate that is too short or has a non-digit row.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move command that the rules reject.
	ErrIllegalMove = errors.New("illegal move")

	// ErrUnknownCommand indicates a command word the session does not understand.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with the context of the move record that caused
// them: where it came from and what the text was.
type MoveError struct {
	Err      error  // The underlying error
	Source   string // Transcript name (if known)
	Line     int    // 1-based line number (0 if not applicable)
	MoveText string // The move text that caused the error (if applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Source != "" {
		if e.Line > 0 {
			parts = append(parts, fmt.Sprintf("%s:%d", e.Source, e.Line))
		} else {
			parts = append(parts, e.Source)
		}
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}

	context := strings.Join(parts, ", ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context == "":
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// ParseError represents a parsing error with location context.
// It's used for move text and coordinate parsing errors.
type ParseError struct {
	Err      error  // The underlying error
	Source   string // Transcript name
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
	Expected string // What was expected (for syntax errors)
	Got      string // What was found instead
}

// Error returns a formatted error message with location and context.
func (e *ParseError) Error() string {
	var parts []string

	var loc string
	switch {
	case e.Source != "" && e.Line > 0:
		loc = fmt.Sprintf("%s:%d", e.Source, e.Line)
	case e.Source != "":
		loc = e.Source
	case e.Line > 0:
		loc = fmt.Sprintf("line %d", e.Line)
	}
	if loc != "" {
		if e.Line > 0 && e.Column > 0 {
			loc += fmt.Sprintf(":%d", e.Column)
		}
		parts = append(parts, loc)
	}

	if e.Expected != "" && e.Got != "" {
		parts = append(parts, fmt.Sprintf("expected %s, got %q", e.Expected, e.Got))
	} else if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	} else if e.Got != "" {
		parts = append(parts, fmt.Sprintf("unexpected %q", e.Got))
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "parse error"
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Locate returns err annotated with a source and line. If err itself is a
// *ParseError the location is filled in on a copy; otherwise err is wrapped
// in a new ParseError.
func Locate(err error, source string, line int) error {
	if err == nil {
		return nil
	}
	if pe, ok := err.(*ParseError); ok {
		located := *pe
		located.Source = source
		located.Line = line
		return &located
	}
	return &ParseError{Err: err, Source: source, Line: line}
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

// Is reports whether any error in err's chain matches target.
// It lets callers that import this package avoid also importing the
// standard errors package under another name.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
