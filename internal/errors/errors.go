// Package errors provides the structured error types used by brackets.
//
// Unbalanced input is never an error.  The only failures are bad
// configuration and a broken input or output stream.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrEmptyTerminator = errors.New("terminator must not be empty")
	ErrUnknownPrompt   = errors.New("unknown prompt mode")
)

// ── Structured error types ───────────────────────────────────────────

// ReadError is a failure reading the input stream.
type ReadError struct {
	Line int    // 1-based number of the line being read
	Name string // input name, e.g. "stdin" or a file path
	Err  error
}

func (e *ReadError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("read line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("read %s line %d: %v", e.Name, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError is a failure writing verdicts to the output stream.
type WriteError struct {
	Name string
	Err  error
}

func (e *WriteError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("write: %v", e.Err)
	}
	return fmt.Sprintf("write %s: %v", e.Name, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
	Err     error       // underlying cause (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%q", fmt.Sprint(e.Value))
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// ── Constructors ─────────────────────────────────────────────────────

// WrapRead creates a ReadError.
func WrapRead(name string, line int, err error) *ReadError {
	return &ReadError{Line: line, Name: name, Err: err}
}

// WrapWrite creates a WriteError.
func WrapWrite(name string, err error) *WriteError {
	return &WriteError{Name: name, Err: err}
}

// ── Classification helpers ───────────────────────────────────────────

// IsStreamError reports whether err came from the input or output
// stream rather than from configuration.
func IsStreamError(err error) bool {
	var re *ReadError
	var we *WriteError
	return errors.As(err, &re) || errors.As(err, &we)
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }
