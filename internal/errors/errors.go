// Package errors provides error types with actionable suggestions for
// gatekeep. Errors carry enough context (file path, section, flag) to tell
// the user what went wrong and what to try next.
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Common sentinel errors for use with errors.Is().
var (
	// ErrFile indicates a file access failure (not found, permission, I/O).
	ErrFile = errors.New("file error")
	// ErrInput indicates malformed or out-of-range user input.
	ErrInput = errors.New("input error")
	// ErrDuplicate indicates a section or flag name that is already taken.
	ErrDuplicate = errors.New("duplicate name")
	// ErrNotFound indicates a section or flag does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("configuration error")
)

// GateError is the base error type for gatekeep errors.
// It wraps an underlying error and provides additional context.
type GateError struct {
	// Kind is the category of error (e.g., ErrFile, ErrInput).
	Kind error
	// Message is the human-readable error message.
	Message string
	// Suggestion provides actionable advice for resolving the error.
	Suggestion string
	// Cause is the underlying error that caused this error.
	Cause error
	// Details provides additional context (e.g., file path, section name).
	Details map[string]string
}

// Error implements the error interface.
func (e *GateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *GateError) Unwrap() error {
	if e.Cause != nil {
		return e.Cause
	}
	return e.Kind
}

// Is reports whether the error's Kind matches the target.
func (e *GateError) Is(target error) bool {
	return errors.Is(e.Kind, target)
}

// Format returns a formatted error message with details and suggestion.
func (e *GateError) Format() string {
	var sb strings.Builder

	sb.WriteString("Error: ")
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("\nDetails:\n")
		for _, k := range keys {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", k, e.Details[k]))
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\nSuggestion: ")
		sb.WriteString(e.Suggestion)
		sb.WriteString("\n")
	}

	return sb.String()
}

// WithDetails adds details to the error.
func (e *GateError) WithDetails(key, value string) *GateError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithCause sets the underlying cause of the error.
func (e *GateError) WithCause(cause error) *GateError {
	e.Cause = cause
	return e
}

// New creates a new GateError with the given kind and message.
func New(kind error, message string) *GateError {
	return &GateError{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(err error, kind error, message string) *GateError {
	return &GateError{
		Kind:    kind,
		Message: message,
		Cause:   err,
	}
}

// WithSuggestion creates a new error with a suggestion.
func WithSuggestion(kind error, message, suggestion string) *GateError {
	return &GateError{
		Kind:       kind,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Message returns the short user-facing message for err: the GateError
// message without its cause chain, or err.Error() for foreign errors.
func Message(err error) string {
	var ge *GateError
	if errors.As(err, &ge) {
		return ge.Message
	}
	return err.Error()
}
