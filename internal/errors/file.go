package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// File-related error constructors.

// FileNotFound creates an error for a gate file that does not exist.
func FileNotFound(path string) *GateError {
	return &GateError{
		Kind:    ErrFile,
		Message: fmt.Sprintf("file not found: %s", path),
		Details: map[string]string{
			"path": path,
		},
		Suggestion: `Check the path and try again.
  Paths must point at an existing gate file; drag the file into the
  terminal to paste its absolute path.`,
	}
}

// FileRead creates an error for a gate file that exists but cannot be read.
// A missing file is reported as FileNotFound instead.
func FileRead(path string, cause error) *GateError {
	if errors.Is(cause, fs.ErrNotExist) {
		return FileNotFound(path).WithCause(cause)
	}
	e := &GateError{
		Kind:    ErrFile,
		Message: fmt.Sprintf("error reading file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
	}
	if errors.Is(cause, fs.ErrPermission) {
		e.Suggestion = "Make sure the file is readable by the current user."
	}
	return e
}

// FileWrite creates an error for a failed save. The in-memory store stays
// valid, so the suggestion points at retrying.
func FileWrite(path string, cause error) *GateError {
	e := &GateError{
		Kind:    ErrFile,
		Message: fmt.Sprintf("error writing to file: %s", path),
		Cause:   cause,
		Details: map[string]string{
			"path": path,
		},
		Suggestion: "Your changes are kept in memory; fix the problem and make another change or choose Save and exit to retry.",
	}
	if errors.Is(cause, fs.ErrPermission) {
		e.Suggestion = "Make sure the file is writable. " + e.Suggestion
	}
	return e
}
