// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
)

// ErrorCategory classifies command errors so that the entry point can
// choose an exit code without parsing message text.
type ErrorCategory string

const (
	// CategoryValidation indicates invalid input: an unknown flag, a
	// malformed URL, an unsupported option value. The operator should
	// fix the input and retry.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound indicates a referenced file or resource does not
	// exist.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryTransient indicates a temporary failure such as a refused
	// connection or a port that is still in use.
	CategoryTransient ErrorCategory = "transient"

	// CategoryInternal indicates an unexpected failure.
	CategoryInternal ErrorCategory = "internal"
)

// Exit codes chosen by [Report].
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ToolError is a categorized error returned by command handlers. It
// wraps an inner error, preserving the chain for errors.Is and
// errors.As, and optionally carries a one-line hint telling the
// operator what to do next.
//
// Use the category-specific constructors rather than building a
// ToolError directly.
type ToolError struct {
	// Category classifies the error for exit code selection.
	Category ErrorCategory

	// Err is the underlying error with the human-readable message.
	Err error

	// Hint is printed on its own line below the message. Optional.
	Hint string
}

// Error returns the underlying error message. The hint is not part of
// the string.
func (e *ToolError) Error() string { return e.Err.Error() }

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets the hint and returns the same error for chaining.
func (e *ToolError) WithHint(format string, args ...any) *ToolError {
	e.Hint = fmt.Sprintf(format, args...)
	return e
}

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// NotFound creates a not-found error: a referenced resource does not exist.
func NotFound(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryNotFound, Err: fmt.Errorf(format, args...)}
}

// Transient creates a transient error: a temporary failure that may succeed on retry.
func Transient(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryTransient, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure, bug, or I/O error.
func Internal(format string, args ...any) *ToolError {
	return &ToolError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// Report writes err to w and returns the exit code the process should
// use. A nil error yields 0. An error implementing ExitCode() int is
// not printed, since the command has already written its own output.
// Validation errors exit with [ExitUsage], everything else with
// [ExitFailure].
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var exitCoder interface{ ExitCode() int }
	if errors.As(err, &exitCoder) {
		return exitCoder.ExitCode()
	}

	fmt.Fprintf(w, "error: %v\n", err)

	var toolErr *ToolError
	if !errors.As(err, &toolErr) {
		return ExitFailure
	}
	if toolErr.Hint != "" {
		fmt.Fprintf(w, "hint: %s\n", toolErr.Hint)
	}
	if toolErr.Category == CategoryValidation {
		return ExitUsage
	}
	return ExitFailure
}
