// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import "fmt"

// ErrorCategory says who has to act on an error: the user (fix the input
// or the path) or a maintainer (the tool misbehaved).
type ErrorCategory string

const (
	// CategoryValidation: bad flags, bad arguments, or a document that
	// is not well-formed bencode.
	CategoryValidation ErrorCategory = "validation"

	// CategoryNotFound: a missing input file, or a --path that selects
	// nothing in the document.
	CategoryNotFound ErrorCategory = "not_found"

	// CategoryInternal: write failures and output the tool cannot read
	// back.
	CategoryInternal ErrorCategory = "internal"
)

// ToolError attaches a category and an optional hint to an error. The
// wrapped error stays reachable through errors.As, so callers can still
// recover a *bencode.DecodeError with its offset. Build one with
// [Validation], [NotFound], or [Internal].
type ToolError struct {
	Category ErrorCategory
	Err      error

	// Hint is printed after the message, separated by a blank line.
	Hint string
}

func (e *ToolError) Error() string {
	if e.Hint == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + "\n\n" + e.Hint
}

func (e *ToolError) Unwrap() error { return e.Err }

// WithHint sets Hint and returns e.
func (e *ToolError) WithHint(hint string) *ToolError {
	e.Hint = hint
	return e
}

func newToolError(category ErrorCategory, format string, args []any) *ToolError {
	return &ToolError{Category: category, Err: fmt.Errorf(format, args...)}
}

// Validation formats a [CategoryValidation] error. %w is honored.
func Validation(format string, args ...any) *ToolError {
	return newToolError(CategoryValidation, format, args)
}

// NotFound formats a [CategoryNotFound] error.
func NotFound(format string, args ...any) *ToolError {
	return newToolError(CategoryNotFound, format, args)
}

// Internal formats a [CategoryInternal] error.
func Internal(format string, args ...any) *ToolError {
	return newToolError(CategoryInternal, format, args)
}
