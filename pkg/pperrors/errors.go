// Package pperrors provides structured error types shared by the CLI,
// server, and library-facing entry points.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP API
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: document/request validation failures
//   - CACHE_*, HISTORY_*: backend-specific failures
//   - INTERNAL_*: unexpected internal errors
//
// # Usage
//
//	err := pperrors.New(pperrors.ErrCodeInvalidWidth, "width must be positive, got %d", w)
//	if pperrors.Is(err, pperrors.ErrCodeInvalidWidth) {
//	    // Handle validation error
//	}
//
//	// Wrap existing errors
//	err := pperrors.Wrap(pperrors.ErrCodeCache, origErr, "failed to read cache entry %s", key)
package pperrors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidWidth    Code = "INVALID_WIDTH"
	ErrCodeInvalidIndent   Code = "INVALID_INDENT"
	ErrCodeInvalidEOL      Code = "INVALID_EOL"
	ErrCodeInvalidDoc      Code = "INVALID_DOC"
	ErrCodeMalformedSpec   Code = "MALFORMED_DOCSPEC"

	// Backend errors
	ErrCodeCache          Code = "CACHE_ERROR"
	ErrCodeHistory        Code = "HISTORY_ERROR"
	ErrCodeRenderSink     Code = "RENDER_SINK_ERROR"
	ErrCodeConfig         Code = "CONFIG_ERROR"

	// Resource not found
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
