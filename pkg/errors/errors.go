// Package errors provides structured error types for pebblecal.
//
// Every error a user can trigger carries a machine-readable [Code] so the CLI
// can decide how to report it and tests can assert on the category without
// matching message text.
//
// # Error Codes
//
// Codes follow a flat naming convention:
//   - INVALID_*: input, configuration or option validation failures
//   - CAPACITY: more pebbles than the shelves can hold
//   - FILE_NOT_FOUND: a referenced holiday or config file is missing
//   - RENDER_FAILED: a surface or external converter failed
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidYear, "year %d out of range", y)
//	if errors.Is(err, errors.ErrCodeInvalidYear) {
//	    // Handle validation error
//	}
//
//	err := errors.Wrap(errors.ErrCodeRenderFailed, origErr, "convert %s", path)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidYear   Code = "INVALID_YEAR"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// Layout errors
	ErrCodeCapacity Code = "CAPACITY"

	// Resource errors
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Output errors
	ErrCodeRenderFailed Code = "RENDER_FAILED"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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
		if e.Cause != nil {
			return fmt.Sprintf("%s: %s", e.Message, UserMessage(e.Cause))
		}
		return e.Message
	}
	return err.Error()
}
