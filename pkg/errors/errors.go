// Package errors provides structured error types for viewalign.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the engine, CLI and API
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Input validation failures and contract violations
//   - INSUFFICIENT_*: Expected conditions the caller should surface to a user
//   - NOT_FOUND_*: Resource not found
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInsufficientInput, "need at least %d objects, got %d", 2, n)
//	if errors.Is(err, errors.ErrCodeInsufficientInput) {
//	    // Ask the user to select more objects
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidFormat, origErr, "decode scene %s", path)
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
	ErrCodeInvalidInput    Code = "INVALID_INPUT"
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeInvalidFormat   Code = "INVALID_FORMAT"
	ErrCodeInvalidMode     Code = "INVALID_MODE"

	// Conditions reported back to the caller rather than retried
	ErrCodeInsufficientInput Code = "INSUFFICIENT_INPUT"
	ErrCodeInsufficientSpace Code = "INSUFFICIENT_SPACE"
	ErrCodeNoOrientation     Code = "NO_ORIENTATION"

	// Resource not found errors
	ErrCodeNotFound     Code = "NOT_FOUND"
	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Category groups codes by who has to act on them.
type Category int

const (
	// CategoryInternal is a bug or an unknown failure.
	CategoryInternal Category = iota
	// CategoryInput means the request itself is malformed.
	CategoryInput
	// CategoryCondition means the request is valid but the selection or
	// geometry does not allow the operation.
	CategoryCondition
	// CategoryNotFound means a referenced object or file does not exist.
	CategoryNotFound
)

// Category returns the group c belongs to. Unknown codes are internal.
func (c Code) Category() Category {
	switch c {
	case ErrCodeInvalidInput, ErrCodeInvalidArgument, ErrCodeInvalidFormat, ErrCodeInvalidMode:
		return CategoryInput
	case ErrCodeInsufficientInput, ErrCodeInsufficientSpace, ErrCodeNoOrientation:
		return CategoryCondition
	case ErrCodeNotFound, ErrCodeFileNotFound:
		return CategoryNotFound
	}
	return CategoryInternal
}

// Internal reports whether messages under c may leak implementation detail
// and should not be shown to remote callers.
func (c Code) Internal() bool { return c.Category() == CategoryInternal && c != ErrCodeUnsupported }

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

// InsufficientInput reports that an operation received fewer objects than it
// needs. The caller should prompt for a larger selection.
func InsufficientInput(op string, need, got int) *Error {
	return New(ErrCodeInsufficientInput, "%s needs at least %d objects, got %d", op, need, got)
}
