// Package errors provides structured error types for mres.
//
// Every failure the tool can report carries a [Code], so the command line
// driver can map errors to exit codes and print a one-line message without
// the code prefix.
//
// # Error Codes
//
//   - UNKNOWN_MATERIAL: the material name is in neither catalog list
//   - INVALID_ARGUMENT: a geometry argument failed to parse or is out of its domain
//   - OUT_OF_RANGE: a magnitude cannot be expressed with a metric prefix
//   - INVALID_CATALOG: the embedded materials table is malformed
//   - INTERNAL_ERROR: unexpected failures such as a broken output stream
//
// # Usage
//
//	err := errors.New(errors.ErrCodeUnknownMaterial, "material '%s' is unknown", name)
//	if errors.Is(err, errors.ErrCodeUnknownMaterial) {
//	    // Handle lookup failure
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidArgument, parseErr, "invalid width %q", arg)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Lookup errors
	ErrCodeUnknownMaterial Code = "UNKNOWN_MATERIAL"

	// Input validation errors
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	ErrCodeOutOfRange      Code = "OUT_OF_RANGE"

	// Data errors
	ErrCodeInvalidCatalog Code = "INVALID_CATALOG"

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
