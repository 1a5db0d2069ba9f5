// Package errors provides structured error types for the wellsketch application.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across CLI and HTTP service
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Taxonomy
//
// Errors fall into four domain categories plus generic input/internal codes:
//   - VALIDATION_FAILED: the well document violates one or more structural
//     invariants; the error lists every violation, not just the first
//   - GEOMETRY_INFEASIBLE: the trajectory control points admit no feasible
//     build curve
//   - LAYOUT_OUT_OF_RANGE: an interval falls outside trajectory coverage
//     (a bug-class error; the validator should have caught it upstream)
//   - EXPORT_FAILED: an external collaborator (renderer, CSV writer,
//     archive mover) failed
//
// # Usage
//
//	err := errors.New(errors.ErrCodeGeometry, "build arc infeasible: radius %.2f", r)
//	if errors.Is(err, errors.ErrCodeGeometry) {
//	    // Handle geometry failure
//	}
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the pipeline stages.
const (
	// Input and validation errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeValidation   Code = "VALIDATION_FAILED"

	// Geometry errors
	ErrCodeGeometry Code = "GEOMETRY_INFEASIBLE"
	ErrCodeLayout   Code = "LAYOUT_OUT_OF_RANGE"

	// Collaborator errors
	ErrCodeExport Code = "EXPORT_FAILED"

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
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var v *ValidationError
	if errors.As(err, &v) {
		return ErrCodeValidation
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

// ValidationError aggregates every invariant violation found in a well
// document. Callers need the complete list to correct input in one pass,
// so validation never stops at the first failure.
type ValidationError struct {
	Violations []string
}

// Error implements the error interface. The message lists every violation.
func (e *ValidationError) Error() string {
	switch len(e.Violations) {
	case 0:
		return "validation failed"
	case 1:
		return "validation failed: " + e.Violations[0]
	default:
		return fmt.Sprintf("validation failed (%d violations): %s",
			len(e.Violations), strings.Join(e.Violations, "; "))
	}
}

// Code returns the error code for this error type.
func (e *ValidationError) Code() Code {
	return ErrCodeValidation
}

// Addf appends a formatted violation to the list.
func (e *ValidationError) Addf(format string, args ...any) {
	e.Violations = append(e.Violations, fmt.Sprintf(format, args...))
}

// OrNil returns the error if any violations were recorded, nil otherwise.
func (e *ValidationError) OrNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}

// AsValidation extracts a *ValidationError from an error chain, if present.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
