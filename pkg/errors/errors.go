// Package errors provides structured error types for the panelkit engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the render pipeline and CLI
//   - Machine-readable error codes for programmatic handling
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Codes on the per-frame render path are soft by contract: the frame still
// completes with a placeholder, a log line, or a best-effort output. A
// periodic refresh pipeline must never crash on stale or malformed upstream
// data. Hard failures (INVALID_*) are reserved for the configuration loading
// path, which runs outside the render hot path.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLayout, "unknown layout kind %q", kind)
//	if errors.Is(err, errors.ErrCodeInvalidLayout) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeEncodeFailed, origErr, "jpeg encode at quality %d", q)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Soft render-path conditions. These degrade, never fail a frame.
	ErrCodeMissingData    Code = "MISSING_DATA"     // non-numeric or absent value, placeholder rendered
	ErrCodeOverflow       Code = "OVERFLOW_WARNING" // draw call exceeded slot bounds, logged only
	ErrCodeAssetFallback  Code = "ASSET_FALLBACK"   // preferred font/icon unavailable, fallback used
	ErrCodeEncodeBudget   Code = "ENCODE_BUDGET_EXCEEDED"
	ErrCodeConfigMismatch Code = "CONFIG_MISMATCH" // widget assigned to a non-existent slot

	// Configuration loading errors (outside the hot path, may hard-fail).
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidLayout Code = "INVALID_LAYOUT"
	ErrCodeInvalidWidget Code = "INVALID_WIDGET"
	ErrCodeInvalidTheme  Code = "INVALID_THEME"

	// Internal errors
	ErrCodeEncodeFailed Code = "ENCODE_FAILED"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
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

// Soft reports whether err carries a soft render-path code. Soft errors are
// diagnostics: the frame that produced them is still valid output.
func Soft(err error) bool {
	switch GetCode(err) {
	case ErrCodeMissingData, ErrCodeOverflow, ErrCodeAssetFallback,
		ErrCodeEncodeBudget, ErrCodeConfigMismatch:
		return true
	}
	return false
}
