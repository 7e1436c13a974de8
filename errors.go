package gui

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error category.
type Code string

// Error codes returned by the mutation, configuration and document APIs.
const (
	// ErrCodeOwnership: an element already has a parent, is not a child of
	// the element it is removed from, or the attach would create a cycle.
	ErrCodeOwnership Code = "OWNERSHIP"
	// ErrCodeInvalidArgument: a nil element or an out-of-range value.
	ErrCodeInvalidArgument Code = "INVALID_ARGUMENT"
	// ErrCodeLayoutState: an operation needs layout state that does not exist.
	ErrCodeLayoutState Code = "LAYOUT_STATE"
	// ErrCodeConfig: a configuration file could not be read or is invalid.
	ErrCodeConfig Code = "CONFIG"
	// ErrCodeDocument: a layout document could not be parsed or built.
	ErrCodeDocument Code = "DOCUMENT"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
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

// NewError creates an Error with the given code and formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WrapError creates an Error wrapping cause.
func WrapError(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// IsCode reports whether err, or any error it wraps, is an *Error with code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// CodeOf extracts the error code from err, or "" if err is not an *Error.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
