// Package errors provides coded errors for the logger.
//
// Codes are grouped by hundreds; see Category. Usage:
//
//	err := errors.Wrap(errors.ErrCodeIoWrite, "failed to write log line to stderr", osErr)
//	if errors.IsIoError(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Error is an error with a code, a message and an optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// New creates an Error without a cause.
func New(code ErrorCode, message string) *Error {
	return Wrap(code, message, nil)
}

// Newf is New with a formatted message.
func Newf(code ErrorCode, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), nil)
}

// Wrap creates an Error around cause.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(code ErrorCode, cause error, format string, args ...any) *Error {
	return Wrap(code, fmt.Sprintf(format, args...), cause)
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%d] %s", e.Code, e.Message)
	}

	return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is is errors.Is, re-exported so callers need a single errors import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is errors.As, re-exported so callers need a single errors import.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GetCode returns the code of the outermost *Error in err's chain, or
// ErrCodeUnknown when there is none.
func GetCode(err error) ErrorCode {
	var e *Error
	if !errors.As(err, &e) {
		return ErrCodeUnknown
	}

	return e.Code
}

func HasCode(err error, code ErrorCode) bool {
	return GetCode(err) == code
}

// IsIoError reports whether err is a stream write or flush failure.
// The OS error stays reachable through Is and As.
func IsIoError(err error) bool {
	return GetCode(err).Category() == CategoryIO
}

// IsValidationError reports whether err was caused by a rejected argument.
func IsValidationError(err error) bool {
	return GetCode(err).Category() == CategoryValidation
}
