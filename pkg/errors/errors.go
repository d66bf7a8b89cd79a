package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Table configuration errors
	ErrUndefinedColumn   ErrorCode = "UNDEFINED_COLUMN"
	ErrUnsupportedLayout ErrorCode = "UNSUPPORTED_LAYOUT"

	// Configuration file errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Input ingestion errors
	ErrInputFormat ErrorCode = "INPUT_FORMAT"
	ErrInputParse  ErrorCode = "INPUT_PARSE"
	ErrInputRead   ErrorCode = "INPUT_READ"
)

// TabloidError represents a structured error with code and details
type TabloidError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *TabloidError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *TabloidError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *TabloidError) Is(target error) bool {
	var targetErr *TabloidError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new TabloidError with the given code and message
func New(code ErrorCode, message string) *TabloidError {
	return &TabloidError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new TabloidError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *TabloidError {
	return &TabloidError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a TabloidError
func Wrap(err error, code ErrorCode, message string) *TabloidError {
	if err == nil {
		return nil
	}
	return &TabloidError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *TabloidError {
	if err == nil {
		return nil
	}
	return &TabloidError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *TabloidError) WithDetail(key string, value interface{}) *TabloidError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var tabErr *TabloidError
	if errors.As(err, &tabErr) {
		return tabErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a TabloidError
func GetErrorCode(err error) ErrorCode {
	var tabErr *TabloidError
	if errors.As(err, &tabErr) {
		return tabErr.Code
	}
	return ErrUnknown
}
