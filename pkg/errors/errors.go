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

	// Configuration errors: reported before any filesystem mutation
	ErrConfigLoad     ErrorCode = "CONFIG_LOAD"
	ErrNotADirectory  ErrorCode = "NOT_A_DIRECTORY"
	ErrInvalidType    ErrorCode = "INVALID_TYPE"
	ErrInvalidCommand ErrorCode = "INVALID_COMMAND"

	// Filesystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrScanFailed   ErrorCode = "SCAN_FAILED"
)

// DupcleanError represents a structured error with code and details
type DupcleanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DupcleanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DupcleanError) Unwrap() error {
	return e.Wrapped
}

// Is matches errors by code so tests can assert on categories.
func (e *DupcleanError) Is(target error) bool {
	var targetErr *DupcleanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DupcleanError with the given code and message
func New(code ErrorCode, message string) *DupcleanError {
	return &DupcleanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DupcleanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DupcleanError {
	return &DupcleanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DupcleanError
func Wrap(err error, code ErrorCode, message string) *DupcleanError {
	if err == nil {
		return nil
	}
	return &DupcleanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DupcleanError {
	if err == nil {
		return nil
	}
	return &DupcleanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DupcleanError) WithDetail(key string, value interface{}) *DupcleanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var de *DupcleanError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}
