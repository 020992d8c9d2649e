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
	ErrNullItem     ErrorCode = "NULL_ITEM"

	// Invocation errors
	ErrNoArguments      ErrorCode = "NO_ARGUMENTS"
	ErrMissingArguments ErrorCode = "MISSING_ARGUMENTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestRead  ErrorCode = "MANIFEST_READ"
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"
	ErrManifestWrite ErrorCode = "MANIFEST_WRITE"

	// FileSystem errors
	ErrDirRead ErrorCode = "DIR_READ"
)

// Exit codes returned by the command line for invocation errors
const (
	ExitNoArguments      = -1
	ExitMissingArguments = -2
	ExitFailure          = 1
)

// WixsyncError represents a structured error with code and details
type WixsyncError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *WixsyncError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *WixsyncError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *WixsyncError) Is(target error) bool {
	var targetErr *WixsyncError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new WixsyncError with the given code and message
func New(code ErrorCode, message string) *WixsyncError {
	return &WixsyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new WixsyncError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *WixsyncError {
	return &WixsyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a WixsyncError
func Wrap(err error, code ErrorCode, message string) *WixsyncError {
	if err == nil {
		return nil
	}
	return &WixsyncError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *WixsyncError {
	if err == nil {
		return nil
	}
	return &WixsyncError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *WixsyncError) WithDetail(key string, value interface{}) *WixsyncError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var wErr *WixsyncError
	if errors.As(err, &wErr) {
		return wErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a WixsyncError
func GetErrorCode(err error) ErrorCode {
	var wErr *WixsyncError
	if errors.As(err, &wErr) {
		return wErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a WixsyncError
func GetErrorDetails(err error) map[string]interface{} {
	var wErr *WixsyncError
	if errors.As(err, &wErr) {
		return wErr.Details
	}
	return nil
}

// ExitCode maps an error to the process exit code.
// A nil error is success; invocation errors keep their historical negative codes.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch GetErrorCode(err) {
	case ErrNoArguments:
		return ExitNoArguments
	case ErrMissingArguments:
		return ExitMissingArguments
	default:
		return ExitFailure
	}
}
