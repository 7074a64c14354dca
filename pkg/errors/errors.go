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
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Input errors, detected before any external call
	ErrInvalidApp        ErrorCode = "INVALID_APP"
	ErrInvalidSelector   ErrorCode = "INVALID_SELECTOR"
	ErrUnsupportedScript ErrorCode = "UNSUPPORTED_SCRIPT"
	ErrScriptNotFound    ErrorCode = "SCRIPT_NOT_FOUND"

	// Discovery errors
	ErrDiscoveryFailed ErrorCode = "DISCOVERY_FAILED"

	// Resolution errors
	ErrAppNotFound     ErrorCode = "APP_NOT_FOUND"
	ErrBetaNotFound    ErrorCode = "BETA_NOT_FOUND"
	ErrVersionNotFound ErrorCode = "VERSION_NOT_FOUND"

	// Compatibility errors
	ErrIncompatibleScript ErrorCode = "INCOMPATIBLE_SCRIPT"

	// Dispatch errors
	ErrDispatchFailed ErrorCode = "DISPATCH_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// HeypsError represents a structured error with code and details
type HeypsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HeypsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HeypsError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HeypsError) Is(target error) bool {
	var targetErr *HeypsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new HeypsError with the given code and message
func New(code ErrorCode, message string) *HeypsError {
	return &HeypsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HeypsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HeypsError {
	return &HeypsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HeypsError
func Wrap(err error, code ErrorCode, message string) *HeypsError {
	if err == nil {
		return nil
	}
	return &HeypsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HeypsError {
	if err == nil {
		return nil
	}
	return &HeypsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *HeypsError) WithDetail(key string, value interface{}) *HeypsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var heypsErr *HeypsError
	if errors.As(err, &heypsErr) {
		return heypsErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a HeypsError
func GetErrorCode(err error) ErrorCode {
	var heypsErr *HeypsError
	if errors.As(err, &heypsErr) {
		return heypsErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a HeypsError
func GetErrorDetails(err error) map[string]interface{} {
	var heypsErr *HeypsError
	if errors.As(err, &heypsErr) {
		return heypsErr.Details
	}
	return nil
}

// Message returns the human-readable message of err with the code prefixes
// of it and any wrapped HeypsError removed.
func Message(err error) string {
	heypsErr, ok := err.(*HeypsError)
	if !ok {
		return err.Error()
	}
	if heypsErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", heypsErr.Message, Message(heypsErr.Wrapped))
	}
	return heypsErr.Message
}
