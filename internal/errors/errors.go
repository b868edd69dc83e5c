package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a category of application error.
type ErrorCode string

const (
	// ErrCodeConfiguration indicates invalid or missing startup configuration.
	ErrCodeConfiguration ErrorCode = "configuration"
	// ErrCodeValidation indicates invalid input data (the caller's fault).
	ErrCodeValidation ErrorCode = "validation"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"
	// ErrCodeConflict indicates a conflict with existing data (e.g., unique constraint violation).
	ErrCodeConflict ErrorCode = "conflict"
	// ErrCodeStorage indicates an underlying database error.
	ErrCodeStorage ErrorCode = "storage"
	// ErrCodeTimeout indicates a timeout occurred.
	ErrCodeTimeout ErrorCode = "timeout"
	// ErrCodeCanceled indicates the operation was canceled.
	ErrCodeCanceled ErrorCode = "canceled"
)

// AppError represents a structured application error with a code, message, and optional cause.
// It supports error wrapping and unwrapping for use with errors.Is and errors.As.
type AppError struct {
	// Code categorizes the error type
	Code ErrorCode
	// Message is a human-readable error message
	Message string
	// Cause is the underlying error that caused this error (optional)
	Cause error
	// Field is the specific field that caused the error (optional, for validation errors)
	Field string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause, enabling errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Configuration creates a new Configuration error.
func Configuration(message string) *AppError {
	return &AppError{
		Code:    ErrCodeConfiguration,
		Message: message,
	}
}

// Configurationf creates a new Configuration error with formatted message.
func Configurationf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeConfiguration,
		Message: fmt.Sprintf(format, args...),
	}
}

// Validation creates a new Validation error.
func Validation(message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
	}
}

// Validationf creates a new Validation error with formatted message.
func Validationf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf(format, args...),
	}
}

// ValidationField creates a new Validation error for a specific field.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: message,
		Field:   field,
	}
}

// NotFound creates a new NotFound error.
func NotFound(message string) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: message,
	}
}

// NotFoundf creates a new NotFound error with formatted message.
func NotFoundf(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// Conflict creates a new Conflict error.
func Conflict(message string) *AppError {
	return &AppError{
		Code:    ErrCodeConflict,
		Message: message,
	}
}

// Storage creates a new Storage error wrapping the underlying cause.
func Storage(message string, cause error) *AppError {
	return &AppError{
		Code:    ErrCodeStorage,
		Message: message,
		Cause:   cause,
	}
}

// Wrap wraps an existing error with an AppError code and message.
func Wrap(code ErrorCode, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsCode reports whether err is an *AppError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return IsCode(err, ErrCodeValidation) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return IsCode(err, ErrCodeNotFound) }

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return IsCode(err, ErrCodeConfiguration) }
