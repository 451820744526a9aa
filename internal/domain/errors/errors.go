// Package errors defines application-level errors that carry HTTP status
// information to the delivery layer.
package errors

import (
	"net/http"

	"passbook/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrPassNotFound = NewBaseError(
		http.StatusNotFound,
		"PASS_NOT_FOUND",
		"pass not found",
		"",
	)

	ErrRegistrationNotFound = NewBaseError(
		http.StatusNotFound,
		"REGISTRATION_NOT_FOUND",
		"registration not found",
		"",
	)

	ErrInvalidAuthorization = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_AUTHORIZATION",
		"authorization header missing or incorrect",
		"",
	)

	ErrEmptyLogSubmission = NewBaseError(
		http.StatusBadRequest,
		"EMPTY_LOG_SUBMISSION",
		"log submission must contain at least one message",
		"",
	)

	ErrRendererNotRegistered = NewBaseError(
		http.StatusNotFound,
		"RENDERER_NOT_REGISTERED",
		"no pass renderer registered for this pass type",
		"",
	)

	ErrPushProvisioningFailed = NewBaseError(
		http.StatusInternalServerError,
		"PUSH_PROVISIONING_FAILED",
		"failed to provision push delivery credentials",
		"",
	)

	ErrDatabaseExecuteFailed = NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_EXECUTE_FAILED",
		"database operation failed",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database failure with context.
func NewDatabaseExecuteError(err error, message string) error {
	return errors.Wrap(ErrDatabaseExecuteFailed.WithDetails(err.Error()), message)
}
