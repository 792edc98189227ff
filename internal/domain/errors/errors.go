// Package errors defines application errors carrying both an HTTP status and
// a machine-readable business code for the delivery layer.
package errors

import (
	"net/http"

	"pushgate/internal/errors"
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
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"No device registered with this token",
		"",
	)

	ErrDeviceNotOwned = NewBaseError(
		http.StatusForbidden,
		"DEVICE_NOT_OWNED",
		"The device belongs to another user",
		"",
	)

	ErrDeviceRegistrationFailed = NewBaseError(
		http.StatusInternalServerError,
		"DEVICE_REGISTRATION_FAILED",
		"Failed to register device",
		"",
	)

	ErrNoTarget = NewBaseError(
		http.StatusBadRequest,
		"NO_TARGET",
		"The message has no user, topic or device target",
		"",
	)

	ErrNoMatchingUsers = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_MATCHING_USERS",
		"None of the targeted users has a registered device",
		"",
	)

	ErrNoMatchingDevices = NewBaseError(
		http.StatusUnprocessableEntity,
		"NO_MATCHING_DEVICES",
		"No enabled device subscribing to the topic matches the targeted tokens",
		"",
	)

	ErrEnqueueFailed = NewBaseError(
		http.StatusInternalServerError,
		"ENQUEUE_FAILED",
		"Failed to enqueue message for delivery",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database failure as an internal AppError.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.Wrap(base, err.Error())
}
