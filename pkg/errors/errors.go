package errors

import (
	"errors"
	"fmt"
	"net/http"

	"phoenix-assistant/backend/internal/store"
)

// Error codes used across the API
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
	CodeStoreRead        = "STORE_READ_ERROR"
	CodeStoreWrite       = "STORE_WRITE_ERROR"
	CodeServer           = "SERVER_ERROR"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    any    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// WithDetails adds details to the error
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// NewError creates a new application error
func NewError(statusCode int, code string, message string) *AppError {
	return &AppError{
		StatusCode: statusCode,
		Code:       code,
		Message:    message,
	}
}

// NewValidationError creates a 400 Bad Request error for a malformed or
// missing request field
func NewValidationError(message string) *AppError {
	return NewError(http.StatusBadRequest, CodeValidation, message)
}

// NewInternalServerError creates a 500 Internal Server Error
func NewInternalServerError(code string, message string) *AppError {
	return NewError(http.StatusInternalServerError, code, message)
}

// FromStore maps a gateway error onto the API error taxonomy: missing
// connection becomes 503, read/write failures become 502.
func FromStore(err error) *AppError {
	switch {
	case errors.Is(err, store.ErrUnavailable):
		return NewError(http.StatusServiceUnavailable, CodeStoreUnavailable, "document store is not available")
	case errors.Is(err, store.ErrRead):
		return NewError(http.StatusBadGateway, CodeStoreRead, "document store read failed").WithDetails(err.Error())
	case errors.Is(err, store.ErrWrite):
		return NewError(http.StatusBadGateway, CodeStoreWrite, "document store write failed").WithDetails(err.Error())
	default:
		return FromError(err)
	}
}

// FromError converts a standard error to an AppError
// If the error is already an AppError, it is returned as-is
// Otherwise, it is wrapped as an internal server error
func FromError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	return NewInternalServerError(
		CodeServer,
		fmt.Sprintf("An unexpected error occurred: %s", err.Error()),
	)
}
