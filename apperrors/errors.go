// Package apperrors defines the error kinds raised by the services and the
// HTTP status each of them maps to.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	CodeValidation       ErrorCode = "VALIDATION_ERROR"
	CodeInvalidReference ErrorCode = "INVALID_REFERENCE"
	CodeDuplicateKey     ErrorCode = "DUPLICATE_KEY"
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeStateConflict    ErrorCode = "STATE_CONFLICT"
	CodeAuthentication   ErrorCode = "AUTHENTICATION_FAILURE"
	CodeAuthorization    ErrorCode = "AUTHORIZATION_FAILURE"
	CodeConfiguration    ErrorCode = "CONFIGURATION_ERROR"
	CodeInternal         ErrorCode = "INTERNAL_ERROR"
)

// AppError carries a kind, a client-safe message and the HTTP status.
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
	Status  int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func newError(code ErrorCode, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, Status: status}
}

func NewValidation(message string) *AppError {
	return newError(CodeValidation, http.StatusBadRequest, message)
}

func NewInvalidReference(message string) *AppError {
	return newError(CodeInvalidReference, http.StatusBadRequest, message)
}

func NewDuplicateKey(message string) *AppError {
	return newError(CodeDuplicateKey, http.StatusBadRequest, message)
}

func NewNotFound(message string) *AppError {
	return newError(CodeNotFound, http.StatusNotFound, message)
}

func NewStateConflict(message string) *AppError {
	return newError(CodeStateConflict, http.StatusBadRequest, message)
}

func NewAuthentication(message string) *AppError {
	return newError(CodeAuthentication, http.StatusUnauthorized, message)
}

func NewAuthorization(message string) *AppError {
	return newError(CodeAuthorization, http.StatusForbidden, message)
}

func NewConfiguration(message string) *AppError {
	return newError(CodeConfiguration, http.StatusInternalServerError, message)
}

// Wrap attaches an underlying cause to a new error of the given kind.
func Wrap(err error, code ErrorCode, status int, message string) *AppError {
	return &AppError{Code: code, Message: message, Err: err, Status: status}
}

// As returns the AppError in err's chain, if any.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	appErr, ok := As(err)
	return ok && appErr.Code == code
}

// StatusOf maps err to an HTTP status; unknown errors are 500.
func StatusOf(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.Status
	}
	return http.StatusInternalServerError
}
