package service

import (
	"errors"
	"net/http"
)

// Error codes carried by AppError
const (
	CodeInvalidInput = "invalid_input"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeConflict     = "conflict"
	CodeFetchFailure = "fetch_failure"
	CodeInternal     = "internal"
)

// AppError carries a user-facing message and HTTP status from a service to
// its handler. Err is the underlying cause and is never shown to the user.
type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// FetchFailure is the page-level error for a load whose reads did not all succeed
func FetchFailure(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusBadGateway, Code: CodeFetchFailure, Message: message, Err: err}
}

func invalidInput(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Code: CodeInvalidInput, Message: message, Err: err}
}

func notFound(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusNotFound, Code: CodeNotFound, Message: message, Err: err}
}

func unauthorized(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message, Err: err}
}

func internal(message string, err error) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Code: CodeInternal, Message: message, Err: err}
}

// AsAppError returns err as an *AppError, wrapping unknown errors as internal
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return internal("Ocurrió un error inesperado. Intenta de nuevo.", err)
}
