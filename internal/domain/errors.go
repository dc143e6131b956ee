package domain

import (
	"errors"
	"net/http"
)

// Error codes carried by AppError. Each maps to one HTTP status.
const (
	CodeNotFound    = 1
	CodeValidation  = 2
	CodeInternal    = 3
	CodeUnavailable = 4
)

var codeStatus = map[int]int{
	CodeNotFound:    http.StatusNotFound,
	CodeValidation:  http.StatusBadRequest,
	CodeInternal:    http.StatusInternalServerError,
	CodeUnavailable: http.StatusServiceUnavailable,
}

// AppError is an error with a client-facing message. Err is the cause and is
// never shown to clients.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
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

// NewAppError creates an AppError with the given code, message and cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NotFound reports that the named resource does not exist, e.g. "user not found".
func NotFound(resource string) *AppError {
	return NewAppError(CodeNotFound, resource+" not found", nil)
}

// Invalid reports a malformed client value.
func Invalid(message string, err error) *AppError {
	return NewAppError(CodeValidation, message, err)
}

// IsNotFound reports whether err is or wraps an AppError with CodeNotFound.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsValidation reports whether err is or wraps an AppError with CodeValidation.
func IsValidation(err error) bool { return hasCode(err, CodeValidation) }

// IsInternal reports whether err is or wraps an AppError with CodeInternal.
func IsInternal(err error) bool { return hasCode(err, CodeInternal) }

// IsUnavailable reports whether err is or wraps an AppError with CodeUnavailable.
func IsUnavailable(err error) bool { return hasCode(err, CodeUnavailable) }

// hasCode matches by code through errors.As, so any AppError in the chain
// with that code counts regardless of identity.
func hasCode(err error, code int) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// HTTPStatusCode maps err to an HTTP status. Anything that is not an AppError
// with a known code is a 500.
func HTTPStatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		if status, ok := codeStatus[appErr.Code]; ok {
			return status
		}
	}
	return http.StatusInternalServerError
}
