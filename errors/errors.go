package errors

import (
	"fmt"
	"net/http"
)

// Error represents an application error carrying the HTTP status it maps to.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// BadRequest covers malformed input and validation failures.
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// NotFound means a referenced entity is absent.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message, nil)
}

// Conflict covers uniqueness violations and duplicate entries. Clients see a
// 400; the taxonomy keeps the fixed 400/401/403/404/500 status set.
func Conflict(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// InsufficientStock means a variation cannot cover the requested quantity.
func InsufficientStock(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// InvalidState means an illegal lifecycle transition was requested.
func InvalidState(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

// Unauthorized means the request carries no valid identity.
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

// Forbidden means the identity lacks the role or ownership required.
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message, nil)
}

// Internal wraps an unexpected store or system error.
func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Server error", err)
}

// From converts any error into an *Error, defaulting to Internal.
func From(err error) *Error {
	if e, ok := err.(*Error); ok {
		return e
	}
	return Internal(err)
}
