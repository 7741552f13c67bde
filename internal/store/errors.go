package store

import (
	"fmt"
	"net/http"
)

// Error is a persistence error with an HTTP status code.
type Error struct {
	Code    int    // HTTP status code
	Message string // User-facing message
	Err     error  // Underlying error (optional)
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPCode returns the HTTP status code associated with this error.
func (e *Error) HTTPCode() int { return e.Code }

// WithCause wraps an underlying error.
func (e *Error) WithCause(err error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Err:     err,
	}
}

// Sentinel errors.
var (
	ErrNotFound = &Error{
		Code:    http.StatusNotFound,
		Message: "invite not found",
	}

	// ErrAlreadyExists is returned when a slug collides with an existing invite.
	ErrAlreadyExists = &Error{
		Code:    http.StatusConflict,
		Message: "invite already exists",
	}

	// ErrAlreadyResponded is returned when a response is recorded twice.
	ErrAlreadyResponded = &Error{
		Code:    http.StatusBadRequest,
		Message: "invite already responded",
	}
)
