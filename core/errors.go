package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrSessionExpired is returned by the API client whenever the backend answers
// 401 or 403. It is the single signal callers use to clear the stored token and
// route back to the login entry point.
var ErrSessionExpired = errors.New("session expired")

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIError carries a non-2xx backend response: the status code and the
// server-supplied message when one was present in the body.
type APIError struct {
	StatusCode int
	Message    string
}

func NewAPIError(code int, msg string) *APIError {
	if msg == "" {
		msg = "an error occurred"
	}
	return &APIError{StatusCode: code, Message: msg}
}

func (err APIError) Error() string {
	return fmt.Sprintf("%d: %s", err.StatusCode, err.Message)
}

func IsSessionExpired(err error) bool {
	return errors.Cause(err) == ErrSessionExpired
}
