package apierr

import (
	"fmt"
	"net/http"
)

// Error describes a failure at the HTTP boundary. Code is a client-safe message;
// Err carries the internal cause and is never written to a response for 5xx statuses.
type Error struct {
	Status int
	Code   string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Code != "" {
		return e.Code
	}
	if e.Status != 0 {
		return fmt.Sprintf("api error (%d)", e.Status)
	}
	return "api error"
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, code string, err error) *Error {
	return &Error{Status: status, Code: code, Err: err}
}

func BadRequest(msg string) *Error { return New(http.StatusBadRequest, msg, nil) }

func NotFound(msg string) *Error { return New(http.StatusNotFound, msg, nil) }

func Internal(err error) *Error { return New(http.StatusInternalServerError, "", err) }
