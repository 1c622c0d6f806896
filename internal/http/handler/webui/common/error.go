package common

import (
	"net/http"

	"github.com/pkg/errors"
)

// Error carries the status and the translated message a failed request
// should be answered with, wrapping the underlying cause.
type Error struct {
	cause       error
	userMessage string
	statusCode  int
}

// StatusCode implements HTTPError.
func (e *Error) StatusCode() int {
	return e.statusCode
}

func (e *Error) Error() string {
	if e.cause == nil {
		return http.StatusText(e.statusCode)
	}

	return e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// UserMessage implements UserFacingError.
func (e *Error) UserMessage() string {
	return e.userMessage
}

func NewError(cause error, userMessage string, statusCode int) *Error {
	return &Error{
		cause:       cause,
		userMessage: userMessage,
		statusCode:  statusCode,
	}
}

func NewForbiddenError(userMessage string) *Error {
	return NewError(errors.New("forbidden"), userMessage, http.StatusForbidden)
}

func NewBadRequestError(cause error, userMessage string) *Error {
	return NewError(cause, userMessage, http.StatusBadRequest)
}

var (
	_ UserFacingError = &Error{}
	_ HTTPError       = &Error{}
)
