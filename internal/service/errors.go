package service

import (
	"errors"
	"fmt"
	"net/http"
)

// RequestError reports a failed API request: a transport failure or a
// non-2xx response. Status is the HTTP status, or 0 for transport failures.
// Detail is the server-provided error message when one was present.
type RequestError struct {
	Status int
	Detail string
}

func (e *RequestError) Error() string {
	if e.Status == 0 {
		return e.Detail
	}
	return fmt.Sprintf("%s (status %d)", e.Detail, e.Status)
}

// IsAuthRejected reports whether err is a request failure with status 401.
// The gateway has already invalidated the session by the time callers see it.
func IsAuthRejected(err error) bool {
	var re *RequestError
	return errors.As(err, &re) && re.Status == http.StatusUnauthorized
}

// ValidationError reports a client-side precondition failure. It is raised
// before any network call and is never retried or logged.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a client-side validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
