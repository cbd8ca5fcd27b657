package api

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response (connection refused, timeout, DNS). Match with errors.Is.
var ErrUnavailable = errors.New("service unavailable")

// StatusError reports a non-2xx HTTP response. Message carries the backend's
// message field when the error body had one, otherwise it is empty.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status carried by err, or 0 when err is not a
// StatusError (e.g. a transport failure).
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

// MessageOf returns the backend-provided message carried by err, if any.
func MessageOf(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Message
	}
	return ""
}
