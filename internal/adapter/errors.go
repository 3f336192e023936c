package adapter

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport is returned when a request could not be sent or no
	// response arrived before the timeout.
	ErrTransport = errors.New("backend request failed")
	// ErrUnexpectedStatus is matched by every [*StatusError].
	ErrUnexpectedStatus = errors.New("unexpected response status")
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	// StatusCode is the numeric HTTP status.
	StatusCode int
	// Status is the status line, e.g. "404 Not Found".
	Status string
	// Body is the trimmed response body, kept for the log.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnexpectedStatus, e.Status)
}

func (e *StatusError) Unwrap() error {
	return ErrUnexpectedStatus
}
