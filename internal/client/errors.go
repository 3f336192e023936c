package client

import "errors"

var (
	// ErrInputFailed is returned by [App.Run] when a line cannot be read,
	// including end of input.
	ErrInputFailed = errors.New("failed to read input")
	// ErrOutputFailed is returned by [App.Run] when a prompt cannot be
	// written.
	ErrOutputFailed = errors.New("failed to write output")
)
