package service

import "errors"

// Errors returned by the document and chat services. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrDocumentNotCopied is returned when the selected document could not
	// be copied into the documents directory.
	ErrDocumentNotCopied = errors.New("document not copied")

	// ErrBackendUnreachable is matched by a [*BackendError] for a request
	// that got no response.
	ErrBackendUnreachable = errors.New("backend unreachable")

	// ErrBackendRejected is matched by a [*BackendError] for a response
	// outside the 2xx range.
	ErrBackendRejected = errors.New("backend rejected request")
)

// BackendError describes a failed backend call.
type BackendError struct {
	// Status is the status line of a rejected request, e.g.
	// "400 Bad Request". It is empty when no response arrived.
	Status string

	err error
}

// NewBackendError wraps err. A non-empty status marks the request as
// rejected by the backend, an empty one as unreachable.
func NewBackendError(status string, err error) *BackendError {
	return &BackendError{Status: status, err: err}
}

func (e *BackendError) Error() string {
	return e.err.Error()
}

func (e *BackendError) Unwrap() []error {
	if e.Rejected() {
		return []error{ErrBackendRejected, e.err}
	}
	return []error{ErrBackendUnreachable, e.err}
}

// Rejected reports whether the backend answered with a non-2xx status.
func (e *BackendError) Rejected() bool {
	return e.Status != ""
}
