package store

import "errors"

// Sentinel errors returned by [DocumentStorage] implementations. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrNotRegularFile is returned when the selected path is a directory,
	// device or other non-regular file.
	ErrNotRegularFile = errors.New("source is not a regular file")

	// ErrDocumentNotSaved is returned when the copy could not be written to
	// or moved into the documents directory.
	ErrDocumentNotSaved = errors.New("document was not saved")
)
