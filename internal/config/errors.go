package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a value is
// present but malformed.
var (
	// ErrInvalidAPIConfigs indicates invalid backend settings (for example,
	// a non-positive request timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)

// Errors returned when a value required by a single action is missing. The
// messages name the environment variable the user has to set.
var (
	ErrDocumentPathNotSet = errors.New("DOCUMENT_PATH environment variable not found")
	ErrLoadDocURLNotSet   = errors.New("API_LOAD_DOC environment variable not found")
	ErrQuestionURLNotSet  = errors.New("API_SEND_ASNWER environment variable not found")
)
