// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the AVA
// client. It aggregates all sub-configurations and is populated by merging
// defaults, an optional JSON file and environment variables.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Documents holds the local document directory settings used by the
	// load-file action.
	Documents Documents

	// API holds the backend endpoints and the outbound request timeout.
	API API `envPrefix:"API_"`

	// Log holds diagnostics log settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Documents holds the settings of the directory that receives loaded
// documents.
type Documents struct {
	// Dir is the directory the selected document is copied into under its
	// canonical name. Required by the load-file action.
	// Env: DOCUMENT_PATH
	Dir string `env:"DOCUMENT_PATH"`

	// PickerStartDir is the directory the file dialog opens in.
	// Env: PICKER_START_DIR
	PickerStartDir string `env:"PICKER_START_DIR"`
}

// API holds the backend endpoint URLs. Both endpoints are full URLs, not
// paths relative to a base address.
type API struct {
	// LoadDocURL receives the notification sent after a document is copied.
	// Env: API_LOAD_DOC
	LoadDocURL string `env:"LOAD_DOC"`

	// QuestionURL receives chat questions. The variable name keeps the
	// spelling the backend deployment uses.
	// Env: API_SEND_ASNWER
	QuestionURL string `env:"SEND_ASNWER"`

	// RequestTimeout bounds every outbound request (e.g. "60s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds settings of the diagnostics log.
type Log struct {
	// File is the path of the JSON log file. Empty means a "logs" file next
	// to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Default values applied before any other source.
const (
	DefaultRequestTimeout = 60 * time.Second
	DefaultPickerStartDir = "."
	DefaultLogLevel       = "debug"
	DefaultDotEnvFile     = ".env"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Documents: Documents{PickerStartDir: DefaultPickerStartDir},
		API:       API{RequestTimeout: DefaultRequestTimeout},
		Log:       Log{Level: DefaultLogLevel},
	}
}

// GetStructuredConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Defaults
//  2. JSON file (path taken from the CONFIG environment variable)
//  3. Environment variables, after loading .env into the environment
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(DefaultDotEnvFile).
		withJSON().
		withEnv().
		build()
}
