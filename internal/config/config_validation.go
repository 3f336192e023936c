// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. Values needed by only one action are checked lazily by that
// action, so a missing endpoint never prevents the session from starting.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s", ErrInvalidAPIConfigs, cfg.API.RequestTimeout)
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

// TargetDir returns the directory loaded documents are copied into, or
// [ErrDocumentPathNotSet].
func (d Documents) TargetDir() (string, error) {
	return required(d.Dir, ErrDocumentPathNotSet)
}

// LoadDocEndpoint returns the URL notified after a document is copied, or
// [ErrLoadDocURLNotSet].
func (a API) LoadDocEndpoint() (string, error) {
	return required(a.LoadDocURL, ErrLoadDocURLNotSet)
}

// QuestionEndpoint returns the URL chat questions are posted to, or
// [ErrQuestionURLNotSet].
func (a API) QuestionEndpoint() (string, error) {
	return required(a.QuestionURL, ErrQuestionURLNotSet)
}

func required(value string, missing error) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", missing
	}
	return value, nil
}
