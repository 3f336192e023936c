// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/ava-cli/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// error. Errors the adapter did not classify are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var statusErr *adapter.StatusError
	switch {
	case errors.As(err, &statusErr):
		return NewBackendError(statusErr.Status, err)
	case errors.Is(err, adapter.ErrTransport):
		return NewBackendError("", err)
	default:
		return err
	}
}
