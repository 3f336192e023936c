// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer the AVA client uses to talk
// to the question-answering backend.
//
// The primary abstraction is [BackendAdapter], which decouples the service
// layer from HTTP. The package ships a resty-based implementation
// ([NewHTTPBackendAdapter]).
//
// Non-2xx responses are returned as [*StatusError] (matching
// [ErrUnexpectedStatus] with [errors.Is]); requests that never produced a
// response match [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/ava-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter sends the client's two notifications to the backend.
// Endpoints are full URLs resolved by the caller for every call.
type BackendAdapter interface {
	// LoadDocument tells the backend that a document was copied to the
	// shared documents directory. On a 2xx status the raw response body is
	// returned.
	LoadDocument(ctx context.Context, endpoint string, req models.LoadDocumentRequest) (models.Answer, error)

	// Ask submits a chat question. On a 2xx status the raw response body is
	// returned.
	Ask(ctx context.Context, endpoint string, req models.QuestionRequest) (models.Answer, error)
}
