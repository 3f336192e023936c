// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the client-side business operations behind the
// AVA menu actions. Services resolve configuration lazily, delegate file
// handling to [store.DocumentStorage] and transport to
// [adapter.BackendAdapter], and translate their errors into the values
// declared in errors.go.
package service

import (
	"github.com/MKhiriev/ava-cli/internal/adapter"
	"github.com/MKhiriev/ava-cli/internal/config"
	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/MKhiriev/ava-cli/internal/store"
)

type ClientServices struct {
	DocumentService ClientDocumentService
	ChatService     ClientChatService
}

func NewClientServices(cfg *config.StructuredConfig, storage store.DocumentStorage, backend adapter.BackendAdapter, log *logger.Logger) *ClientServices {
	return &ClientServices{
		DocumentService: NewClientDocumentService(cfg, storage, backend, log),
		ChatService:     NewClientChatService(cfg, backend),
	}
}
