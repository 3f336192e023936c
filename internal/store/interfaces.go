// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists documents selected by the user in the shared
// documents directory the backend reads from.
package store

import (
	"context"

	"github.com/MKhiriev/ava-cli/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/document_storage_mock.go -package=mock

// DocumentStorage stores a selected document under its canonical name.
type DocumentStorage interface {
	// Save copies the file at sourcePath into dir as
	// [models.CanonicalDocumentName], replacing any previous copy. The
	// returned [models.Document] describes the stored copy.
	//
	// On error the destination is left untouched.
	Save(ctx context.Context, sourcePath, dir string) (models.Document, error)
}
