package service

import (
	"context"

	"github.com/MKhiriev/ava-cli/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// ClientDocumentService defines the client-side contract of the load-file
// action: copying the selected document into the shared documents directory
// and notifying the backend about it.
type ClientDocumentService interface {
	// TargetDir resolves the configured documents directory. It is called
	// before the file dialog is shown so a missing configuration aborts the
	// action early.
	TargetDir() (string, error)

	// Import copies the document at sourcePath into the documents directory
	// under its canonical name. Failures match [ErrDocumentNotCopied].
	Import(ctx context.Context, sourcePath string) (models.Document, error)

	// Notify tells the backend that doc is ready to be indexed and returns
	// the backend's raw reply. Backend failures are returned as
	// [*BackendError].
	Notify(ctx context.Context, doc models.Document) (models.Answer, error)
}

// ClientChatService defines the client-side contract of the chat action.
type ClientChatService interface {
	// Ready reports whether questions can be sent, returning the
	// configuration error otherwise.
	Ready() error

	// Ask submits question (trimmed) and returns the backend's raw reply.
	// Backend failures are returned as [*BackendError].
	Ask(ctx context.Context, question string) (models.Answer, error)
}
