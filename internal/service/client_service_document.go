package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ava-cli/internal/adapter"
	"github.com/MKhiriev/ava-cli/internal/config"
	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/MKhiriev/ava-cli/internal/store"
	"github.com/MKhiriev/ava-cli/models"
)

type clientDocumentService struct {
	documents config.Documents
	api       config.API

	storage store.DocumentStorage
	adapter adapter.BackendAdapter

	logger *logger.Logger
}

// NewClientDocumentService constructs a [ClientDocumentService]. Configuration
// values are resolved on every call, so a missing DOCUMENT_PATH or
// API_LOAD_DOC only fails the action that needs it.
func NewClientDocumentService(cfg *config.StructuredConfig, storage store.DocumentStorage, backend adapter.BackendAdapter, logger *logger.Logger) ClientDocumentService {
	return &clientDocumentService{
		documents: cfg.Documents,
		api:       cfg.API,
		storage:   storage,
		adapter:   backend,
		logger:    logger.WithComponent("document_service"),
	}
}

func (s *clientDocumentService) TargetDir() (string, error) {
	return s.documents.TargetDir()
}

func (s *clientDocumentService) Import(ctx context.Context, sourcePath string) (models.Document, error) {
	dir, err := s.TargetDir()
	if err != nil {
		return models.Document{}, err
	}

	doc, err := s.storage.Save(ctx, sourcePath, dir)
	if err != nil {
		s.logger.Error().Err(err).Str("source", sourcePath).Str("dir", dir).Msg("document import failed")
		return models.Document{}, fmt.Errorf("%w: %w", ErrDocumentNotCopied, err)
	}

	return doc, nil
}

func (s *clientDocumentService) Notify(ctx context.Context, doc models.Document) (models.Answer, error) {
	endpoint, err := s.api.LoadDocEndpoint()
	if err != nil {
		return models.Answer{}, err
	}

	answer, err := s.adapter.LoadDocument(ctx, endpoint, models.NewLoadDocumentRequest(doc))
	if err != nil {
		return answer, mapAdapterError(err)
	}

	return answer, nil
}
