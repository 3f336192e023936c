package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/ava-cli/internal/adapter"
	"github.com/MKhiriev/ava-cli/internal/config"
	"github.com/MKhiriev/ava-cli/models"
)

type clientChatService struct {
	api     config.API
	adapter adapter.BackendAdapter
}

// NewClientChatService constructs a [ClientChatService].
func NewClientChatService(cfg *config.StructuredConfig, backend adapter.BackendAdapter) ClientChatService {
	return &clientChatService{api: cfg.API, adapter: backend}
}

func (s *clientChatService) Ready() error {
	_, err := s.api.QuestionEndpoint()
	return err
}

func (s *clientChatService) Ask(ctx context.Context, question string) (models.Answer, error) {
	endpoint, err := s.api.QuestionEndpoint()
	if err != nil {
		return models.Answer{}, err
	}

	answer, err := s.adapter.Ask(ctx, endpoint, models.QuestionRequest{Message: strings.TrimSpace(question)})
	if err != nil {
		return answer, mapAdapterError(err)
	}

	return answer, nil
}
