package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/ava-cli/internal/adapter"
	"github.com/MKhiriev/ava-cli/internal/config"
	"github.com/MKhiriev/ava-cli/internal/mock"
	"github.com/MKhiriev/ava-cli/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testQuestionURL = "http://localhost:5001/get_ai_response"

func TestClientChatService_Ready(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)

	assert.NoError(t, NewClientChatService(fullConfig(), mockAdapter).Ready())
	assert.ErrorIs(t, NewClientChatService(&config.StructuredConfig{}, mockAdapter).Ready(), config.ErrQuestionURLNotSet)
}

func TestClientChatService_Ask_TrimsQuestion(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientChatService(fullConfig(), mockAdapter)
	ctx := context.Background()

	mockAdapter.EXPECT().
		Ask(ctx, testQuestionURL, models.QuestionRequest{Message: "What is the summary?"}).
		Return(models.Answer{Body: "It's about X."}, nil)

	answer, err := svc.Ask(ctx, "  What is the summary?\n")

	require.NoError(t, err)
	assert.Equal(t, "It's about X.", answer.Body)
}

func TestClientChatService_Ask_EmptyQuestionIsSent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientChatService(fullConfig(), mockAdapter)

	mockAdapter.EXPECT().
		Ask(gomock.Any(), testQuestionURL, models.QuestionRequest{Message: ""}).
		Return(models.Answer{Body: "?"}, nil)

	_, err := svc.Ask(context.Background(), "   ")
	require.NoError(t, err)
}

func TestClientChatService_Ask_MissingEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientChatService(&config.StructuredConfig{}, mockAdapter)

	_, err := svc.Ask(context.Background(), "hello")

	assert.ErrorIs(t, err, config.ErrQuestionURLNotSet)
}

func TestClientChatService_Ask_Rejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	svc := NewClientChatService(fullConfig(), mockAdapter)

	mockAdapter.EXPECT().Ask(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.Answer{}, &adapter.StatusError{StatusCode: 400, Status: "400 Bad Request"})

	_, err := svc.Ask(context.Background(), "hello")

	var backendErr *BackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "400 Bad Request", backendErr.Status)
}

func TestMapAdapterError_PassesThroughUnknown(t *testing.T) {
	assert.NoError(t, mapAdapterError(nil))
	assert.Same(t, assert.AnError, mapAdapterError(assert.AnError))
}
