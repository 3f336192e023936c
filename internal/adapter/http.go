package adapter

import (
	"context"
	"fmt"

	"github.com/MKhiriev/ava-cli/internal/config"
	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/MKhiriev/ava-cli/internal/utils"
	"github.com/MKhiriev/ava-cli/models"
)

// HeaderRequestID carries the client-generated id of every request.
const HeaderRequestID = "X-Request-ID"

type httpBackendAdapter struct {
	client *utils.HTTPClient
	ids    *utils.RequestIDs

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/REST implementation of
// [BackendAdapter]. Every request is bounded by apiCfg.RequestTimeout.
func NewHTTPBackendAdapter(apiCfg config.API, logger *logger.Logger) BackendAdapter {
	log := logger.WithComponent("adapter")

	return &httpBackendAdapter{
		client: utils.NewHTTPClient(apiCfg.RequestTimeout),
		ids:    utils.NewRequestIDs(log),
		logger: log,
	}
}

// LoadDocument implements [BackendAdapter]. It POSTs req as JSON to endpoint.
func (h *httpBackendAdapter) LoadDocument(ctx context.Context, endpoint string, req models.LoadDocumentRequest) (models.Answer, error) {
	return h.post(ctx, "load document", endpoint, req)
}

// Ask implements [BackendAdapter]. It POSTs req as JSON to endpoint.
func (h *httpBackendAdapter) Ask(ctx context.Context, endpoint string, req models.QuestionRequest) (models.Answer, error) {
	return h.post(ctx, "ask", endpoint, req)
}

func (h *httpBackendAdapter) post(ctx context.Context, op, endpoint string, body any) (models.Answer, error) {
	requestID := h.ids.Next()
	answer := models.Answer{RequestID: requestID}

	event := h.logger.Debug()
	if action, ok := utils.GetActionFromContext(ctx); ok {
		event = event.Str("action", action)
	}
	event.Str("op", op).Str("endpoint", endpoint).Str("request_id", requestID).Msg("sending request")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(HeaderRequestID, requestID).
		SetBody(body).
		Post(endpoint)
	if err != nil {
		h.logger.Error().Err(err).Str("op", op).Str("request_id", requestID).Msg("request failed")
		return answer, fmt.Errorf("%w: %w", ErrTransport, err)
	}

	if err = mapHTTPError(resp); err != nil {
		h.logger.Warn().
			Str("op", op).
			Str("request_id", requestID).
			Int("status", resp.StatusCode()).
			Str("body", string(resp.Body())).
			Msg("unexpected response status")
		return answer, err
	}

	h.logger.Info().
		Str("op", op).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("request completed")

	answer.Body = string(resp.Body())
	return answer, nil
}
