// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/ava-cli/internal/config"
	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/MKhiriev/ava-cli/internal/utils"
	"github.com/MKhiriev/ava-cli/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBackend mirrors the two backend routes and records what it received.
type fakeBackend struct {
	loadStatus int
	loadBody   string
	askStatus  int
	askBody    string

	gotLoad      models.LoadDocumentRequest
	gotQuestion  models.QuestionRequest
	gotRequestID string
	gotType      string
}

func (f *fakeBackend) router(t *testing.T) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	r.Post("/load_doc", func(w http.ResponseWriter, req *http.Request) {
		f.gotRequestID = req.Header.Get(HeaderRequestID)
		f.gotType = req.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&f.gotLoad))
		w.WriteHeader(f.loadStatus)
		_, _ = w.Write([]byte(f.loadBody))
	})
	r.Post("/get_ai_response", func(w http.ResponseWriter, req *http.Request) {
		f.gotRequestID = req.Header.Get(HeaderRequestID)
		f.gotType = req.Header.Get("Content-Type")
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&f.gotQuestion))
		w.WriteHeader(f.askStatus)
		_, _ = w.Write([]byte(f.askBody))
	})
	return r
}

// newTestAdapter создаёт httpBackendAdapter с заданным таймаутом
func newTestAdapter(t *testing.T, timeout time.Duration) BackendAdapter {
	t.Helper()
	return NewHTTPBackendAdapter(config.API{RequestTimeout: timeout}, logger.Nop())
}

// ── LoadDocument ─────────────────────────────────────────────────────────────

func TestLoadDocument_Success(t *testing.T) {
	fb := &fakeBackend{loadStatus: http.StatusOK, loadBody: `{"message":"Data recieved!"}`}
	srv := httptest.NewServer(fb.router(t))
	defer srv.Close()

	req := models.NewLoadDocumentRequest(models.Document{
		OriginalName: "report.pdf",
		Name:         models.CanonicalDocumentName,
		Path:         "/tmp/docs/doc.pdf",
	})

	a := newTestAdapter(t, time.Second)
	got, err := a.LoadDocument(context.Background(), srv.URL+"/load_doc", req)

	require.NoError(t, err)
	assert.Equal(t, `{"message":"Data recieved!"}`, got.Body)
	assert.Equal(t, req, fb.gotLoad)
	assert.Contains(t, fb.gotType, "application/json")
	assert.Equal(t, got.RequestID, fb.gotRequestID)
	_, err = uuid.Parse(fb.gotRequestID)
	assert.NoError(t, err)
}

func TestLoadDocument_BadRequest(t *testing.T) {
	fb := &fakeBackend{loadStatus: http.StatusBadRequest, loadBody: `{"error":"boom"}`}
	srv := httptest.NewServer(fb.router(t))
	defer srv.Close()

	a := newTestAdapter(t, time.Second)
	got, err := a.LoadDocument(context.Background(), srv.URL+"/load_doc", models.LoadDocumentRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedStatus)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	assert.Equal(t, "400 Bad Request", statusErr.Status)
	assert.Equal(t, `{"error":"boom"}`, statusErr.Body)
	assert.Empty(t, got.Body)
}

// ── Ask ──────────────────────────────────────────────────────────────────────

func TestAsk_ReturnsBodyVerbatim(t *testing.T) {
	fb := &fakeBackend{askStatus: http.StatusOK, askBody: "It's about X."}
	srv := httptest.NewServer(fb.router(t))
	defer srv.Close()

	a := newTestAdapter(t, time.Second)
	got, err := a.Ask(context.Background(), srv.URL+"/get_ai_response", models.QuestionRequest{Message: "What is the summary?"})

	require.NoError(t, err)
	assert.Equal(t, "It's about X.", got.Body)
	assert.Equal(t, "What is the summary?", fb.gotQuestion.Message)
}

func TestAsk_AcceptsAny2xx(t *testing.T) {
	fb := &fakeBackend{askStatus: http.StatusAccepted, askBody: "queued"}
	srv := httptest.NewServer(fb.router(t))
	defer srv.Close()

	a := newTestAdapter(t, time.Second)
	got, err := a.Ask(utils.WithAction(context.Background(), "chat"), srv.URL+"/get_ai_response", models.QuestionRequest{Message: "q"})

	require.NoError(t, err)
	assert.Equal(t, "queued", got.Body)
}

func TestAsk_NotFound(t *testing.T) {
	fb := &fakeBackend{}
	srv := httptest.NewServer(fb.router(t))
	defer srv.Close()

	a := newTestAdapter(t, time.Second)
	_, err := a.Ask(context.Background(), srv.URL+"/unknown", models.QuestionRequest{Message: "q"})

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
	assert.Equal(t, "unexpected response status: 404 Not Found", err.Error())
}

func TestAsk_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, time.Second)
	got, err := a.Ask(context.Background(), url, models.QuestionRequest{Message: "q"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
	assert.NotErrorIs(t, err, ErrUnexpectedStatus)
	assert.NotEmpty(t, got.RequestID)
}

func TestAsk_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	a := newTestAdapter(t, 50*time.Millisecond)
	_, err := a.Ask(context.Background(), srv.URL, models.QuestionRequest{Message: "q"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTransport)
}
