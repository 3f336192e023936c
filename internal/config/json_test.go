package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"documents": {
			"dir": "/tmp/docs",
			"picker_start_dir": "/home/user"
		},
		"api": {
			"load_doc_url": "http://localhost:5001/load_doc",
			"question_url": "http://localhost:5001/get_ai_response",
			"request_timeout": "45s"
		},
		"log": {
			"file": "/var/log/ava.log",
			"level": "warn"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "/tmp/docs", cfg.Documents.Dir)
	assert.Equal(t, "/home/user", cfg.Documents.PickerStartDir)
	assert.Equal(t, "http://localhost:5001/load_doc", cfg.API.LoadDocURL)
	assert.Equal(t, "http://localhost:5001/get_ai_response", cfg.API.QuestionURL)
	assert.Equal(t, 45*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/var/log/ava.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": `), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": {"request_timeout": "soon"}}`), 0o600))

	_, err := parseJSON(p)

	require.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"api": {"request_timeout": 1000000000}}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.API.RequestTimeout)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
