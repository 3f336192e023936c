package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(b), &entry))
	return entry
}

// TestNew_RoleField verifies that every log entry contains the "role" field.
func TestNew_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "test-role")

	l.Info().Msg("hello")

	assert.Equal(t, "test-role", decodeEntry(t, buf.Bytes())["role"])
}

// TestNew_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNew_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "ts-role")

	l.Info().Msg("ts check")

	_, hasTime := decodeEntry(t, buf.Bytes())["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_CallerFieldName verifies that the caller field is named "func".
func TestNew_CallerFieldName(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "caller-role")

	l.Info().Msg("caller")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	_, hasFunc := decodeEntry(t, buf.Bytes())["func"]
	assert.True(t, hasFunc)
}

func TestNewClientLogger_WritesToFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("client", p, "info")

	l.Info().Msg("to file")

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "to file", decodeEntry(t, data)["message"])
}

func TestNewClientLogger_AppliesLevel(t *testing.T) {
	NewClientLogger("client", filepath.Join(t.TempDir(), "client.log"), "warn")
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	NewClientLogger("client", filepath.Join(t.TempDir(), "client.log"), "")
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewClientLogger_FallsBackWhenFileUnavailable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "missing-dir", "client.log")
	l := NewClientLogger("client", p, "debug")
	require.NotNil(t, l)

	_, err := os.Stat(p)
	assert.True(t, os.IsNotExist(err))
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "client").WithComponent("adapter")

	l.Info().Msg("tagged")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "adapter", entry["component"])
	assert.Equal(t, "client", entry["role"])
}
