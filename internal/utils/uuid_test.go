package utils

import (
	"bytes"
	"errors"
	"testing"

	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDs_Version7(t *testing.T) {
	id := NewRequestIDs(logger.Nop()).Next()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestRequestIDs_Unique(t *testing.T) {
	g := NewRequestIDs(logger.Nop())
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		id := g.Next()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}

func TestRequestIDs_FallsBackToV4(t *testing.T) {
	var buf bytes.Buffer
	g := NewRequestIDs(logger.New(&buf, "test"))
	g.newV7 = func() (uuid.UUID, error) {
		return uuid.Nil, errors.New("clock unavailable")
	}

	parsed, err := uuid.Parse(g.Next())

	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.Contains(t, buf.String(), "clock unavailable")
}
