package utils

import (
	"github.com/MKhiriev/ava-cli/internal/logger"
	"github.com/google/uuid"
)

// RequestIDs produces the X-Request-ID values attached to backend calls.
// Time-ordered v7 ids are used so requests sort by creation time in both
// logs; if the clock source fails a random v4 id is returned instead.
type RequestIDs struct {
	newV7  func() (uuid.UUID, error)
	logger *logger.Logger
}

func NewRequestIDs(logger *logger.Logger) *RequestIDs {
	return &RequestIDs{newV7: uuid.NewV7, logger: logger}
}

// Next returns a fresh request id.
func (g *RequestIDs) Next() string {
	id, err := g.newV7()
	if err != nil {
		g.logger.Warn().Err(err).Msg("v7 request id unavailable, using v4")
		return uuid.NewString()
	}

	return id.String()
}
