package telemetry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

func TestTransportError_Message(t *testing.T) {
	start := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC)

	withStatus := &TransportError{Kind: domain.KindSleep, Start: start, End: end, StatusCode: 503}
	assert.Equal(t, "telemetry: fetch sleep 2026-08-20..2026-08-27: status 503", withStatus.Error())

	withCause := &TransportError{Kind: domain.KindSleep, Start: start, End: end, Err: errors.New("connection refused")}
	assert.Contains(t, withCause.Error(), "connection refused")
}

func TestTransportError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &TransportError{Err: cause}

	assert.ErrorIs(t, err, cause)
}

func TestIsTransport(t *testing.T) {
	err := &TransportError{Kind: domain.KindSleep}

	assert.True(t, IsTransport(err))
	assert.True(t, IsTransport(errors.Join(errors.New("wrapped"), err)))
	assert.False(t, IsTransport(errors.New("plain")))
	assert.False(t, IsTransport(nil))
}
