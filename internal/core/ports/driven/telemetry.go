package driven

import (
	"context"
	"time"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// TelemetrySource fetches normalised daily records from the wearable API.
// The concrete implementation lives in internal/telemetry.
type TelemetrySource interface {
	// FetchSeries fetches every record of the given kind within the
	// inclusive [start, end] date window, following pagination until the
	// API stops returning a continuation token. Records are returned in
	// response order. An empty window yields an empty slice and nil error.
	//
	// Transport failures are returned as *telemetry.TransportError;
	// rejected credentials wrap domain.ErrAuthInvalid.
	FetchSeries(ctx context.Context, kind domain.Kind, start, end time.Time) ([]domain.Record, error)

	// Close releases the pooled HTTP connection.
	Close() error
}
