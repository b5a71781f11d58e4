package driven

import (
	"context"
	"time"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// RecordStore provides durable persistence of normalised telemetry records.
type RecordStore interface {
	// Insert stores a record. Inserting the same (user, kind, day) again
	// replaces the previous row, so repeated syncs do not duplicate data.
	Insert(ctx context.Context, record domain.Record) error

	// QueryRange returns the user's records of the given kind within the
	// inclusive [start, end] window, ordered by day ascending. A window
	// with no data yields an empty slice and nil error.
	QueryRange(ctx context.Context, userID string, kind domain.Kind, start, end time.Time) ([]domain.Record, error)

	// Close releases resources.
	Close() error
}
