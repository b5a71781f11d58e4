package driving

import (
	"context"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// SyncOrchestrator coordinates one fetch -> persist -> chunk -> index run.
type SyncOrchestrator interface {
	// Sync fetches the last `days` of every configured kind, persists the
	// normalised records, and indexes the derived chunks. A fetch failure
	// for one kind is isolated; the run continues with the others and the
	// report records the failure. An index failure fails the whole run.
	Sync(ctx context.Context, days int) (*domain.SyncReport, error)

	// ClearAndSync empties the semantic index before syncing. Record
	// store contents are left alone.
	ClearAndSync(ctx context.Context, days int) (*domain.SyncReport, error)
}
