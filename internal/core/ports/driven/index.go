package driven

import (
	"context"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// SemanticIndex stores chunk embeddings and serves nearest-neighbour
// queries. The index is single-writer: at most one sync may populate it
// at a time, enforced by the orchestrator.
type SemanticIndex interface {
	// Add embeds each chunk's content and makes it searchable, upserting
	// by chunk ID. Calling with an empty slice is a no-op. Any embedding
	// or storage failure is returned; a partially indexed generation
	// breaks the idempotency invariant, so callers treat it as fatal.
	Add(ctx context.Context, chunks []domain.Chunk) error

	// Query returns the k chunks nearest to the query text, annotated
	// with similarity scores and ordered best-first. k must be >= 1.
	Query(ctx context.Context, text string, k int) ([]domain.ScoredChunk, error)

	// Clear removes all indexed chunks, leaving the index empty and
	// ready for re-population.
	Clear(ctx context.Context) error

	// Count returns the number of indexed chunks.
	Count(ctx context.Context) (int, error)

	// Close releases resources.
	Close() error
}
