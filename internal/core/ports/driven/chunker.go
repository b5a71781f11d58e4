package driven

import (
	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// Chunker converts normalised records into bounded, retrievable chunks.
type Chunker interface {
	// ChunkRecords renders each record deterministically and splits the
	// text into overlapping windows. Chunk IDs are content-addressed from
	// (kind, day, window index) so that re-chunking the same data yields
	// the same IDs; the generation marker is carried as metadata only.
	ChunkRecords(records []domain.Record, kind domain.Kind, generation string) []domain.Chunk
}
