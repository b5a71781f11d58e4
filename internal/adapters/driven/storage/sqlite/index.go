package sqlite

import (
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/meridian-labs/vita-cli/internal/adapters/driven/storage/similarity"
	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
)

// semanticIndex implements driven.SemanticIndex on the shared SQLite
// store. Embeddings are stored as little-endian float32 blobs and
// searched with a brute-force cosine scan, which is adequate at the
// scale of daily telemetry (a few thousand chunks).
type semanticIndex struct {
	store    *Store
	embedder driven.EmbeddingService
}

var _ driven.SemanticIndex = (*semanticIndex)(nil)

// Add embeds the chunks and upserts them by ID. The content-addressed
// IDs make re-indexing the same window idempotent.
func (s *semanticIndex) Add(ctx context.Context, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	if s.embedder == nil {
		return domain.ErrEmbeddingUnavailable
	}

	texts := make([]string, len(chunks))
	for i := range chunks {
		texts[i] = chunks[i].Content
	}
	embeddings, err := s.embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed chunks: %w", err)
	}
	if len(embeddings) != len(chunks) {
		return fmt.Errorf("embedding count mismatch: %d chunks, %d vectors", len(chunks), len(embeddings))
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	now := time.Now().UTC()
	for i := range chunks {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chunks (id, content, kind, day, position, generation, embedding, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				content = excluded.content,
				kind = excluded.kind,
				day = excluded.day,
				position = excluded.position,
				generation = excluded.generation,
				embedding = excluded.embedding,
				updated_at = excluded.updated_at
		`, chunks[i].ID, chunks[i].Content, chunks[i].Kind.String(), chunks[i].Day,
			chunks[i].Position, chunks[i].Generation, float32SliceToBytes(embeddings[i]), now)
		if err != nil {
			return fmt.Errorf("upserting chunk %s: %w", chunks[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Query embeds the text and returns the k nearest chunks best-first.
func (s *semanticIndex) Query(ctx context.Context, text string, k int) ([]domain.ScoredChunk, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be >= 1, got %d", domain.ErrInvalidInput, k)
	}
	if s.embedder == nil {
		return nil, domain.ErrEmbeddingUnavailable
	}

	query, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, content, kind, day, position, generation, embedding FROM chunks
	`)
	if err != nil {
		return nil, fmt.Errorf("querying chunks: %w", err)
	}
	defer rows.Close()

	var hits []domain.ScoredChunk
	for rows.Next() {
		var chunk domain.Chunk
		var kind string
		var blob []byte
		if err := rows.Scan(&chunk.ID, &chunk.Content, &kind, &chunk.Day,
			&chunk.Position, &chunk.Generation, &blob); err != nil {
			return nil, fmt.Errorf("scanning chunk: %w", err)
		}
		chunk.Kind = domain.Kind(kind)
		hits = append(hits, domain.ScoredChunk{
			Chunk: chunk,
			Score: similarity.Cosine(query, bytesToFloat32Slice(blob)),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chunks: %w", err)
	}

	sort.Slice(hits, func(i, j int) bool {
		return hits[i].Score > hits[j].Score
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits, nil
}

// Clear removes all indexed chunks.
func (s *semanticIndex) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM chunks"); err != nil {
		return fmt.Errorf("clearing chunks: %w", err)
	}
	return nil
}

// Count returns the number of indexed chunks.
func (s *semanticIndex) Count(ctx context.Context) (int, error) {
	var count int
	row := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chunks")
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting chunks: %w", err)
	}
	return count, nil
}

// Close is a no-op; the shared store owns the database handle.
func (s *semanticIndex) Close() error {
	return nil
}

// float32SliceToBytes converts a []float32 to a little-endian byte slice.
func float32SliceToBytes(floats []float32) []byte {
	buf := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

// bytesToFloat32Slice converts a byte slice back to []float32.
func bytesToFloat32Slice(data []byte) []float32 {
	if len(data) == 0 {
		return nil
	}
	floats := make([]float32, len(data)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return floats
}
