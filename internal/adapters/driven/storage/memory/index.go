package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/meridian-labs/vita-cli/internal/adapters/driven/storage/similarity"
	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
)

// Ensure SemanticIndex implements the interface.
var _ driven.SemanticIndex = (*SemanticIndex)(nil)

// SemanticIndex is an in-memory implementation of driven.SemanticIndex
// using brute-force cosine similarity.
type SemanticIndex struct {
	mu       sync.RWMutex
	embedder driven.EmbeddingService
	entries  map[string]indexEntry
}

// indexEntry pairs a chunk with its embedding.
type indexEntry struct {
	chunk     domain.Chunk
	embedding []float32
}

// NewSemanticIndex creates a new in-memory semantic index.
func NewSemanticIndex(embedder driven.EmbeddingService) *SemanticIndex {
	return &SemanticIndex{
		embedder: embedder,
		entries:  make(map[string]indexEntry),
	}
}

// Add embeds the chunks and upserts them by ID.
func (s *SemanticIndex) Add(ctx context.Context, chunks []domain.Chunk) error {
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

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range chunks {
		s.entries[chunks[i].ID] = indexEntry{chunk: chunks[i], embedding: embeddings[i]}
	}
	return nil
}

// Query returns the k nearest chunks by cosine similarity, best-first.
func (s *SemanticIndex) Query(ctx context.Context, text string, k int) ([]domain.ScoredChunk, error) {
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

	s.mu.RLock()
	defer s.mu.RUnlock()

	hits := make([]domain.ScoredChunk, 0, len(s.entries))
	for _, entry := range s.entries {
		hits = append(hits, domain.ScoredChunk{
			Chunk: entry.chunk,
			Score: similarity.Cosine(query, entry.embedding),
		})
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
func (s *SemanticIndex) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make(map[string]indexEntry)
	return nil
}

// Count returns the number of indexed chunks.
func (s *SemanticIndex) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries), nil
}

// Close is a no-op for the in-memory index.
func (s *SemanticIndex) Close() error {
	return nil
}
