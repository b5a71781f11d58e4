package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driving"
	"github.com/meridian-labs/vita-cli/internal/logger"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// DefaultTopK is the retrieval fan-out when none is configured.
const DefaultTopK = 6

// noDataAnswer is returned when retrieval finds nothing, without
// involving the generation model.
const noDataAnswer = "I don't have enough data to answer your question. Please sync some telemetry data first."

// askPrompt frames the retrieved context for the generation model.
const askPrompt = `You are a helpful assistant answering questions about the user's wearable health data.
Use the provided context to answer the question. If uncertain, say you don't know.
Be conversational and helpful.

Question: %s

Context:
%s

Answer:`

// AskService answers natural-language questions over the semantic index.
type AskService struct {
	index driven.SemanticIndex
	llm   driven.LLMService
	topK  int
}

// NewAskService creates an ask service. topK falls back to DefaultTopK
// when not positive.
func NewAskService(index driven.SemanticIndex, llm driven.LLMService, topK int) *AskService {
	if topK <= 0 {
		topK = DefaultTopK
	}
	return &AskService{
		index: index,
		llm:   llm,
		topK:  topK,
	}
}

// Ask retrieves the topK most similar chunks, assembles the context
// string, and hands it to the generation capability.
func (s *AskService) Ask(ctx context.Context, question string) (*domain.Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("%w: question is empty", domain.ErrInvalidInput)
	}
	if s.index == nil {
		return nil, domain.ErrIndexUnavailable
	}
	if s.llm == nil {
		return nil, domain.ErrLLMUnavailable
	}

	hits, err := s.index.Query(ctx, question, s.topK)
	if err != nil {
		return nil, fmt.Errorf("query index: %w", err)
	}
	if len(hits) == 0 {
		return &domain.Answer{Text: noDataAnswer}, nil
	}

	logger.Debug("Retrieved %d chunks for question", len(hits))

	text, err := s.llm.Generate(ctx, fmt.Sprintf(askPrompt, question, AssembleContext(hits)), driven.GenerateOptions{
		Temperature: 0.2,
	})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &domain.Answer{
		Text:    text,
		Context: hits,
	}, nil
}

// AssembleContext renders retrieved chunks as "[day, kind]" headed
// blocks, ordered by similarity rank.
func AssembleContext(hits []domain.ScoredChunk) string {
	blocks := make([]string, len(hits))
	for i, hit := range hits {
		blocks[i] = fmt.Sprintf("[%s, %s]\n%s", hit.Chunk.Day, hit.Chunk.Kind, hit.Chunk.Content)
	}
	return strings.Join(blocks, "\n\n")
}
