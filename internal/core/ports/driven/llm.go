package driven

import "context"

// LLMService is the generation capability used to answer questions over
// retrieved context. This is an optional service - when nil, question
// answering is disabled while sync and insights keep working.
//
// Implementations may include:
//   - OpenAI (gpt-4o-mini, gpt-4o)
//   - Compatible inference servers via a custom base URL
type LLMService interface {
	// Generate produces a text completion from a prompt.
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight
	// test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// GenerateOptions configures text generation behaviour.
type GenerateOptions struct {
	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int

	// Temperature controls randomness (0.0 = deterministic, 1.0 = creative).
	Temperature float64
}
