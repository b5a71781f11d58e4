package driving

import (
	"context"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// AskService answers natural-language questions over indexed telemetry.
type AskService interface {
	// Ask retrieves the most relevant chunks for the question, assembles
	// a context string, and hands it to the generation capability.
	// With nothing indexed it returns a fixed "no data" answer without
	// calling the model.
	Ask(ctx context.Context, question string) (*domain.Answer, error)
}
