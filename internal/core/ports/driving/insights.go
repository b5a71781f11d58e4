package driving

import (
	"context"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// InsightsService derives aggregates and findings from persisted records.
// It runs independently of the sync path.
type InsightsService interface {
	// Summarize aggregates the user's records over the last `days`:
	// per-kind counts plus count/mean/min/max for every observed metric.
	Summarize(ctx context.Context, userID string, days int) (*domain.SummaryReport, error)

	// DeriveInsights evaluates the threshold rules over a fixed 7-day
	// window. Rules are independent and non-exclusive; several may fire.
	DeriveInsights(ctx context.Context, userID string) ([]domain.Insight, error)
}
