package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show rule-based findings from the last week",
	Long: `Evaluates your last 7 days of telemetry against sleep, activity
and readiness thresholds and reports anything noteworthy.`,
	RunE: runInsights,
}

func init() {
	rootCmd.AddCommand(insightsCmd)
}

func runInsights(cmd *cobra.Command, _ []string) error {
	if insightsService == nil {
		return errors.New("insights service not configured")
	}

	insights, err := insightsService.DeriveInsights(context.Background(), currentUserID)
	if err != nil {
		return fmt.Errorf("deriving insights: %w", err)
	}

	if len(insights) == 0 {
		cmd.Println("No insights for the last 7 days. Either everything looks normal, or there is no synced data yet.")
		return nil
	}

	for _, insight := range insights {
		cmd.Printf("%s %s\n", severityMarker(insight.Severity), insight.Message)
		if insight.Recommendation != "" {
			cmd.Printf("    %s\n", insight.Recommendation)
		}
	}
	return nil
}

// severityMarker maps a severity to its display prefix.
func severityMarker(severity domain.Severity) string {
	switch severity {
	case domain.SeverityWarning:
		return "[!]"
	case domain.SeverityPositive:
		return "[+]"
	default:
		return "[i]"
	}
}
