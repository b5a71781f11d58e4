package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

var summaryDays int

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Summarise recent telemetry per metric",
	Long: `Aggregates your stored records over the last N days and prints
count, mean, min and max for every observed metric.`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().IntVarP(&summaryDays, "days", "d", 7, "days of history to summarise")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	if insightsService == nil {
		return errors.New("insights service not configured")
	}

	report, err := insightsService.Summarize(context.Background(), currentUserID, summaryDays)
	if err != nil {
		return fmt.Errorf("summarising telemetry: %w", err)
	}

	cmd.Printf("Summary %s to %s (%d days)\n", report.Start, report.End, report.Days)

	kinds := make([]domain.Kind, 0, len(report.Kinds))
	for kind := range report.Kinds {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	empty := true
	for _, kind := range kinds {
		summary := report.Kinds[kind]
		if summary.Records == 0 {
			continue
		}
		empty = false

		cmd.Printf("\n[%s] %d records\n", kind, summary.Records)

		names := make([]string, 0, len(summary.Fields))
		for name := range summary.Fields {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			stats := summary.Fields[name]
			cmd.Printf("  %-24s mean %.1f  min %.1f  max %.1f  (n=%d)\n",
				name, stats.Mean, stats.Min, stats.Max, stats.Count)
		}
	}

	if empty {
		cmd.Println("\nNo records in this window. Run 'vita sync' first.")
	}
	return nil
}
