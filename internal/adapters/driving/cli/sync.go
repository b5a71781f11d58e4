package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/meridian-labs/vita-cli/internal/adapters/driven/config/file"
	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// defaultSyncDays is the fetch window when neither flag nor config set one.
const defaultSyncDays = 120

var (
	syncDays  int
	syncReset bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch and index telemetry from your wearable",
	Long: `Fetches the last N days of sleep, readiness, activity, SpO2 and
heart rate data, stores the records locally, and indexes them for
semantic search. Re-running sync over the same window is safe; records
and chunks are replaced in place.

Use --reset to clear the semantic index before syncing.`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().IntVarP(&syncDays, "days", "d", 0, "days of history to fetch (default from config, else 120)")
	syncCmd.Flags().BoolVar(&syncReset, "reset", false, "clear the semantic index before syncing")
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, _ []string) error {
	if syncOrchestrator == nil {
		return errors.New("telemetry is not configured: run 'vita config set telemetry.access_token <token>' first")
	}

	days := syncDays
	if days <= 0 && configStore != nil {
		days = configStore.GetInt(file.KeySyncDays)
	}
	if days <= 0 {
		days = defaultSyncDays
	}

	ctx := context.Background()
	cmd.Printf("Syncing last %d days...\n", days)

	var report *domain.SyncReport
	var err error
	if syncReset {
		report, err = syncOrchestrator.ClearAndSync(ctx, days)
	} else {
		report, err = syncOrchestrator.Sync(ctx, days)
	}
	if report != nil {
		printSyncReport(cmd, report)
	}
	if err != nil {
		if errors.Is(err, domain.ErrAuthInvalid) {
			return errors.New("access token was rejected: check 'vita config set telemetry.access_token <token>'")
		}
		if errors.Is(err, domain.ErrSyncInProgress) {
			return errors.New("another sync is already running")
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	if failed := report.FailedKinds(); len(failed) > 0 {
		cmd.Printf("Completed with %d failed kinds.\n", len(failed))
	} else {
		cmd.Println("Sync complete.")
	}
	return nil
}

// printSyncReport renders the per-kind outcome table.
func printSyncReport(cmd *cobra.Command, report *domain.SyncReport) {
	kinds := make([]domain.Kind, 0, len(report.Kinds))
	for kind := range report.Kinds {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	for _, kind := range kinds {
		kr := report.Kinds[kind]
		if kr.Error != "" {
			cmd.Printf("  %-12s FAILED: %s\n", kind, kr.Error)
			continue
		}
		cmd.Printf("  %-12s %d fetched, %d persisted, %d chunks\n",
			kind, kr.Fetched, kr.Persisted, kr.Indexed)
	}
	if report.PersistErrors > 0 {
		cmd.Printf("  %d records failed to persist (see log)\n", report.PersistErrors)
	}
}
