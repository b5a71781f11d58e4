package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driving"
	"github.com/meridian-labs/vita-cli/internal/logger"
)

// Ensure SyncOrchestrator implements the interface.
var _ driving.SyncOrchestrator = (*SyncOrchestrator)(nil)

// SyncOrchestrator coordinates telemetry synchronisation: fetch each
// kind, persist the records, and index the derived chunks. Fetch and
// persistence failures are isolated per kind and per record; an index
// failure fails the run, since a partially indexed generation would
// break idempotent re-sync.
type SyncOrchestrator struct {
	source      driven.TelemetrySource
	recordStore driven.RecordStore
	chunker     driven.Chunker
	index       driven.SemanticIndex
	kinds       []domain.Kind

	// The index is single-writer; mu serialises sync runs.
	mu sync.Mutex
}

// NewSyncOrchestrator creates a sync orchestrator. The index may be nil,
// in which case records are still fetched and persisted but nothing is
// indexed.
func NewSyncOrchestrator(
	source driven.TelemetrySource,
	recordStore driven.RecordStore,
	chunker driven.Chunker,
	index driven.SemanticIndex,
) *SyncOrchestrator {
	return &SyncOrchestrator{
		source:      source,
		recordStore: recordStore,
		chunker:     chunker,
		index:       index,
		kinds:       domain.AllKinds(),
	}
}

// Sync fetches the last `days` of every configured kind, persists the
// records, and indexes the derived chunks. The returned report is
// populated even when the run ends in an index failure.
func (o *SyncOrchestrator) Sync(ctx context.Context, days int) (*domain.SyncReport, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: sync window must be positive, got %d", domain.ErrInvalidInput, days)
	}

	if !o.mu.TryLock() {
		return nil, domain.ErrSyncInProgress
	}
	defer o.mu.Unlock()

	report := &domain.SyncReport{
		Generation: uuid.NewString(),
		Days:       days,
		Kinds:      make(map[domain.Kind]domain.KindReport),
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	logger.Info("Starting sync generation %s (%d days)", report.Generation, days)

	var pending []domain.Chunk
	for _, kind := range o.kinds {
		kindReport, failedWrites, chunks, err := o.syncKind(ctx, kind, start, end, report.Generation)
		if err != nil {
			// A rejected credential dooms every kind; stop here.
			if errors.Is(err, domain.ErrAuthInvalid) {
				return report, err
			}
			logger.Warn("Fetch %s failed: %v", kind, err)
			kindReport.Error = err.Error()
			report.Kinds[kind] = kindReport
			continue
		}
		report.PersistErrors += failedWrites
		report.Kinds[kind] = kindReport
		pending = append(pending, chunks...)
	}

	if o.index != nil {
		if err := o.index.Add(ctx, pending); err != nil {
			return report, fmt.Errorf("index chunks: %w", err)
		}
	}

	logger.Info("Sync complete: %d records fetched, %d chunks indexed, %d kinds failed",
		report.TotalFetched(), report.TotalIndexed(), len(report.FailedKinds()))
	return report, nil
}

// ClearAndSync empties the semantic index, then syncs. The record store
// is left alone; inserts replace by natural key anyway.
func (o *SyncOrchestrator) ClearAndSync(ctx context.Context, days int) (*domain.SyncReport, error) {
	if o.index != nil {
		if err := o.index.Clear(ctx); err != nil {
			return nil, fmt.Errorf("clear index: %w", err)
		}
		logger.Info("Semantic index cleared")
	}
	return o.Sync(ctx, days)
}

// syncKind fetches, persists, and chunks one kind. Persistence failures
// are logged and counted; they never abort the kind, and they do not
// stop the fetched records from being chunked.
func (o *SyncOrchestrator) syncKind(
	ctx context.Context,
	kind domain.Kind,
	start, end time.Time,
	generation string,
) (domain.KindReport, int, []domain.Chunk, error) {
	records, err := o.source.FetchSeries(ctx, kind, start, end)
	if err != nil {
		return domain.KindReport{}, 0, nil, err
	}

	report := domain.KindReport{Fetched: len(records)}
	failedWrites := 0
	for _, record := range records {
		if err := o.recordStore.Insert(ctx, record); err != nil {
			logger.Warn("Persist %s %s failed: %v", kind, record.DayString(), err)
			failedWrites++
			continue
		}
		report.Persisted++
	}

	chunks := o.chunker.ChunkRecords(records, kind, generation)
	report.Indexed = len(chunks)
	return report, failedWrites, chunks, nil
}
