// Package memory provides in-memory implementations of the storage
// ports, used in tests and as a fallback when no data directory is
// writable.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
)

// Ensure RecordStore implements the interface.
var _ driven.RecordStore = (*RecordStore)(nil)

// RecordStore is an in-memory implementation of driven.RecordStore.
// Inserting the same (user, kind, day) replaces the previous record.
type RecordStore struct {
	mu      sync.RWMutex
	records map[string]domain.Record
}

// NewRecordStore creates a new in-memory record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{
		records: make(map[string]domain.Record),
	}
}

// Insert stores or replaces a record by its natural key.
func (s *RecordStore) Insert(_ context.Context, record domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[recordKey(record.UserID, record.Kind, record.DayString())] = record
	return nil
}

// QueryRange returns the user's records of the kind within [start, end],
// ordered by day ascending. Days compare as YYYY-MM-DD strings so the
// window bounds are calendar dates regardless of time zone.
func (s *RecordStore) QueryRange(_ context.Context, userID string, kind domain.Kind, start, end time.Time) ([]domain.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	startDay := start.Format(domain.DayFormat)
	endDay := end.Format(domain.DayFormat)

	var result []domain.Record
	for _, record := range s.records {
		if record.UserID != userID || record.Kind != kind {
			continue
		}
		day := record.DayString()
		if day < startDay || day > endDay {
			continue
		}
		result = append(result, record)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Day.Before(result[j].Day)
	})
	return result, nil
}

// Close is a no-op for the in-memory store.
func (s *RecordStore) Close() error {
	return nil
}

func recordKey(userID string, kind domain.Kind, day string) string {
	return fmt.Sprintf("%s|%s|%s", userID, kind, day)
}
