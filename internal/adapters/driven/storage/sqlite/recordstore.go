package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
)

// recordStore implements driven.RecordStore.
type recordStore struct {
	store *Store
}

var _ driven.RecordStore = (*recordStore)(nil)

// Insert stores a record, replacing any previous row for the same
// (user, kind, day). Fields are serialised as a JSON object of scalars.
func (s *recordStore) Insert(ctx context.Context, record domain.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	fieldsJSON, err := json.Marshal(record.Fields)
	if err != nil {
		return fmt.Errorf("marshalling fields: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO records (user_id, kind, day, fields, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, kind, day) DO UPDATE SET
			fields = excluded.fields,
			updated_at = excluded.updated_at
	`, record.UserID, record.Kind.String(), record.DayString(), string(fieldsJSON), time.Now().UTC())

	if err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}
	return nil
}

// QueryRange returns the user's records of the kind within the
// inclusive [start, end] window, ordered by day ascending.
func (s *recordStore) QueryRange(ctx context.Context, userID string, kind domain.Kind, start, end time.Time) ([]domain.Record, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT user_id, kind, day, fields
		FROM records
		WHERE user_id = ? AND kind = ? AND day >= ? AND day <= ?
		ORDER BY day ASC
	`, userID, kind.String(), start.Format(domain.DayFormat), end.Format(domain.DayFormat))
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	var records []domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}
	return records, nil
}

// Close is a no-op; the shared store owns the database handle.
func (s *recordStore) Close() error {
	return nil
}

// scanRecord scans a single record row.
func scanRecord(rows *sql.Rows) (domain.Record, error) {
	var record domain.Record
	var kind, day, fieldsJSON string

	if err := rows.Scan(&record.UserID, &kind, &day, &fieldsJSON); err != nil {
		return domain.Record{}, fmt.Errorf("scanning record: %w", err)
	}

	parsed, err := time.Parse(domain.DayFormat, day)
	if err != nil {
		return domain.Record{}, fmt.Errorf("parsing stored day %q: %w", day, err)
	}
	record.Kind = domain.Kind(kind)
	record.Day = parsed

	if err := json.Unmarshal([]byte(fieldsJSON), &record.Fields); err != nil {
		return domain.Record{}, fmt.Errorf("unmarshalling fields: %w", err)
	}
	return record, nil
}
