package domain

import (
	"fmt"
	"sort"
	"time"
)

// DayFormat is the calendar date layout used throughout the pipeline.
const DayFormat = "2006-01-02"

// Record represents one day's normalised reading for one telemetry kind.
// It is the canonical representation after field-alias resolution: every
// value in Fields is a concrete scalar, never a nested payload. A field
// that could not be resolved upstream is simply absent from the map.
type Record struct {
	// UserID is the opaque owner identifier.
	UserID string

	// Kind is the telemetry series this record belongs to.
	Kind Kind

	// Day is the calendar date of the reading. Together with UserID and
	// Kind it forms the natural key.
	Day time.Time

	// Fields maps metric names to resolved scalar values.
	Fields map[string]float64
}

// DayString returns the record's day in YYYY-MM-DD form.
func (r Record) DayString() string {
	return r.Day.Format(DayFormat)
}

// Field returns the named metric and whether it was observed.
func (r Record) Field(name string) (float64, bool) {
	v, ok := r.Fields[name]
	return v, ok
}

// FieldNames returns the observed metric names in sorted order.
// Sorting keeps downstream rendering deterministic.
func (r Record) FieldNames() []string {
	names := make([]string, 0, len(r.Fields))
	for name := range r.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks the record invariants.
func (r Record) Validate() error {
	if r.UserID == "" {
		return fmt.Errorf("%w: record user ID is empty", ErrInvalidInput)
	}
	if !r.Kind.IsValid() {
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidInput, r.Kind)
	}
	if r.Day.IsZero() {
		return fmt.Errorf("%w: record day is zero", ErrInvalidInput)
	}
	return nil
}
