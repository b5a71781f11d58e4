package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// TransportError reports a network or HTTP failure while reaching the
// telemetry API. It carries the kind and date window so the caller can
// decide whether to isolate or abort.
type TransportError struct {
	// Kind is the series being fetched.
	Kind domain.Kind

	// Start and End bound the requested window.
	Start time.Time
	End   time.Time

	// StatusCode is the HTTP status, 0 for network-level failures.
	StatusCode int

	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *TransportError) Error() string {
	window := fmt.Sprintf("%s..%s", e.Start.Format(domain.DayFormat), e.End.Format(domain.DayFormat))
	if e.StatusCode != 0 {
		return fmt.Sprintf("telemetry: fetch %s %s: status %d", e.Kind, window, e.StatusCode)
	}
	return fmt.Sprintf("telemetry: fetch %s %s: %v", e.Kind, window, e.Err)
}

// Unwrap returns the underlying cause.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransport reports whether err is a TransportError.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
