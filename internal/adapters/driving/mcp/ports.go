package mcp

import (
	"github.com/meridian-labs/vita-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Insights provides summaries and threshold findings.
	Insights driving.InsightsService

	// Ask answers natural-language questions over indexed telemetry.
	Ask driving.AskService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Insights == nil {
		return ErrMissingInsightsService
	}
	// Ask is optional; the tool reports unavailability at call time
	return nil
}
