// Package mcp provides an MCP (Model Context Protocol) server adapter for Vita.
// It enables AI assistants like Claude to query the user's local health data.
package mcp

import "errors"

// ErrMissingInsightsService is returned when the insights service is not provided.
var ErrMissingInsightsService = errors.New("mcp: insights service is required")
