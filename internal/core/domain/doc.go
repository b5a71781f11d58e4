// Package domain defines the core business entities for Vita.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One day's normalised reading for one telemetry kind
//   - Chunk: A retrievable unit derived from records
//   - Insight: A threshold-triggered finding
//   - SyncReport: The outcome of one fetch/persist/index run
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
