// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - TelemetrySource: Fetches normalised records from the wearable API
//   - RecordStore: Record persistence, queryable by kind and date range
//   - Chunker: Splits records into retrievable chunks
//   - SemanticIndex: Stores chunk embeddings and serves similarity queries
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - EmbeddingService: Generates vector embeddings. Without it, the
//     semantic index cannot be populated or queried.
//   - LLMService: Generation capability. Without it, `vita ask` is disabled
//     while sync, summaries, and insights still work.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or telemetry package
package driven
