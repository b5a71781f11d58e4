package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSyncInProgress indicates a sync is already running against the
	// index. The index is single-writer; concurrent syncs are rejected.
	ErrSyncInProgress = errors.New("sync in progress")

	// Authentication errors.

	// ErrAuthRequired indicates no telemetry credential is configured.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the telemetry credential was rejected.
	// This is fatal for a sync: no kind can be fetched without it.
	ErrAuthInvalid = errors.New("authentication invalid")

	// Capability errors.

	// ErrLLMUnavailable indicates the generation service is not
	// configured. Question answering is disabled without it.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrEmbeddingUnavailable indicates the embedding service is not
	// configured. Semantic indexing and retrieval are disabled.
	ErrEmbeddingUnavailable = errors.New("embedding service unavailable")

	// ErrIndexUnavailable indicates the semantic index is not configured.
	ErrIndexUnavailable = errors.New("semantic index unavailable")
)
