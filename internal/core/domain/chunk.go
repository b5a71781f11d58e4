package domain

// Chunk represents a retrievable unit of telemetry text derived from a
// record. Records are rendered to text and split into chunks for granular
// semantic search.
type Chunk struct {
	// ID is the content-addressed identifier, stable across syncs for the
	// same (kind, day, window) so that re-indexing upserts in place.
	ID string

	// Content is the text content of this chunk.
	Content string

	// Kind is the telemetry series the chunk was derived from.
	Kind Kind

	// Day is the calendar date of the source record, in YYYY-MM-DD form.
	Day string

	// Position is the window index within the rendered record.
	Position int

	// Generation identifies the sync run that produced this chunk.
	Generation string
}

// ScoredChunk is a chunk annotated with its similarity to a query.
type ScoredChunk struct {
	// Chunk is the matched chunk.
	Chunk Chunk

	// Score is the cosine similarity to the query embedding (higher is
	// more similar).
	Score float64
}
