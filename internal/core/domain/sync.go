package domain

// KindReport counts the outcome of one kind within a sync run.
type KindReport struct {
	// Fetched is the number of records returned by the telemetry API.
	Fetched int

	// Persisted is the number of records written to the record store.
	Persisted int

	// Indexed is the number of chunks derived for the semantic index.
	Indexed int

	// Error holds the fetch failure for this kind, empty on success.
	// Persistence failures are counted, not recorded here, because they
	// do not abort the kind.
	Error string
}

// SyncReport summarises one end-to-end sync run.
type SyncReport struct {
	// Generation identifies the sync run.
	Generation string

	// Days is the requested window length.
	Days int

	// Kinds holds the per-kind outcome.
	Kinds map[Kind]KindReport

	// PersistErrors counts individual record writes that failed.
	PersistErrors int
}

// TotalFetched sums fetched records across kinds.
func (r *SyncReport) TotalFetched() int {
	total := 0
	for _, k := range r.Kinds {
		total += k.Fetched
	}
	return total
}

// TotalIndexed sums indexed chunks across kinds.
func (r *SyncReport) TotalIndexed() int {
	total := 0
	for _, k := range r.Kinds {
		total += k.Indexed
	}
	return total
}

// FailedKinds returns the kinds whose fetch failed, in no particular order.
func (r *SyncReport) FailedKinds() []Kind {
	var failed []Kind
	for kind, rep := range r.Kinds {
		if rep.Error != "" {
			failed = append(failed, kind)
		}
	}
	return failed
}

// Answer is the result of a retrieval-augmented question.
type Answer struct {
	// Text is the generated answer.
	Text string

	// Context holds the retrieved chunks the answer was grounded on,
	// ordered best-first.
	Context []ScoredChunk
}
