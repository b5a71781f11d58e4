package domain

// Severity classifies how an insight should be read.
type Severity string

// Insight severities.
const (
	SeverityPositive Severity = "positive"
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
)

// Insight is a threshold-triggered finding derived from aggregated
// records. Insights are computed on demand and never persisted.
type Insight struct {
	// Type is the telemetry area the insight belongs to (sleep, activity,
	// readiness).
	Type Kind

	// Category names the rule group, e.g. "duration" or "efficiency".
	Category string

	// Metric is the aggregated metric the rule evaluated.
	Metric string

	// Value is the computed aggregate that triggered the rule.
	Value float64

	// Severity classifies the finding.
	Severity Severity

	// Message is the human-readable finding.
	Message string

	// Recommendation is optional follow-up advice.
	Recommendation string
}

// FieldStats summarises one metric over a window.
type FieldStats struct {
	// Count is the number of days the metric was observed.
	Count int

	// Mean is the average over observed values.
	Mean float64

	// Min is the smallest observed value.
	Min float64

	// Max is the largest observed value.
	Max float64
}

// KindSummary aggregates one telemetry kind over a window.
type KindSummary struct {
	// Records is the number of records in the window.
	Records int

	// Fields holds per-metric statistics. Metrics with zero observations
	// are omitted rather than reported as zero.
	Fields map[string]FieldStats
}

// SummaryReport is the result of aggregating a user's records over a
// day window.
type SummaryReport struct {
	// UserID is the owner of the summarised records.
	UserID string

	// Days is the requested window length.
	Days int

	// Start and End bound the window (inclusive), in YYYY-MM-DD form.
	Start string
	End   string

	// Kinds holds per-kind aggregates. Every configured kind is present,
	// with Records set to 0 when the window holds no data.
	Kinds map[Kind]KindSummary
}
