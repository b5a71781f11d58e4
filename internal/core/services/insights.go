package services

import (
	"context"
	"fmt"
	"time"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driving"
)

// Ensure InsightsService implements the interface.
var _ driving.InsightsService = (*InsightsService)(nil)

// insightWindowDays is the fixed window for threshold insights.
const insightWindowDays = 7

// secondsPerHour converts upstream sleep durations to hours.
const secondsPerHour = 3600

// InsightsService derives aggregates and threshold findings from
// persisted records. It reads the record store only; it never touches
// the sync path or the semantic index.
type InsightsService struct {
	recordStore driven.RecordStore
	kinds       []domain.Kind
}

// NewInsightsService creates an insights service.
func NewInsightsService(recordStore driven.RecordStore) *InsightsService {
	return &InsightsService{
		recordStore: recordStore,
		kinds:       domain.AllKinds(),
	}
}

// Summarize aggregates the user's records over the last `days`. Metrics
// with zero observations are omitted from the per-kind field stats
// rather than reported as zero.
func (s *InsightsService) Summarize(ctx context.Context, userID string, days int) (*domain.SummaryReport, error) {
	if days <= 0 {
		return nil, fmt.Errorf("%w: summary window must be positive, got %d", domain.ErrInvalidInput, days)
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	report := &domain.SummaryReport{
		UserID: userID,
		Days:   days,
		Start:  start.Format(domain.DayFormat),
		End:    end.Format(domain.DayFormat),
		Kinds:  make(map[domain.Kind]domain.KindSummary),
	}

	for _, kind := range s.kinds {
		records, err := s.recordStore.QueryRange(ctx, userID, kind, start, end)
		if err != nil {
			return nil, fmt.Errorf("query %s records: %w", kind, err)
		}
		report.Kinds[kind] = summariseKind(records)
	}
	return report, nil
}

// summariseKind computes per-field count/mean/min/max over present
// values only.
func summariseKind(records []domain.Record) domain.KindSummary {
	fields := make(map[string]domain.FieldStats)
	for _, record := range records {
		for name, value := range record.Fields {
			stats, seen := fields[name]
			if !seen {
				fields[name] = domain.FieldStats{Count: 1, Mean: value, Min: value, Max: value}
				continue
			}
			stats.Mean = (stats.Mean*float64(stats.Count) + value) / float64(stats.Count+1)
			stats.Count++
			if value < stats.Min {
				stats.Min = value
			}
			if value > stats.Max {
				stats.Max = value
			}
			fields[name] = stats
		}
	}
	return domain.KindSummary{Records: len(records), Fields: fields}
}

// DeriveInsights evaluates the fixed threshold rules over the last 7
// days. Rules are independent and non-exclusive; each produces at most
// one insight.
func (s *InsightsService) DeriveInsights(ctx context.Context, userID string) ([]domain.Insight, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -insightWindowDays)

	var insights []domain.Insight
	for _, derive := range []func(context.Context, string, time.Time, time.Time) ([]domain.Insight, error){
		s.sleepInsights,
		s.activityInsights,
		s.readinessInsights,
	} {
		found, err := derive(ctx, userID, start, end)
		if err != nil {
			return nil, err
		}
		insights = append(insights, found...)
	}
	return insights, nil
}

func (s *InsightsService) sleepInsights(ctx context.Context, userID string, start, end time.Time) ([]domain.Insight, error) {
	records, err := s.recordStore.QueryRange(ctx, userID, domain.KindSleep, start, end)
	if err != nil {
		return nil, fmt.Errorf("query sleep records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var insights []domain.Insight

	if seconds, ok := meanField(records, "total_sleep_duration"); ok {
		hours := seconds / secondsPerHour
		switch {
		case hours < 7:
			insights = append(insights, domain.Insight{
				Type:           domain.KindSleep,
				Category:       "duration",
				Metric:         "sleep_duration",
				Value:          hours,
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("Average sleep duration is %.1f hours, consider getting more sleep", hours),
				Recommendation: "Aim for 7-9 hours of sleep per night",
			})
		case hours > 9:
			insights = append(insights, domain.Insight{
				Type:           domain.KindSleep,
				Category:       "duration",
				Metric:         "sleep_duration",
				Value:          hours,
				Severity:       domain.SeverityInfo,
				Message:        fmt.Sprintf("Average sleep duration is %.1f hours, this might be excessive", hours),
				Recommendation: "Consider if you're getting enough quality sleep",
			})
		}
	}

	if efficiency, ok := meanField(records, "efficiency"); ok {
		switch {
		case efficiency < 85:
			insights = append(insights, domain.Insight{
				Type:           domain.KindSleep,
				Category:       "efficiency",
				Metric:         "sleep_efficiency",
				Value:          efficiency,
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("Sleep efficiency is %.1f%%, room for improvement", efficiency),
				Recommendation: "Improve sleep hygiene and reduce disturbances",
			})
		case efficiency > 95:
			insights = append(insights, domain.Insight{
				Type:     domain.KindSleep,
				Category: "efficiency",
				Metric:   "sleep_efficiency",
				Value:    efficiency,
				Severity: domain.SeverityPositive,
				Message:  fmt.Sprintf("Excellent sleep efficiency at %.1f%%!", efficiency),
			})
		}
	}

	if seconds, ok := meanField(records, "deep_sleep_duration"); ok {
		if hours := seconds / secondsPerHour; hours < 1.5 {
			insights = append(insights, domain.Insight{
				Type:           domain.KindSleep,
				Category:       "deep_sleep",
				Metric:         "deep_sleep_hours",
				Value:          hours,
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("Deep sleep is %.1f hours, below recommended 1.5-2 hours", hours),
				Recommendation: "Reduce stress and avoid late exercise",
			})
		}
	}

	if seconds, ok := meanField(records, "rem_sleep_duration"); ok {
		if hours := seconds / secondsPerHour; hours < 1.5 {
			insights = append(insights, domain.Insight{
				Type:           domain.KindSleep,
				Category:       "rem_sleep",
				Metric:         "rem_sleep_hours",
				Value:          hours,
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("REM sleep is %.1f hours, below recommended 1.5-2 hours", hours),
				Recommendation: "Ensure consistent sleep schedule",
			})
		}
	}

	if score, ok := meanField(records, "score"); ok {
		if score < 70 {
			insights = append(insights, domain.Insight{
				Type:           domain.KindSleep,
				Category:       "score",
				Metric:         "sleep_score",
				Value:          score,
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("Sleep score is %.0f, focus on sleep quality", score),
				Recommendation: "Review sleep environment and routine",
			})
		}
	}

	return insights, nil
}

func (s *InsightsService) activityInsights(ctx context.Context, userID string, start, end time.Time) ([]domain.Insight, error) {
	records, err := s.recordStore.QueryRange(ctx, userID, domain.KindActivity, start, end)
	if err != nil {
		return nil, fmt.Errorf("query activity records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var insights []domain.Insight
	if steps, ok := meanField(records, "steps"); ok {
		switch {
		case steps < 5000:
			insights = append(insights, domain.Insight{
				Type:           domain.KindActivity,
				Category:       "steps",
				Metric:         "daily_steps",
				Value:          steps,
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("Average daily steps is %.0f, consider increasing activity", steps),
				Recommendation: "Aim for 8,000-10,000 steps daily",
			})
		case steps > 12000:
			insights = append(insights, domain.Insight{
				Type:     domain.KindActivity,
				Category: "steps",
				Metric:   "daily_steps",
				Value:    steps,
				Severity: domain.SeverityPositive,
				Message:  fmt.Sprintf("Great activity level with %.0f average steps!", steps),
			})
		}
	}
	return insights, nil
}

func (s *InsightsService) readinessInsights(ctx context.Context, userID string, start, end time.Time) ([]domain.Insight, error) {
	records, err := s.recordStore.QueryRange(ctx, userID, domain.KindReadiness, start, end)
	if err != nil {
		return nil, fmt.Errorf("query readiness records: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var insights []domain.Insight
	if score, ok := meanField(records, "score"); ok {
		switch {
		case score < 70:
			insights = append(insights, domain.Insight{
				Type:           domain.KindReadiness,
				Category:       "score",
				Metric:         "readiness_score",
				Value:          score,
				Severity:       domain.SeverityWarning,
				Message:        fmt.Sprintf("Readiness score is %.0f, focus on recovery", score),
				Recommendation: "Prioritize rest and recovery today",
			})
		case score > 90:
			insights = append(insights, domain.Insight{
				Type:     domain.KindReadiness,
				Category: "score",
				Metric:   "readiness_score",
				Value:    score,
				Severity: domain.SeverityPositive,
				Message:  fmt.Sprintf("Excellent readiness score of %.0f!", score),
			})
		}
	}
	return insights, nil
}

// meanField averages the named metric over the records where it was
// observed. The boolean is false when no record carries the metric.
func meanField(records []domain.Record, name string) (float64, bool) {
	var sum float64
	var count int
	for _, record := range records {
		if v, ok := record.Field(name); ok {
			sum += v
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}
