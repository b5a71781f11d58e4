package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/vita-cli/internal/adapters/driven/storage/memory"
	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

func insightsStore(t *testing.T, records ...domain.Record) *memory.RecordStore {
	t.Helper()

	store := memory.NewRecordStore()
	for _, record := range records {
		require.NoError(t, store.Insert(context.Background(), record))
	}
	return store
}

func recentRecord(kind domain.Kind, daysAgo int, fields map[string]float64) domain.Record {
	return domain.Record{
		UserID: "user-1",
		Kind:   kind,
		Day:    time.Now().AddDate(0, 0, -daysAgo),
		Fields: fields,
	}
}

func findInsight(insights []domain.Insight, metric string) (domain.Insight, bool) {
	for _, insight := range insights {
		if insight.Metric == metric {
			return insight, true
		}
	}
	return domain.Insight{}, false
}

func TestSummarize_InvalidDays(t *testing.T) {
	svc := NewInsightsService(memory.NewRecordStore())

	_, err := svc.Summarize(context.Background(), "user-1", 0)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSummarize_EmptyWindow(t *testing.T) {
	svc := NewInsightsService(memory.NewRecordStore())

	report, err := svc.Summarize(context.Background(), "user-1", 7)

	require.NoError(t, err)
	assert.Equal(t, "user-1", report.UserID)
	assert.Equal(t, 7, report.Days)
	for _, kind := range domain.AllKinds() {
		summary := report.Kinds[kind]
		assert.Zero(t, summary.Records)
		assert.Empty(t, summary.Fields)
	}
}

func TestSummarize_FieldStats(t *testing.T) {
	store := insightsStore(t,
		recentRecord(domain.KindActivity, 1, map[string]float64{"steps": 4000}),
		recentRecord(domain.KindActivity, 2, map[string]float64{"steps": 8000}),
		recentRecord(domain.KindActivity, 3, map[string]float64{"steps": 6000, "active_calories": 450}),
	)
	svc := NewInsightsService(store)

	report, err := svc.Summarize(context.Background(), "user-1", 7)

	require.NoError(t, err)
	activity := report.Kinds[domain.KindActivity]
	assert.Equal(t, 3, activity.Records)

	steps := activity.Fields["steps"]
	assert.Equal(t, 3, steps.Count)
	assert.InDelta(t, 6000, steps.Mean, 0.001)
	assert.Equal(t, 4000.0, steps.Min)
	assert.Equal(t, 8000.0, steps.Max)

	// Metrics observed on some days only keep their own count.
	calories := activity.Fields["active_calories"]
	assert.Equal(t, 1, calories.Count)
	assert.Equal(t, 450.0, calories.Mean)
}

func TestDeriveInsights_NoData(t *testing.T) {
	svc := NewInsightsService(memory.NewRecordStore())

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, insights)
}

func TestDeriveInsights_ShortSleepWarning(t *testing.T) {
	// 6h and 6.28h average to about 6.14h, under the 7h threshold.
	store := insightsStore(t,
		recentRecord(domain.KindSleep, 1, map[string]float64{"total_sleep_duration": 21600}),
		recentRecord(domain.KindSleep, 2, map[string]float64{"total_sleep_duration": 22608}),
	)
	svc := NewInsightsService(store)

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)
	insight, found := findInsight(insights, "sleep_duration")
	require.True(t, found)
	assert.Equal(t, domain.SeverityWarning, insight.Severity)
	assert.Equal(t, "Average sleep duration is 6.1 hours, consider getting more sleep", insight.Message)
	assert.Equal(t, "Aim for 7-9 hours of sleep per night", insight.Recommendation)
}

func TestDeriveInsights_LongSleepInfo(t *testing.T) {
	store := insightsStore(t,
		recentRecord(domain.KindSleep, 1, map[string]float64{"total_sleep_duration": 34200}),
	)
	svc := NewInsightsService(store)

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)
	insight, found := findInsight(insights, "sleep_duration")
	require.True(t, found)
	assert.Equal(t, domain.SeverityInfo, insight.Severity)
	assert.Contains(t, insight.Message, "might be excessive")
}

func TestDeriveInsights_NormalSleepNoInsight(t *testing.T) {
	store := insightsStore(t,
		recentRecord(domain.KindSleep, 1, map[string]float64{"total_sleep_duration": 28800, "efficiency": 90}),
	)
	svc := NewInsightsService(store)

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)
	_, found := findInsight(insights, "sleep_duration")
	assert.False(t, found)
	_, found = findInsight(insights, "sleep_efficiency")
	assert.False(t, found)
}

func TestDeriveInsights_EfficiencyAndDeepSleep(t *testing.T) {
	store := insightsStore(t,
		recentRecord(domain.KindSleep, 1, map[string]float64{
			"total_sleep_duration": 28800,
			"efficiency":           80,
			"deep_sleep_duration":  3600,
			"rem_sleep_duration":   6600,
			"score":                65,
		}),
	)
	svc := NewInsightsService(store)

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)

	efficiency, found := findInsight(insights, "sleep_efficiency")
	require.True(t, found)
	assert.Equal(t, domain.SeverityWarning, efficiency.Severity)
	assert.Equal(t, "Sleep efficiency is 80.0%, room for improvement", efficiency.Message)

	deep, found := findInsight(insights, "deep_sleep_hours")
	require.True(t, found)
	assert.Equal(t, "Deep sleep is 1.0 hours, below recommended 1.5-2 hours", deep.Message)

	_, found = findInsight(insights, "rem_sleep_hours")
	assert.False(t, found)

	score, found := findInsight(insights, "sleep_score")
	require.True(t, found)
	assert.Equal(t, "Sleep score is 65, focus on sleep quality", score.Message)
}

func TestDeriveInsights_HighStepsPositiveOnly(t *testing.T) {
	store := insightsStore(t,
		recentRecord(domain.KindActivity, 1, map[string]float64{"steps": 13500}),
	)
	svc := NewInsightsService(store)

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)
	insight, found := findInsight(insights, "daily_steps")
	require.True(t, found)
	assert.Equal(t, domain.SeverityPositive, insight.Severity)
	assert.Equal(t, "Great activity level with 13500 average steps!", insight.Message)

	for _, other := range insights {
		assert.NotEqual(t, domain.SeverityWarning, other.Severity)
	}
}

func TestDeriveInsights_LowStepsWarning(t *testing.T) {
	store := insightsStore(t,
		recentRecord(domain.KindActivity, 1, map[string]float64{"steps": 3000}),
	)
	svc := NewInsightsService(store)

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)
	insight, found := findInsight(insights, "daily_steps")
	require.True(t, found)
	assert.Equal(t, domain.SeverityWarning, insight.Severity)
	assert.Equal(t, "Average daily steps is 3000, consider increasing activity", insight.Message)
}

func TestDeriveInsights_Readiness(t *testing.T) {
	store := insightsStore(t,
		recentRecord(domain.KindReadiness, 1, map[string]float64{"score": 95}),
	)
	svc := NewInsightsService(store)

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)
	insight, found := findInsight(insights, "readiness_score")
	require.True(t, found)
	assert.Equal(t, domain.SeverityPositive, insight.Severity)
	assert.Equal(t, "Excellent readiness score of 95!", insight.Message)
}

func TestDeriveInsights_OldRecordsIgnored(t *testing.T) {
	store := insightsStore(t,
		recentRecord(domain.KindSleep, 30, map[string]float64{"total_sleep_duration": 3600}),
	)
	svc := NewInsightsService(store)

	insights, err := svc.DeriveInsights(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Empty(t, insights)
}
