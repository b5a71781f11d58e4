package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

func TestServer_handleSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("returns per-kind stats", func(t *testing.T) {
		mockInsights := &mockInsightsService{
			report: &domain.SummaryReport{
				UserID: "user-1",
				Days:   7,
				Start:  "2026-08-20",
				End:    "2026-08-27",
				Kinds: map[domain.Kind]domain.KindSummary{
					domain.KindActivity: {
						Records: 7,
						Fields: map[string]domain.FieldStats{
							"steps": {Count: 7, Mean: 8250, Min: 4000, Max: 13500},
						},
					},
				},
			},
		}

		server, err := NewServer(&Ports{Insights: mockInsights}, "user-1")
		require.NoError(t, err)

		_, output, err := server.handleSummary(ctx, nil, SummaryInput{Days: 7})

		require.NoError(t, err)
		assert.Equal(t, "user-1", mockInsights.lastUser)
		assert.Equal(t, 7, output.Days)
		assert.Equal(t, "2026-08-20", output.Start)

		activity := output.Kinds["activity"]
		assert.Equal(t, 7, activity.Records)
		assert.Equal(t, 8250.0, activity.Fields["steps"].Mean)
	})

	t.Run("defaults to 7 days", func(t *testing.T) {
		mockInsights := &mockInsightsService{report: &domain.SummaryReport{Days: 7}}
		server, err := NewServer(&Ports{Insights: mockInsights}, "")
		require.NoError(t, err)

		_, _, err = server.handleSummary(ctx, nil, SummaryInput{})

		require.NoError(t, err)
		assert.Equal(t, defaultSummaryDays, mockInsights.lastDays)
		assert.Equal(t, defaultUserID, mockInsights.lastUser)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		server, err := NewServer(&Ports{Insights: &mockInsightsService{err: errors.New("store offline")}}, "user-1")
		require.NoError(t, err)

		_, _, err = server.handleSummary(ctx, nil, SummaryInput{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "store offline")
	})
}

func TestServer_handleInsights(t *testing.T) {
	ctx := context.Background()

	t.Run("returns derived insights", func(t *testing.T) {
		mockInsights := &mockInsightsService{
			insights: []domain.Insight{
				{
					Type:           domain.KindSleep,
					Category:       "duration",
					Metric:         "sleep_duration",
					Value:          6.1,
					Severity:       domain.SeverityWarning,
					Message:        "Average sleep duration is 6.1 hours, consider getting more sleep",
					Recommendation: "Aim for 7-9 hours of sleep per night",
				},
			},
		}

		server, err := NewServer(&Ports{Insights: mockInsights}, "user-1")
		require.NoError(t, err)

		_, output, err := server.handleInsights(ctx, nil, InsightsInput{})

		require.NoError(t, err)
		assert.Equal(t, 1, output.Count)
		require.Len(t, output.Insights, 1)
		assert.Equal(t, "sleep", output.Insights[0].Type)
		assert.Equal(t, "warning", output.Insights[0].Severity)
		assert.Contains(t, output.Insights[0].Message, "6.1 hours")
	})

	t.Run("empty insights", func(t *testing.T) {
		server, err := NewServer(&Ports{Insights: &mockInsightsService{}}, "user-1")
		require.NoError(t, err)

		_, output, err := server.handleInsights(ctx, nil, InsightsInput{})

		require.NoError(t, err)
		assert.Zero(t, output.Count)
	})
}

func TestServer_handleAsk(t *testing.T) {
	ctx := context.Background()

	t.Run("returns answer", func(t *testing.T) {
		mockAsk := &mockAskService{answer: &domain.Answer{Text: "You slept 7.5 hours on average."}}
		server, err := NewServer(&Ports{Insights: &mockInsightsService{}, Ask: mockAsk}, "user-1")
		require.NoError(t, err)

		_, output, err := server.handleAsk(ctx, nil, AskInput{Question: "how did I sleep?"})

		require.NoError(t, err)
		assert.Equal(t, "how did I sleep?", mockAsk.lastQuestion)
		assert.Equal(t, "You slept 7.5 hours on average.", output.Answer)
	})

	t.Run("nil ask service", func(t *testing.T) {
		server, err := NewServer(&Ports{Insights: &mockInsightsService{}}, "user-1")
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "anything"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not configured")
	})

	t.Run("missing providers reported plainly", func(t *testing.T) {
		mockAsk := &mockAskService{err: domain.ErrEmbeddingUnavailable}
		server, err := NewServer(&Ports{Insights: &mockInsightsService{}, Ask: mockAsk}, "user-1")
		require.NoError(t, err)

		_, _, err = server.handleAsk(ctx, nil, AskInput{Question: "anything"})

		require.Error(t, err)
	})
}

func TestNewServer_RequiresInsights(t *testing.T) {
	_, err := NewServer(&Ports{}, "user-1")

	assert.ErrorIs(t, err, ErrMissingInsightsService)
}
