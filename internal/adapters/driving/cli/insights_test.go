package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// mockInsightsService implements driving.InsightsService for testing.
type mockInsightsService struct {
	report   *domain.SummaryReport
	insights []domain.Insight
	err      error
	lastDays int
	lastUser string
}

func (m *mockInsightsService) Summarize(_ context.Context, userID string, days int) (*domain.SummaryReport, error) {
	m.lastUser = userID
	m.lastDays = days
	return m.report, m.err
}

func (m *mockInsightsService) DeriveInsights(_ context.Context, userID string) ([]domain.Insight, error) {
	m.lastUser = userID
	return m.insights, m.err
}

func TestInsightsCmd_NotConfigured(t *testing.T) {
	oldInsights := insightsService
	insightsService = nil
	defer func() { insightsService = oldInsights }()

	_, err := runCommand(t, "insights")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "insights service not configured")
}

func TestInsightsCmd_Empty(t *testing.T) {
	oldInsights := insightsService
	insightsService = &mockInsightsService{}
	defer func() { insightsService = oldInsights }()

	out, err := runCommand(t, "insights")

	assert.NoError(t, err)
	assert.Contains(t, out, "No insights for the last 7 days")
}

func TestInsightsCmd_PrintsBySeverity(t *testing.T) {
	oldInsights := insightsService
	insightsService = &mockInsightsService{insights: []domain.Insight{
		{
			Severity:       domain.SeverityWarning,
			Message:        "Average sleep duration is 6.1 hours, consider getting more sleep",
			Recommendation: "Aim for 7-9 hours of sleep per night",
		},
		{
			Severity: domain.SeverityPositive,
			Message:  "Great activity level with 13500 average steps!",
		},
	}}
	defer func() { insightsService = oldInsights }()

	out, err := runCommand(t, "insights")

	assert.NoError(t, err)
	assert.Contains(t, out, "[!] Average sleep duration is 6.1 hours")
	assert.Contains(t, out, "Aim for 7-9 hours of sleep per night")
	assert.Contains(t, out, "[+] Great activity level")
}

func TestSummaryCmd_PrintsStats(t *testing.T) {
	oldInsights := insightsService
	oldUser := currentUserID
	currentUserID = "user-1"
	mock := &mockInsightsService{report: &domain.SummaryReport{
		UserID: "user-1",
		Days:   7,
		Start:  "2026-08-20",
		End:    "2026-08-27",
		Kinds: map[domain.Kind]domain.KindSummary{
			domain.KindActivity: {
				Records: 7,
				Fields: map[string]domain.FieldStats{
					"steps": {Count: 7, Mean: 8250.5, Min: 4000, Max: 13500},
				},
			},
			domain.KindSleep: {},
		},
	}}
	insightsService = mock
	defer func() {
		insightsService = oldInsights
		currentUserID = oldUser
	}()

	out, err := runCommand(t, "summary", "--days", "7")

	assert.NoError(t, err)
	assert.Equal(t, "user-1", mock.lastUser)
	assert.Equal(t, 7, mock.lastDays)
	assert.Contains(t, out, "Summary 2026-08-20 to 2026-08-27 (7 days)")
	assert.Contains(t, out, "[activity] 7 records")
	assert.Contains(t, out, "steps")
	assert.Contains(t, out, "mean 8250.5")
}

func TestSummaryCmd_EmptyWindow(t *testing.T) {
	oldInsights := insightsService
	insightsService = &mockInsightsService{report: &domain.SummaryReport{
		Days:  7,
		Start: "2026-08-20",
		End:   "2026-08-27",
		Kinds: map[domain.Kind]domain.KindSummary{},
	}}
	defer func() { insightsService = oldInsights }()

	out, err := runCommand(t, "summary")

	assert.NoError(t, err)
	assert.Contains(t, out, "No records in this window.")
}

func TestVersionCmd(t *testing.T) {
	out, err := runCommand(t, "version")

	assert.NoError(t, err)
	assert.Contains(t, out, "vita version")
}
