package mcp

import (
	"context"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// mockInsightsService implements driving.InsightsService for testing.
type mockInsightsService struct {
	report   *domain.SummaryReport
	insights []domain.Insight
	err      error
	lastUser string
	lastDays int
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

// mockAskService implements driving.AskService for testing.
type mockAskService struct {
	answer       *domain.Answer
	err          error
	lastQuestion string
}

func (m *mockAskService) Ask(_ context.Context, question string) (*domain.Answer, error) {
	m.lastQuestion = question
	return m.answer, m.err
}
