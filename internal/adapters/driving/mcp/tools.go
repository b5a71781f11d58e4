package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
)

// defaultSummaryDays is the summary window when the caller omits one.
const defaultSummaryDays = 7

// SummaryInput is the input schema for the health_summary tool.
type SummaryInput struct {
	Days int `json:"days,omitempty" jsonschema:"number of days to summarise (default 7)"`
}

// SummaryOutput is the output schema for the health_summary tool.
type SummaryOutput struct {
	Days  int                       `json:"days"`
	Start string                    `json:"start"`
	End   string                    `json:"end"`
	Kinds map[string]KindStatOutput `json:"kinds"`
}

// KindStatOutput summarises one telemetry kind.
type KindStatOutput struct {
	Records int                        `json:"records"`
	Fields  map[string]FieldStatOutput `json:"fields,omitempty"`
}

// FieldStatOutput carries per-metric aggregates.
type FieldStatOutput struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

// InsightsInput is the input schema for the health_insights tool.
type InsightsInput struct{}

// InsightsOutput is the output schema for the health_insights tool.
type InsightsOutput struct {
	Insights []InsightOutput `json:"insights"`
	Count    int             `json:"count"`
}

// InsightOutput represents a single derived insight.
type InsightOutput struct {
	Type           string  `json:"type"`
	Category       string  `json:"category"`
	Metric         string  `json:"metric"`
	Value          float64 `json:"value"`
	Severity       string  `json:"severity"`
	Message        string  `json:"message"`
	Recommendation string  `json:"recommendation,omitempty"`
}

// AskInput is the input schema for the ask_health tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the user's health data"`
}

// AskOutput is the output schema for the ask_health tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "health_summary",
		Description: "Summarise the user's recent health telemetry per metric",
	}, s.handleSummary)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "health_insights",
		Description: "Derive threshold-based insights from the last week of health data",
	}, s.handleInsights)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask_health",
		Description: "Answer a natural-language question about the user's health data",
	}, s.handleAsk)
}

// handleSummary handles the health_summary tool invocation.
func (s *Server) handleSummary(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SummaryInput,
) (*mcp.CallToolResult, SummaryOutput, error) {
	days := input.Days
	if days <= 0 {
		days = defaultSummaryDays
	}

	report, err := s.ports.Insights.Summarize(ctx, s.userID, days)
	if err != nil {
		return nil, SummaryOutput{}, err
	}

	output := SummaryOutput{
		Days:  report.Days,
		Start: report.Start,
		End:   report.End,
		Kinds: make(map[string]KindStatOutput, len(report.Kinds)),
	}
	for kind, summary := range report.Kinds {
		stat := KindStatOutput{Records: summary.Records}
		if len(summary.Fields) > 0 {
			stat.Fields = make(map[string]FieldStatOutput, len(summary.Fields))
			for name, fs := range summary.Fields {
				stat.Fields[name] = FieldStatOutput{
					Count: fs.Count,
					Mean:  fs.Mean,
					Min:   fs.Min,
					Max:   fs.Max,
				}
			}
		}
		output.Kinds[kind.String()] = stat
	}

	return nil, output, nil
}

// handleInsights handles the health_insights tool invocation.
func (s *Server) handleInsights(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ InsightsInput,
) (*mcp.CallToolResult, InsightsOutput, error) {
	insights, err := s.ports.Insights.DeriveInsights(ctx, s.userID)
	if err != nil {
		return nil, InsightsOutput{}, err
	}

	output := InsightsOutput{
		Insights: make([]InsightOutput, len(insights)),
		Count:    len(insights),
	}
	for i := range insights {
		output.Insights[i] = InsightOutput{
			Type:           insights[i].Type.String(),
			Category:       insights[i].Category,
			Metric:         insights[i].Metric,
			Value:          insights[i].Value,
			Severity:       string(insights[i].Severity),
			Message:        insights[i].Message,
			Recommendation: insights[i].Recommendation,
		}
	}

	return nil, output, nil
}

// handleAsk handles the ask_health tool invocation.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	if s.ports.Ask == nil {
		return nil, AskOutput{}, errors.New("ask service is not configured")
	}

	answer, err := s.ports.Ask.Ask(ctx, input.Question)
	if err != nil {
		if errors.Is(err, domain.ErrLLMUnavailable) ||
			errors.Is(err, domain.ErrIndexUnavailable) ||
			errors.Is(err, domain.ErrEmbeddingUnavailable) {
			return nil, AskOutput{}, errors.New("question answering requires an embedding and LLM provider; configure one first")
		}
		return nil, AskOutput{}, err
	}

	return nil, AskOutput{Answer: answer.Text}, nil
}
