package telemetry

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/meridian-labs/vita-cli/internal/core/domain"
	"github.com/meridian-labs/vita-cli/internal/core/ports/driven"
	"github.com/meridian-labs/vita-cli/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.TelemetrySource = (*Client)(nil)

const (
	// DefaultBaseURL is the production API endpoint.
	DefaultBaseURL = "https://api.ouraring.com"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultPageSize is the page size requested per fetch.
	DefaultPageSize = 200

	// proactiveRate throttles requests to roughly 4/sec, well under the
	// API's 5-minute quota.
	proactiveRate = 4.0
)

// Config holds configuration for the telemetry client.
type Config struct {
	// AccessToken is the personal access token (required).
	AccessToken string

	// UserID is the opaque owner stamped on every record (required).
	UserID string

	// BaseURL overrides the API endpoint, e.g. for tests.
	BaseURL string

	// Timeout is the per-request timeout (default: 30s).
	Timeout time.Duration

	// PageSize is the page size per request (default: 200).
	PageSize int
}

// Client fetches and normalises paginated daily series.
type Client struct {
	http     *http.Client
	baseURL  string
	userID   string
	pageSize int
	limiter  *rate.Limiter
}

// page is the wire shape of one paginated response.
type page struct {
	Data      []map[string]any `json:"data"`
	NextToken string           `json:"next_token"`
}

// NewClient creates a telemetry client. The HTTP client carries the
// bearer token on every request via a static oauth2 token source.
func NewClient(cfg Config) (*Client, error) {
	if cfg.AccessToken == "" {
		return nil, fmt.Errorf("%w: telemetry access token not configured", domain.ErrAuthRequired)
	}
	if cfg.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", domain.ErrInvalidInput)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = DefaultPageSize
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.AccessToken})
	hc := oauth2.NewClient(context.Background(), ts)
	hc.Timeout = cfg.Timeout

	return &Client{
		http:     hc,
		baseURL:  cfg.BaseURL,
		userID:   cfg.UserID,
		pageSize: cfg.PageSize,
		limiter:  rate.NewLimiter(rate.Limit(proactiveRate), 1),
	}, nil
}

// FetchSeries fetches every record of the kind within [start, end],
// following next_token pagination until exhausted. Records that fail
// normalisation (e.g. malformed day) are skipped, not fatal.
func (c *Client) FetchSeries(ctx context.Context, kind domain.Kind, start, end time.Time) ([]domain.Record, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown kind %q", domain.ErrInvalidInput, kind)
	}

	items, err := c.fetchPages(ctx, kind, endpointOf[kind], start, end)
	if err != nil {
		return nil, err
	}

	// Sleep scores live on a separate daily endpoint; join them by day.
	var scoreByDay map[string]float64
	if kind == domain.KindSleep {
		scoreByDay, err = c.fetchSleepScores(ctx, start, end)
		if err != nil {
			return nil, err
		}
	}

	records := make([]domain.Record, 0, len(items))
	for _, item := range items {
		record, err := normaliseItem(item, kind, c.userID)
		if err != nil {
			logger.Warn("Skipping %s item: %v", kind, err)
			continue
		}
		if score, ok := scoreByDay[record.DayString()]; ok {
			record.Fields["score"] = score
		}
		records = append(records, record)
	}

	logger.Debug("Fetched %d %s records (%d raw items)", len(records), kind, len(items))
	return records, nil
}

// fetchSleepScores returns the day -> score mapping from the daily
// sleep endpoint.
func (c *Client) fetchSleepScores(ctx context.Context, start, end time.Time) (map[string]float64, error) {
	items, err := c.fetchPages(ctx, domain.KindSleep, dailySleepEndpoint, start, end)
	if err != nil {
		return nil, err
	}

	scores := make(map[string]float64, len(items))
	for _, item := range items {
		day, ok := item["day"].(string)
		if !ok {
			continue
		}
		if score, ok := asScalar(item["score"]); ok {
			scores[day] = score
		}
	}
	return scores, nil
}

// fetchPages loops over the pagination protocol for one endpoint. An
// empty first page terminates immediately with an empty slice.
func (c *Client) fetchPages(ctx context.Context, kind domain.Kind, path string, start, end time.Time) ([]map[string]any, error) {
	var items []map[string]any
	nextToken := ""

	for {
		p, err := c.getPage(ctx, kind, path, start, end, nextToken)
		if err != nil {
			return nil, err
		}
		items = append(items, p.Data...)
		if p.NextToken == "" {
			return items, nil
		}
		nextToken = p.NextToken
	}
}

// getPage issues one paginated request.
func (c *Client) getPage(ctx context.Context, kind domain.Kind, path string, start, end time.Time, nextToken string) (*page, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("start_date", start.Format(domain.DayFormat))
	q.Set("end_date", end.Format(domain.DayFormat))
	q.Set("page_size", strconv.Itoa(c.pageSize))
	if nextToken != "" {
		q.Set("next_token", nextToken)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Kind: kind, Start: start, End: end, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("%w: telemetry API returned status %d", domain.ErrAuthInvalid, resp.StatusCode)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Kind:       kind,
			Start:      start,
			End:        end,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var p page
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, &TransportError{Kind: kind, Start: start, End: end, Err: fmt.Errorf("decode response: %w", err)}
	}
	return &p, nil
}

// Close releases the pooled HTTP connection.
func (c *Client) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
