// Package http provides a JSON client for the search and analysis backend.
// A single Client implements crosscheck.WebSearcher,
// crosscheck.DiscussionSearcher and crosscheck.ConflictAnalyzer.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/crosscheck"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the address of a locally running backend.
const DefaultBaseURL = "http://localhost:8000/api"

// DefaultTimeout is the default timeout for a single backend request.
// The analysis endpoint calls a language model and routinely takes tens
// of seconds.
const DefaultTimeout = 60 * time.Second

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 10 << 20

// Backend endpoint paths, relative to the base URL.
const (
	WebSearchPath        = "/search/google"
	DiscussionSearchPath = "/search/reddit"
	AnalyzeConflictsPath = "/analyze/conflicts"
)

// Ensure Client implements the service interfaces at compile time.
var (
	_ crosscheck.WebSearcher        = (*Client)(nil)
	_ crosscheck.DiscussionSearcher = (*Client)(nil)
	_ crosscheck.ConflictAnalyzer   = (*Client)(nil)
)

// Client calls the backend's JSON endpoints.
type Client struct {
	baseURL string
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for each request.
// Defaults to DefaultTimeout if not specified. Ignored when WithHTTPClient
// is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit limits outbound requests to rps per second with no bursting.
// A non-positive rps disables limiting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps <= 0 {
			c.limiter = nil
			return
		}
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a Client for the backend at baseURL
// (e.g. "http://localhost:8000/api").
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// BaseURL returns the backend address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SearchWeb posts the query to the web search endpoint.
func (c *Client) SearchWeb(ctx context.Context, query string) ([]crosscheck.WebResult, error) {
	var resp webSearchResponse
	if err := c.post(ctx, WebSearchPath, searchRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []crosscheck.WebResult{}
	}
	return resp.Results, nil
}

// SearchDiscussions posts the query to the discussion search endpoint.
func (c *Client) SearchDiscussions(ctx context.Context, query string) (*crosscheck.DiscussionOutcome, error) {
	var resp discussionSearchResponse
	if err := c.post(ctx, DiscussionSearchPath, searchRequest{Query: query}, &resp); err != nil {
		return nil, err
	}
	if resp.Threads == nil {
		resp.Threads = []crosscheck.DiscussionThread{}
	}
	return &crosscheck.DiscussionOutcome{
		Threads: resp.Threads,
		Content: string(resp.Content),
	}, nil
}

// AnalyzeConflicts posts web results and scraped discussion content to the
// conflict analysis endpoint.
func (c *Client) AnalyzeConflicts(ctx context.Context, web []crosscheck.WebResult, discussionContent string) (*crosscheck.ConflictReport, error) {
	if web == nil {
		web = []crosscheck.WebResult{}
	}
	req := analyzeRequest{
		GoogleResults: web,
		RedditResults: discussionContent,
	}

	var resp analyzeResponse
	if err := c.post(ctx, AnalyzeConflictsPath, req, &resp); err != nil {
		return nil, err
	}
	return resp.report(), nil
}

// post sends in as a JSON body to path and decodes the JSON response into out.
// Every failure is reported as EREQUEST.
func (c *Client) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return crosscheck.Errorf(crosscheck.EINTERNAL, "%s: encode request: %v", path, err)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return crosscheck.Errorf(crosscheck.EREQUEST, "%s: %v", path, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return crosscheck.Errorf(crosscheck.EREQUEST, "%s: %v", path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return crosscheck.Errorf(crosscheck.EREQUEST, "%s: %v", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return crosscheck.Errorf(crosscheck.EREQUEST, "%s: read response: %v", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return crosscheck.Errorf(crosscheck.EREQUEST, "%s: HTTP %d: %s", path, resp.StatusCode, truncate(string(data), 200))
	}

	if err := json.Unmarshal(data, out); err != nil {
		return crosscheck.Errorf(crosscheck.EREQUEST, "%s: malformed response: %v", path, err)
	}
	return nil
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
