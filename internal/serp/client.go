package serp

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/tidwall/gjson"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/config"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/metrics"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
)

const userAgent = "PosiFinder/1.0"

type pacedRequest struct {
	ctx    context.Context
	req    *retryablehttp.Request
	result chan pacedResult
}

type pacedResult struct {
	body []byte
	err  error
}

// Client calls the configured SERP and analytics HTTP APIs. Requests are
// funneled through a single worker goroutine that enforces a fixed delay
// between calls.
type Client struct {
	serpBase      string
	serpKey       string
	analyticsBase string
	analyticsKey  string

	http     *retryablehttp.Client
	requests chan pacedRequest
}

// NewClient builds a paced client from the application config and starts its
// pacing worker. The worker lives until ctx is canceled.
func NewClient(ctx context.Context, cfg *config.Config) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.Logger = log.New(io.Discard, "", 0)
	retryClient.RetryMax = cfg.SerpRetryMax
	retryClient.HTTPClient.Timeout = 15 * time.Second

	c := &Client{
		serpBase:      cfg.SerpAPIBaseURL,
		serpKey:       cfg.SerpAPIKey,
		analyticsBase: cfg.AnalyticsAPIBaseURL,
		analyticsKey:  cfg.AnalyticsAPIKey,
		http:          retryClient,
		requests:      make(chan pacedRequest),
	}
	go c.pacingWorker(ctx, cfg.SerpCallDelay)
	return c
}

// pacingWorker serializes outbound calls with a fixed inter-call delay.
func (c *Client) pacingWorker(ctx context.Context, delay time.Duration) {
	if delay <= 0 {
		delay = 100 * time.Millisecond
	}
	ticker := time.NewTicker(delay)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case r := <-c.requests:
			select {
			case <-ctx.Done():
				r.result <- pacedResult{err: ctx.Err()}
				return
			case <-r.ctx.Done():
				r.result <- pacedResult{err: r.ctx.Err()}
				continue
			case <-ticker.C:
			}
			body, err := c.send(r.req)
			r.result <- pacedResult{body: body, err: err}
		}
	}
}

func (c *Client) send(req *retryablehttp.Request) ([]byte, error) {
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	result := make(chan pacedResult, 1)
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case c.requests <- pacedRequest{ctx: ctx, req: req, result: result}:
	}
	r := <-result
	return r.body, r.err
}

// TopResults returns the top organic results for a keyword.
func (c *Client) TopResults(ctx context.Context, keyword string, limit int) ([]Result, error) {
	endpoint := fmt.Sprintf("%s/search?q=%s&num=%d&api_key=%s",
		c.serpBase, url.QueryEscape(keyword), limit, url.QueryEscape(c.serpKey))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		metrics.RecordSerpLookup("serp", "error")
		return nil, fmt.Errorf("serp search for %q: %w", keyword, err)
	}
	metrics.RecordSerpLookup("serp", "ok")

	var results []Result
	for _, item := range gjson.GetBytes(body, "results").Array() {
		position := int(item.Get("position").Int())
		if position < 1 {
			continue
		}
		results = append(results, Result{
			Domain:   seo.NormalizeDomain(item.Get("domain").String()),
			URL:      item.Get("url").String(),
			Position: position,
		})
	}
	return results, nil
}

// Suggestions returns related keywords for a seed term.
func (c *Client) Suggestions(ctx context.Context, seed string) ([]Suggestion, error) {
	endpoint := fmt.Sprintf("%s/suggest?q=%s&api_key=%s",
		c.serpBase, url.QueryEscape(seed), url.QueryEscape(c.serpKey))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		metrics.RecordSerpLookup("suggest", "error")
		return nil, fmt.Errorf("keyword suggestions for %q: %w", seed, err)
	}
	metrics.RecordSerpLookup("suggest", "ok")

	var suggestions []Suggestion
	for _, item := range gjson.GetBytes(body, "suggestions").Array() {
		keyword := item.Get("keyword").String()
		if keyword == "" {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Keyword:      keyword,
			SearchVolume: int(item.Get("volume").Int()),
		})
	}
	return suggestions, nil
}

// SearchAnalytics returns the tracked domain's report row for a keyword.
func (c *Client) SearchAnalytics(ctx context.Context, domain, keyword string) (AnalyticsRow, error) {
	endpoint := fmt.Sprintf("%s/query?site=%s&q=%s&api_key=%s",
		c.analyticsBase, url.QueryEscape(domain), url.QueryEscape(keyword), url.QueryEscape(c.analyticsKey))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		metrics.RecordSerpLookup("analytics", "error")
		return AnalyticsRow{}, fmt.Errorf("search analytics for %q on %s: %w", keyword, domain, err)
	}
	metrics.RecordSerpLookup("analytics", "ok")

	return AnalyticsRow{
		Keyword:     keyword,
		Clicks:      int(gjson.GetBytes(body, "clicks").Int()),
		Impressions: int(gjson.GetBytes(body, "impressions").Int()),
		Position:    gjson.GetBytes(body, "position").Float(),
	}, nil
}
