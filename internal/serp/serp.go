// Package serp talks to the third-party search and analytics APIs that feed
// the rank tracker. All outbound calls go through a single pacing worker so
// the provider's rate limits are respected regardless of caller concurrency.
package serp

import "context"

// Result is one organic search result for a keyword.
type Result struct {
	Domain   string `json:"domain"`
	URL      string `json:"url"`
	Position int    `json:"position"`
}

// Suggestion is one related-keyword suggestion with its estimated monthly
// search volume.
type Suggestion struct {
	Keyword      string `json:"keyword"`
	SearchVolume int    `json:"search_volume"`
}

// AnalyticsRow is a search-console style report row for one keyword.
type AnalyticsRow struct {
	Keyword     string  `json:"keyword"`
	Clicks      int     `json:"clicks"`
	Impressions int     `json:"impressions"`
	Position    float64 `json:"position"`
}

// Provider is the outbound search-data dependency of the analysis layer.
// The live implementation calls the configured HTTP APIs; the simulated one
// fabricates stable placeholder data.
type Provider interface {
	// TopResults returns the top organic results for a keyword, best first.
	TopResults(ctx context.Context, keyword string, limit int) ([]Result, error)
	// Suggestions returns related keywords for a seed term.
	Suggestions(ctx context.Context, seed string) ([]Suggestion, error)
	// SearchAnalytics returns the tracked domain's analytics row for a keyword.
	SearchAnalytics(ctx context.Context, domain, keyword string) (AnalyticsRow, error)
}
