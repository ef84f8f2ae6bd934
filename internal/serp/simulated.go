package serp

import (
	"context"
	"fmt"
	"sort"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
)

// simulatedPool is the competitor universe the simulated provider draws
// from. Stable so repeated simulated runs stay comparable.
var simulatedPool = []string{
	"semrush.com",
	"ahrefs.com",
	"moz.com",
	"searchenginejournal.com",
	"backlinko.com",
	"neilpatel.com",
	"hubspot.com",
	"wordstream.com",
}

// Simulated fabricates stable placeholder search data. It is used when no
// live provider is configured and when an analysis run degrades after an
// upstream failure. All output is deterministic per input.
type Simulated struct {
	// TargetDomain is injected so the simulated SERP can include the
	// tracked site itself.
	TargetDomain string
}

var _ Provider = (*Simulated)(nil)

// TopResults fabricates a SERP for the keyword: the competitor pool plus the
// target domain, each at its stable simulated rank.
func (s *Simulated) TopResults(_ context.Context, keyword string, limit int) ([]Result, error) {
	domains := simulatedPool
	if s.TargetDomain != "" {
		domains = append([]string{s.TargetDomain}, domains...)
	}

	results := make([]Result, 0, len(domains))
	seen := make(map[int]bool)
	for _, domain := range domains {
		rank := seo.SimulatedSerpRank(domain, keyword)
		// Collapse rank collisions to the next free slot.
		for seen[rank] {
			rank++
		}
		seen[rank] = true
		results = append(results, Result{
			Domain:   seo.NormalizeDomain(domain),
			URL:      fmt.Sprintf("https://%s/", seo.NormalizeDomain(domain)),
			Position: rank,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Position < results[j].Position })
	if len(results) > limit && limit > 0 {
		results = results[:limit]
	}
	return results, nil
}

// Suggestions fabricates related keywords for a seed term.
func (s *Simulated) Suggestions(_ context.Context, seed string) ([]Suggestion, error) {
	variants := []string{
		seed,
		seed + " tools",
		seed + " software",
		"best " + seed,
		seed + " guide",
		"free " + seed,
	}

	suggestions := make([]Suggestion, 0, len(variants))
	for _, v := range variants {
		suggestions = append(suggestions, Suggestion{
			Keyword:      v,
			SearchVolume: seo.SimulatedSearchVolume(v),
		})
	}
	return suggestions, nil
}

// SearchAnalytics fabricates a report row from the simulated rank.
func (s *Simulated) SearchAnalytics(_ context.Context, domain, keyword string) (AnalyticsRow, error) {
	rank := seo.SimulatedSerpRank(domain, keyword)
	volume := seo.SimulatedSearchVolume(keyword)
	impressions := volume
	clicks := int(float64(impressions) * seo.CTRByPosition(rank) / 100)

	return AnalyticsRow{
		Keyword:     keyword,
		Clicks:      clicks,
		Impressions: impressions,
		Position:    float64(rank),
	}, nil
}
