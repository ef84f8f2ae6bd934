package seo

import (
	"sort"
	"strings"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// NormalizeDomain strips the protocol prefix and a leading "www." so that
// "https://www.example.com", "www.example.com" and "example.com" all compare
// equal. The result is lowercased.
func NormalizeDomain(domain string) string {
	d := strings.ToLower(strings.TrimSpace(domain))
	if i := strings.Index(d, "://"); i >= 0 {
		d = d[i+3:]
	}
	d = strings.TrimPrefix(d, "www.")
	if i := strings.IndexAny(d, "/?#"); i >= 0 {
		d = d[:i]
	}
	return d
}

// TargetAveragePosition computes the target domain's average rank over the
// keywords where it ranks at all. The second return is false when the target
// is unranked everywhere.
func TargetAveragePosition(results []models.KeywordResult) (float64, bool) {
	sum, n := 0, 0
	for _, r := range results {
		if rank, ok := r.TargetPosition.Rank(); ok {
			sum += rank
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// TopCompetitorsAhead returns the n competitors whose stored average position
// is strictly better (lower) than the target's average position over the
// keyword set, best first. Ties are broken by domain name so the order is
// stable. When the target is unranked everywhere, every ranked competitor is
// ahead of it. Returns an empty slice when nobody is ahead; callers render an
// explicit empty state for that case.
func TopCompetitorsAhead(competitors []models.CompetitorDomain, results []models.KeywordResult, n int) []models.CompetitorDomain {
	targetAvg, targetRanked := TargetAveragePosition(results)

	ahead := make([]models.CompetitorDomain, 0, len(competitors))
	for _, c := range competitors {
		if c.AveragePosition <= 0 {
			continue
		}
		if !targetRanked || c.AveragePosition < targetAvg {
			ahead = append(ahead, c)
		}
	}

	sortByPosition(ahead)
	if len(ahead) > n {
		ahead = ahead[:n]
	}
	return ahead
}

// CompetitorsAround returns up to n competitors ahead of the target followed
// by up to n behind it, both ordered by average position ascending.
func CompetitorsAround(competitors []models.CompetitorDomain, results []models.KeywordResult, n int) []models.CompetitorDomain {
	targetAvg, targetRanked := TargetAveragePosition(results)

	var ahead, behind []models.CompetitorDomain
	for _, c := range competitors {
		if c.AveragePosition <= 0 {
			continue
		}
		if !targetRanked || c.AveragePosition < targetAvg {
			ahead = append(ahead, c)
		} else {
			behind = append(behind, c)
		}
	}

	sortByPosition(ahead)
	sortByPosition(behind)

	// Keep the n closest competitors ahead of the target, not the n best.
	if len(ahead) > n {
		ahead = ahead[len(ahead)-n:]
	}
	if len(behind) > n {
		behind = behind[:n]
	}
	return append(ahead, behind...)
}

func sortByPosition(list []models.CompetitorDomain) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].AveragePosition != list[j].AveragePosition {
			return list[i].AveragePosition < list[j].AveragePosition
		}
		return NormalizeDomain(list[i].Domain) < NormalizeDomain(list[j].Domain)
	})
}
