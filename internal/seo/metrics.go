package seo

import (
	"math"
	"sort"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// topCompetitorLimit is how many competitors the aggregate ranking keeps.
const topCompetitorLimit = 5

// CalculateCompetitiveMetrics folds a keyword-result set into domain-level
// competitive aggregates: average gap to the best competitor, estimated lost
// traffic, per-competitor win counts and keyword wins against the reference
// and full competitor sets.
//
// The function is pure: identical inputs always produce identical output,
// including the top-competitor order (wins descending, then domain ascending).
func CalculateCompetitiveMetrics(results []models.KeywordResult, competitors []models.CompetitorDomain) models.CompetitiveMetrics {
	metrics := models.CompetitiveMetrics{
		TotalKeywords:  len(results),
		TopCompetitors: []models.CompetitorStanding{},
	}

	referenceDomains := make(map[string]bool)
	allDomains := make(map[string]bool)
	byDomain := make(map[string]models.CompetitorDomain, len(competitors))
	for _, c := range competitors {
		domain := NormalizeDomain(c.Domain)
		byDomain[domain] = c
		allDomains[domain] = true
		if c.IsReference() {
			referenceDomains[domain] = true
		}
	}

	wins := make(map[string]int)
	var gaps []int
	var lostClicks, potentialClicks float64

	for _, result := range results {
		targetRank, targetRanked := result.TargetPosition.Rank()
		potentialClicks += float64(result.SearchVolume) * CTRByPosition(1) / 100

		best := 0
		beatenReference := true
		beatenAll := true
		for _, cp := range result.CompetitorPositions {
			if cp.Position < 1 {
				continue
			}
			domain := NormalizeDomain(cp.Domain)
			if best == 0 || cp.Position < best {
				best = cp.Position
			}

			outranksTarget := !targetRanked || cp.Position < targetRank
			if outranksTarget {
				wins[domain]++
				if referenceDomains[domain] {
					beatenReference = false
				}
				beatenAll = false
			}
		}

		if targetRanked && best > 0 && best < targetRank {
			gaps = append(gaps, targetRank-best)
			lostClicks += (CTRByPosition(best) - CTRByPosition(targetRank)) * float64(result.SearchVolume) / 100
		}
		if !targetRanked && best > 0 {
			lostClicks += CTRByPosition(best) * float64(result.SearchVolume) / 100
		}

		if targetRanked && beatenReference {
			metrics.ReferenceCompetitorWins++
		}
		if targetRanked && beatenAll {
			metrics.AllCompetitorWins++
		}
	}

	if len(gaps) > 0 {
		sum := 0
		for _, g := range gaps {
			sum += g
		}
		metrics.AveragePositionGap = int(math.Round(float64(sum) / float64(len(gaps))))
	}

	if potentialClicks > 0 {
		pct := lostClicks / potentialClicks * 100
		metrics.LostTrafficPotential = math.Round(math.Min(100, math.Max(0, pct))*10) / 10
	}

	standings := make([]models.CompetitorStanding, 0, len(wins))
	for domain, count := range wins {
		standing := models.CompetitorStanding{
			Domain:    domain,
			WinsCount: count,
		}
		if stored, ok := byDomain[domain]; ok {
			standing.AveragePosition = stored.AveragePosition
			standing.ShareOfVoice = stored.ShareOfVoice
		}
		standings = append(standings, standing)
	}

	// Deterministic order: wins descending, ties by domain name.
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].WinsCount != standings[j].WinsCount {
			return standings[i].WinsCount > standings[j].WinsCount
		}
		return standings[i].Domain < standings[j].Domain
	})

	if len(standings) > topCompetitorLimit {
		standings = standings[:topCompetitorLimit]
	}
	metrics.TopCompetitors = standings

	return metrics
}
