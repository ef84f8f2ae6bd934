package seo

import (
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// maxProjectedEntry caps the projected landing position for a currently
// unranked keyword.
const maxProjectedEntry = 20

// EstimateKeywordPotential projects an achievable position for the target and
// labels the improvement potential, given the target's current rank and the
// competitor ranks for the same keyword.
//
// A small gap to the best competitor means the keyword is close to winnable
// (high potential); a large gap means improvement will be slow (low
// potential). When the target already outranks every competitor there is
// nothing to chase: the assessment reports AlreadyLeading with no projected
// improvement.
func EstimateKeywordPotential(current models.Position, competitorRanks []int) models.PotentialAssessment {
	best := 0
	for _, rank := range competitorRanks {
		if rank < 1 {
			continue
		}
		if best == 0 || rank < best {
			best = rank
		}
	}

	if !current.IsRanked() {
		return unrankedPotential(best)
	}

	currentRank, _ := current.Rank()

	if best == 0 || currentRank <= best {
		// Already ahead of (or level with) every competitor.
		return models.PotentialAssessment{
			CurrentPosition:      current,
			ProjectedPosition:    currentRank,
			ImprovementPotential: models.PotentialLow,
			AlreadyLeading:       true,
		}
	}

	gap := currentRank - best

	var projected int
	var potential string
	switch {
	case gap <= 2:
		potential = models.PotentialHigh
		projected = maxInt(1, currentRank-1)
	case gap <= 5:
		potential = models.PotentialMedium
		projected = currentRank - ceilDiv(gap, 2)
	default:
		potential = models.PotentialLow
		projected = maxInt(1, currentRank-ceilDiv(gap, 3))
	}

	return models.PotentialAssessment{
		CurrentPosition:      current,
		ProjectedPosition:    projected,
		ImprovementPotential: potential,
	}
}

// unrankedPotential handles the case where the target does not rank at all.
func unrankedPotential(bestCompetitor int) models.PotentialAssessment {
	potential := models.PotentialMedium
	projected := maxProjectedEntry
	if bestCompetitor >= 1 {
		if bestCompetitor <= 10 {
			potential = models.PotentialHigh
		}
		projected = minInt(maxProjectedEntry, bestCompetitor+5)
	}
	return models.PotentialAssessment{
		CurrentPosition:      models.Unranked(),
		ProjectedPosition:    projected,
		ImprovementPotential: potential,
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
