package seo

import (
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// difficulty score bands
const (
	difficultyMediumFrom   = 30
	difficultyHighFrom     = 55
	difficultyVeryHighFrom = 80
)

// CalculateKeywordDifficulty scores how hard a keyword is to rank for, from
// the competitor ranks observed on its SERP. The score grows with the number
// of competitors in the top 10 and with how close the best competitor sits to
// rank 1; adding a competitor or improving one's rank never lowers the score.
// Ranks below 1 are ignored.
func CalculateKeywordDifficulty(competitorRanks []int) models.DifficultyAssessment {
	best := 0
	inTop10 := 0
	for _, rank := range competitorRanks {
		if rank < 1 {
			continue
		}
		if best == 0 || rank < best {
			best = rank
		}
		if rank <= 10 {
			inTop10++
		}
	}

	// No competitors: keep the baseline as if the best competitor sat beyond
	// the top 10, so adding one can only push the score up.
	bestCapped := 10
	if best > 0 && best < 10 {
		bestCapped = best
	}

	score := 25 + (10-bestCapped)*4 + inTop10*5
	score = clamp(score, 0, 100)

	level := models.DifficultyLow
	description := "Low competition, good ranking opportunity"
	switch {
	case score >= difficultyVeryHighFrom:
		level = models.DifficultyVeryHigh
		description = "Very strong competition, ranking will take significant effort"
	case score >= difficultyHighFrom:
		level = models.DifficultyHigh
		description = "Strong competition in the top results"
	case score >= difficultyMediumFrom:
		level = models.DifficultyMedium
		description = "Moderate competition"
	}

	return models.DifficultyAssessment{
		Level:       level,
		Score:       score,
		Description: description,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
