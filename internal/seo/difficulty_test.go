package seo

import (
	"testing"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

func TestCalculateKeywordDifficultyBands(t *testing.T) {
	tests := []struct {
		name      string
		ranks     []int
		wantLevel string
	}{
		{"no competitors", nil, models.DifficultyLow},
		{"single weak competitor", []int{45}, models.DifficultyLow},
		{"two in top 10, best at 3", []int{3, 7, 20}, models.DifficultyHigh},
		{"crowded top 10", []int{1, 2, 3, 4, 5, 6, 7, 8}, models.DifficultyVeryHigh},
		{"invalid ranks ignored", []int{0, -5}, models.DifficultyLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateKeywordDifficulty(tt.ranks)
			if got.Level != tt.wantLevel {
				t.Errorf("level = %q (score %d), want %q", got.Level, got.Score, tt.wantLevel)
			}
			if got.Score < 0 || got.Score > 100 {
				t.Errorf("score %d out of [0,100]", got.Score)
			}
			if got.Description == "" {
				t.Error("description is empty")
			}
		})
	}
}

// Adding a competitor at rank 1 must never decrease the score.
func TestCalculateKeywordDifficultyMonotonic(t *testing.T) {
	lists := [][]int{
		nil,
		{50},
		{11, 15},
		{3, 7, 20},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}

	for _, ranks := range lists {
		before := CalculateKeywordDifficulty(ranks).Score
		after := CalculateKeywordDifficulty(append(append([]int{}, ranks...), 1)).Score
		if after < before {
			t.Errorf("score decreased from %d to %d after adding rank-1 competitor to %v", before, after, ranks)
		}
	}
}

// "seo tools": target rank 15, competitors at [3, 7, 20]. Two competitors
// beat the target and the best sits at rank 3, so difficulty must land in
// the medium/high band.
func TestCalculateKeywordDifficultyScenarioSeoTools(t *testing.T) {
	got := CalculateKeywordDifficulty([]int{3, 7, 20})
	if got.Level != models.DifficultyMedium && got.Level != models.DifficultyHigh {
		t.Errorf("level = %q (score %d), want medium or high", got.Level, got.Score)
	}
}
