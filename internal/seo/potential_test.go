package seo

import (
	"testing"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

func TestEstimateKeywordPotential(t *testing.T) {
	tests := []struct {
		name          string
		current       models.Position
		ranks         []int
		wantPotential string
		wantProjected int
		wantLeading   bool
	}{
		{
			name:          "large gap is low potential",
			current:       models.Ranked(15),
			ranks:         []int{3, 7, 20},
			wantPotential: models.PotentialLow,
			wantProjected: 11, // 15 - ceil(12/3)
		},
		{
			name:          "small gap is high potential",
			current:       models.Ranked(5),
			ranks:         []int{4},
			wantPotential: models.PotentialHigh,
			wantProjected: 4,
		},
		{
			name:          "rank 1 with competitor at rank 1 stays put",
			current:       models.Ranked(1),
			ranks:         []int{1, 8},
			wantPotential: models.PotentialLow,
			wantProjected: 1,
			wantLeading:   true,
		},
		{
			name:          "moderate gap is medium potential",
			current:       models.Ranked(12),
			ranks:         []int{8},
			wantPotential: models.PotentialMedium,
			wantProjected: 10, // 12 - ceil(4/2)
		},
		{
			name:          "unranked with competitor in top 10",
			current:       models.Unranked(),
			ranks:         []int{2, 30},
			wantPotential: models.PotentialHigh,
			wantProjected: 7, // min(20, 2+5)
		},
		{
			name:          "unranked with only weak competitors",
			current:       models.Ranked(0), // normalizes to unranked
			ranks:         []int{25},
			wantPotential: models.PotentialMedium,
			wantProjected: 20, // min(20, 25+5)
		},
		{
			name:          "unranked with no competitors",
			current:       models.Unranked(),
			ranks:         nil,
			wantPotential: models.PotentialMedium,
			wantProjected: 20,
		},
		{
			name:          "already outranking every competitor",
			current:       models.Ranked(3),
			ranks:         []int{5, 9},
			wantPotential: models.PotentialLow,
			wantProjected: 3,
			wantLeading:   true,
		},
		{
			name:          "ranked with no competitors is leading",
			current:       models.Ranked(6),
			ranks:         nil,
			wantPotential: models.PotentialLow,
			wantProjected: 6,
			wantLeading:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateKeywordPotential(tt.current, tt.ranks)
			if got.ImprovementPotential != tt.wantPotential {
				t.Errorf("potential = %q, want %q", got.ImprovementPotential, tt.wantPotential)
			}
			if got.ProjectedPosition != tt.wantProjected {
				t.Errorf("projected = %d, want %d", got.ProjectedPosition, tt.wantProjected)
			}
			if got.AlreadyLeading != tt.wantLeading {
				t.Errorf("alreadyLeading = %v, want %v", got.AlreadyLeading, tt.wantLeading)
			}
		})
	}
}

// The projection never claims a worse position than the current one and
// never goes above rank 1.
func TestEstimateKeywordPotentialBounds(t *testing.T) {
	for current := 1; current <= 60; current++ {
		for best := 1; best <= 60; best++ {
			got := EstimateKeywordPotential(models.Ranked(current), []int{best})
			if got.ProjectedPosition < 1 {
				t.Fatalf("current=%d best=%d: projected %d < 1", current, best, got.ProjectedPosition)
			}
			if got.ProjectedPosition > current {
				t.Fatalf("current=%d best=%d: projected %d worse than current", current, best, got.ProjectedPosition)
			}
		}
	}
}
