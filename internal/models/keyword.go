package models

import (
	"time"

	"github.com/google/uuid"
)

// Keyword is a tracked search query for a project.
type Keyword struct {
	ID             uuid.UUID  `json:"id"`
	ProjectID      uuid.UUID  `json:"project_id"`
	Keyword        string     `json:"keyword"`
	SearchVolume   int        `json:"search_volume"`
	TargetPosition Position   `json:"target_position"`
	CheckedAt      *time.Time `json:"checked_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// CompetitorPosition is one competitor's rank for a single keyword.
type CompetitorPosition struct {
	Domain   string `json:"domain"`
	Position int    `json:"position"`
}

// KeywordResult is the raw input to the derivation pipeline: one keyword,
// the target's rank (if any) and every competitor rank observed on the SERP.
type KeywordResult struct {
	Keyword             string               `json:"keyword"`
	SearchVolume        int                  `json:"search_volume"`
	TargetPosition      Position             `json:"target_position"`
	CompetitorPositions []CompetitorPosition `json:"competitor_positions"`
}

// BestCompetitorPosition returns the best (lowest) valid competitor rank.
// Ranks below 1 are ignored.
func (r KeywordResult) BestCompetitorPosition() Position {
	best := Unranked()
	for _, cp := range r.CompetitorPositions {
		p := Ranked(cp.Position)
		if p.Better(best) {
			best = p
		}
	}
	return best
}

// PositionSample is one historic rank observation for a keyword, used by the
// dashboard history charts.
type PositionSample struct {
	Date      time.Time `json:"date"`
	Position  Position  `json:"position"`
	Synthetic bool      `json:"synthetic"`
}
