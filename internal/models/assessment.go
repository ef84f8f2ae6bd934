package models

// Difficulty levels.
const (
	DifficultyLow      = "low"
	DifficultyMedium   = "medium"
	DifficultyHigh     = "high"
	DifficultyVeryHigh = "very-high"
)

// Improvement potential labels.
const (
	PotentialHigh   = "high"
	PotentialMedium = "medium"
	PotentialLow    = "low"
)

// DifficultyAssessment describes how hard it is to rank for a keyword given
// the competitors already on the SERP. Derived, never stored.
type DifficultyAssessment struct {
	Level       string `json:"level"` // low, medium, high, very-high
	Score       int    `json:"score"` // 0-100
	Description string `json:"description"`
}

// PotentialAssessment projects an achievable position for a keyword and
// labels how much improvement is realistic. Derived, never stored.
type PotentialAssessment struct {
	CurrentPosition      Position `json:"current_position"`
	ProjectedPosition    int      `json:"projected_position"`
	ImprovementPotential string   `json:"improvement_potential"` // high, medium, low
	AlreadyLeading       bool     `json:"already_leading"`
}

// CompetitorStanding is one entry of the top-competitor ranking inside
// CompetitiveMetrics.
type CompetitorStanding struct {
	Domain          string  `json:"domain"`
	WinsCount       int     `json:"wins_count"`
	AveragePosition float64 `json:"average_position"`
	ShareOfVoice    float64 `json:"share_of_voice"`
}

// CompetitiveMetrics is the domain-level aggregate over a keyword set.
// Wholly derived; recomputed per request.
type CompetitiveMetrics struct {
	AveragePositionGap     int                  `json:"average_position_gap"`
	LostTrafficPotential   float64              `json:"lost_traffic_potential"` // percent
	TopCompetitors         []CompetitorStanding `json:"top_competitors"`
	ReferenceCompetitorWins int                 `json:"reference_competitor_wins"`
	AllCompetitorWins      int                  `json:"all_competitor_wins"`
	TotalKeywords          int                  `json:"total_keywords"`
}
