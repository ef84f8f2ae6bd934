package models

// AnalysisResponse is the JSON summary returned by the analysis endpoints.
type AnalysisResponse struct {
	Success bool           `json:"success"`
	Mode    string         `json:"mode"`
	Counts  map[string]int `json:"counts"`
	Error   string         `json:"error,omitempty"`
}

// KeywordView is a keyword annotated with its derived display fields.
type KeywordView struct {
	Keyword    Keyword              `json:"keyword"`
	Difficulty DifficultyAssessment `json:"difficulty"`
	Potential  PotentialAssessment  `json:"potential"`
}

// SerpLookup is an aggregated outbound-lookup counter row, exported to
// Prometheus by the custom collector.
type SerpLookup struct {
	Provider string `json:"provider"`
	Outcome  string `json:"outcome"`
	Count    int64  `json:"count"`
}
