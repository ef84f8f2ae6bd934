package models

import (
	"time"

	"github.com/google/uuid"
)

// CompetitorDomain is a persisted competitor row for a project, written by
// the competitor-analysis operation and read by the dashboard.
type CompetitorDomain struct {
	ID                    uuid.UUID `json:"id"`
	ProjectID             uuid.UUID `json:"project_id"`
	Domain                string    `json:"domain"`
	AveragePosition       float64   `json:"average_position"`
	TotalKeywordsFound    int       `json:"total_keywords_found"`
	ShareOfVoice          float64   `json:"share_of_voice"`
	DetectedAutomatically bool      `json:"detected_automatically"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// IsReference reports whether the competitor was supplied by the user rather
// than auto-detected from search results.
func (c CompetitorDomain) IsReference() bool {
	return !c.DetectedAutomatically
}
