package models

import (
	"time"

	"github.com/google/uuid"
)

// Analysis run kinds.
const (
	RunDiscoverKeywords   = "discover-keywords"
	RunSyncSearchConsole  = "sync-search-console"
	RunCompetitorAnalysis = "competitor-analysis"
)

// Analysis run modes. A run starts live and may degrade to simulated on the
// first upstream failure; the transition is one-way for the lifetime of the
// run and is persisted so consumers can tell real data from placeholder data.
const (
	ModeLive      = "live"
	ModeSimulated = "simulated"
)

// AnalysisRun records one execution of an analysis operation.
type AnalysisRun struct {
	ID         uuid.UUID      `json:"id"`
	ProjectID  uuid.UUID      `json:"project_id"`
	Kind       string         `json:"kind"`
	Mode       string         `json:"mode"`
	Counts     map[string]int `json:"counts"`
	Error      string         `json:"error,omitempty"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt *time.Time     `json:"finished_at"`
}
