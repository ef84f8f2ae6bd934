// Package analysis implements the three analysis operations of the rank
// tracker: keyword discovery, search-console sync and competitor analysis.
// Each operation executes as a recorded run with an explicit live/simulated
// mode; the first upstream failure degrades the run to simulated data for
// its remainder, and the degradation is persisted rather than hidden.
package analysis

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/config"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/email"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/metrics"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/serp"
)

// serpDepth is how many results each SERP fetch inspects.
const serpDepth = 10

// Service orchestrates analysis runs against the SERP provider and the
// database. The provider may be nil when no live API is configured; every
// run then starts directly in simulated mode.
type Service struct {
	db       *db.DB
	live     serp.Provider
	cfg      *config.Config
	notifier *email.Notifier
}

// NewService creates the analysis service.
func NewService(database *db.DB, live serp.Provider, cfg *config.Config) *Service {
	return &Service{db: database, live: live, cfg: cfg}
}

// SetNotifier enables email alerts for degraded runs.
func (s *Service) SetNotifier(n *email.Notifier) {
	s.notifier = n
}

// run is the per-request state of one analysis execution. The mode
// transition live -> simulated is one-way: once an upstream call fails the
// rest of the run reads from the simulated provider, and the run record
// says so.
type run struct {
	record    *models.AnalysisRun
	project   *models.Project
	live      serp.Provider
	simulated serp.Provider
	degraded  bool
}

func (s *Service) startRun(ctx context.Context, project *models.Project, kind string) (*run, error) {
	r := &run{
		project: project,
		record: &models.AnalysisRun{
			ProjectID: project.ID,
			Kind:      kind,
			Mode:      models.ModeLive,
			Counts:    map[string]int{},
		},
		live:      s.live,
		simulated: &serp.Simulated{TargetDomain: project.Domain},
	}

	if s.live == nil || !s.cfg.HasSerpAPI() {
		r.degrade(nil)
	}

	if err := s.db.CreateAnalysisRun(ctx, r.record); err != nil {
		return nil, err
	}
	return r, nil
}

// degrade flips the run to simulated mode. Calling it again is a no-op; the
// transition is irreversible for the lifetime of the run.
func (r *run) degrade(cause error) {
	if r.degraded {
		return
	}
	r.degraded = true
	r.record.Mode = models.ModeSimulated
	if cause != nil {
		r.record.Error = cause.Error()
		log.Printf("Analysis %s degraded to simulated mode: %v", r.record.Kind, cause)
	}
}

// provider returns the data source for the run's current mode.
func (r *run) provider() serp.Provider {
	if r.degraded {
		return r.simulated
	}
	return r.live
}

// topResults fetches a SERP, degrading to simulated data on the first
// failure. After degradation it cannot fail.
func (r *run) topResults(ctx context.Context, keyword string) ([]serp.Result, error) {
	results, err := r.provider().TopResults(ctx, keyword, serpDepth)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		r.degrade(err)
		return r.simulated.TopResults(ctx, keyword, serpDepth)
	}
	return results, nil
}

func (r *run) suggestions(ctx context.Context, seed string) ([]serp.Suggestion, error) {
	suggestions, err := r.provider().Suggestions(ctx, seed)
	if err != nil {
		if ctx.Err() != nil {
			return nil, err
		}
		r.degrade(err)
		return r.simulated.Suggestions(ctx, seed)
	}
	return suggestions, nil
}

func (r *run) searchAnalytics(ctx context.Context, domain, keyword string) (serp.AnalyticsRow, error) {
	row, err := r.provider().SearchAnalytics(ctx, domain, keyword)
	if err != nil {
		if ctx.Err() != nil {
			return serp.AnalyticsRow{}, err
		}
		r.degrade(err)
		return r.simulated.SearchAnalytics(ctx, domain, keyword)
	}
	return row, nil
}

func (s *Service) finishRun(ctx context.Context, r *run) *models.AnalysisResponse {
	if err := s.db.FinishAnalysisRun(ctx, r.record); err != nil {
		log.Printf("Failed to persist analysis run %s: %v", r.record.ID, err)
	}
	metrics.RecordAnalysisRun(r.record.Kind, r.record.Mode)

	// Alert only on an actual upstream failure, not on the configured
	// simulated-by-default mode.
	if r.degraded && r.record.Error != "" && s.notifier != nil {
		s.notifier.NotifyAnalysisDegraded(r.project, r.record)
	}

	return &models.AnalysisResponse{
		Success: true,
		Mode:    r.record.Mode,
		Counts:  r.record.Counts,
		Error:   r.record.Error,
	}
}

func (s *Service) project(ctx context.Context, projectID uuid.UUID) (*models.Project, error) {
	return s.db.GetProjectByID(ctx, projectID)
}
