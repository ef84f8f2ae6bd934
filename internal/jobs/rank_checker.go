package jobs

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/serp"
)

// batchSize caps how many stale keywords one pass refreshes.
const batchSize = 50

// RankChecker refreshes stale keyword positions in the background, so the
// dashboard stays current without waiting for a manual sync. Keywords whose
// last check is older than maxAge are refreshed oldest first.
type RankChecker struct {
	db       *db.DB
	live     serp.Provider
	interval time.Duration
	maxAge   time.Duration
}

// NewRankChecker creates a new rank checker. The live provider may be nil;
// stale keywords are then refreshed with simulated data.
func NewRankChecker(database *db.DB, live serp.Provider, interval, maxAge time.Duration) *RankChecker {
	return &RankChecker{
		db:       database,
		live:     live,
		interval: interval,
		maxAge:   maxAge,
	}
}

// Start begins the background refresh loop.
func (r *RankChecker) Start(ctx context.Context) {
	log.Printf("Rank checker started (interval: %v, maxAge: %v)", r.interval, r.maxAge)

	// Run immediately on start
	r.checkAll(ctx)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Rank checker stopped")
			return
		case <-ticker.C:
			r.checkAll(ctx)
		}
	}
}

// checkAll refreshes one batch of stale keywords.
func (r *RankChecker) checkAll(ctx context.Context) {
	keywords, err := r.db.ListStaleKeywords(ctx, r.maxAge, batchSize)
	if err != nil {
		log.Printf("Rank checker: failed to get stale keywords: %v", err)
		return
	}

	if len(keywords) == 0 {
		return
	}

	log.Printf("Rank checker: refreshing %d keywords", len(keywords))

	projects := make(map[uuid.UUID]*models.Project)

	for _, keyword := range keywords {
		select {
		case <-ctx.Done():
			return
		default:
		}

		project, ok := projects[keyword.ProjectID]
		if !ok {
			project, err = r.db.GetProjectByID(ctx, keyword.ProjectID)
			if err != nil {
				log.Printf("Rank checker: failed to get project for %q: %v", keyword.Keyword, err)
				continue
			}
			projects[keyword.ProjectID] = project
		}

		row, err := r.provider(project).SearchAnalytics(ctx, project.Domain, keyword.Keyword)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Rank checker: lookup failed for %q: %v", keyword.Keyword, err)
			continue
		}

		position := models.Unranked()
		if row.Position >= 1 {
			position = models.Ranked(int(math.Round(row.Position)))
		}

		volume := keyword.SearchVolume
		if row.Impressions > 0 {
			volume = row.Impressions
		}

		if err := r.db.UpdateKeywordPosition(ctx, keyword.ID, position, volume); err != nil {
			log.Printf("Rank checker: failed to update %q: %v", keyword.Keyword, err)
		}
	}
}

// provider picks the data source for a project. The live client already
// paces its own calls, so no extra delay is needed here.
func (r *RankChecker) provider(project *models.Project) serp.Provider {
	if r.live != nil {
		return r.live
	}
	return &serp.Simulated{TargetDomain: project.Domain}
}
