package analysis

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// SyncSearchConsole refreshes each tracked keyword's target position and
// search volume from the search-analytics API. The paced client applies the
// fixed inter-call delay between keyword lookups.
func (s *Service) SyncSearchConsole(ctx context.Context, projectID uuid.UUID) (*models.AnalysisResponse, error) {
	project, err := s.project(ctx, projectID)
	if err != nil {
		return nil, err
	}

	r, err := s.startRun(ctx, project, models.RunSyncSearchConsole)
	if err != nil {
		return nil, err
	}

	keywords, err := s.db.ListKeywords(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	synced := 0
	for _, keyword := range keywords {
		row, err := r.searchAnalytics(ctx, project.Domain, keyword.Keyword)
		if err != nil {
			return nil, err
		}

		position := models.Unranked()
		if row.Position >= 1 {
			position = models.Ranked(int(math.Round(row.Position)))
		}

		volume := keyword.SearchVolume
		if row.Impressions > 0 {
			volume = row.Impressions
		}

		if err := s.db.UpdateKeywordPosition(ctx, keyword.ID, position, volume); err != nil {
			return nil, err
		}
		synced++
	}

	r.record.Counts["synced"] = synced
	return s.finishRun(ctx, r), nil
}
