package analysis

import (
	"context"

	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/seo"
)

// CompetitorAnalysis fetches the top SERP for every tracked keyword, records
// the competitor positions per keyword and folds them into per-domain
// aggregate rows: average position, keywords found and share of voice.
// Previously known reference competitors keep their flag; new domains are
// marked auto-detected.
func (s *Service) CompetitorAnalysis(ctx context.Context, projectID uuid.UUID) (*models.AnalysisResponse, error) {
	project, err := s.project(ctx, projectID)
	if err != nil {
		return nil, err
	}

	r, err := s.startRun(ctx, project, models.RunCompetitorAnalysis)
	if err != nil {
		return nil, err
	}

	keywords, err := s.db.ListKeywords(ctx, project.ID)
	if err != nil {
		return nil, err
	}

	targetDomain := seo.NormalizeDomain(project.Domain)

	type domainStats struct {
		positionSum int
		keywords    int
		top10Slots  int
	}
	stats := make(map[string]*domainStats)
	totalTop10Slots := 0
	analyzed := 0

	for _, keyword := range keywords {
		results, err := r.topResults(ctx, keyword.Keyword)
		if err != nil {
			return nil, err
		}
		analyzed++

		targetPosition := models.Unranked()
		var competitorPositions []models.CompetitorPosition
		for _, result := range results {
			domain := seo.NormalizeDomain(result.Domain)
			if domain == targetDomain {
				// Keep the best rank if the target appears more than once.
				if p := models.Ranked(result.Position); p.Better(targetPosition) {
					targetPosition = p
				}
				continue
			}

			competitorPositions = append(competitorPositions, models.CompetitorPosition{
				Domain:   domain,
				Position: result.Position,
			})

			st := stats[domain]
			if st == nil {
				st = &domainStats{}
				stats[domain] = st
			}
			st.positionSum += result.Position
			st.keywords++
			if result.Position <= 10 {
				st.top10Slots++
			}
			if result.Position <= 10 {
				totalTop10Slots++
			}
		}

		if err := s.db.ReplaceKeywordPositions(ctx, keyword.ID, competitorPositions); err != nil {
			return nil, err
		}
		if targetPosition.IsRanked() {
			if err := s.db.UpdateKeywordPosition(ctx, keyword.ID, targetPosition, keyword.SearchVolume); err != nil {
				return nil, err
			}
		}
	}

	found := 0
	for domain, st := range stats {
		shareOfVoice := 0.0
		if totalTop10Slots > 0 {
			shareOfVoice = float64(st.top10Slots) / float64(totalTop10Slots) * 100
		}

		competitor := &models.CompetitorDomain{
			ProjectID:             project.ID,
			Domain:                domain,
			AveragePosition:       float64(st.positionSum) / float64(st.keywords),
			TotalKeywordsFound:    st.keywords,
			ShareOfVoice:          shareOfVoice,
			DetectedAutomatically: true,
		}
		if err := s.db.UpsertCompetitorDomain(ctx, competitor); err != nil {
			return nil, err
		}
		found++
	}

	r.record.Counts["keywordsAnalyzed"] = analyzed
	r.record.Counts["competitorsFound"] = found
	return s.finishRun(ctx, r), nil
}

// AddReferenceCompetitor registers a user-supplied competitor domain for a
// project. Reference competitors survive auto-detection and are weighted in
// the reference-win aggregate.
func (s *Service) AddReferenceCompetitor(ctx context.Context, projectID uuid.UUID, domain string) (*models.CompetitorDomain, error) {
	return s.db.MarkReferenceCompetitor(ctx, projectID, seo.NormalizeDomain(domain))
}
