package analysis

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/db"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/validation"
)

// DiscoverKeywords expands the seed terms through the suggestion API and
// persists new keyword rows for the project. Suggestions are deduplicated
// case-insensitively, keeping the highest reported volume per keyword;
// keywords the project already tracks are skipped.
func (s *Service) DiscoverKeywords(ctx context.Context, projectID uuid.UUID, seeds []string) (*models.AnalysisResponse, error) {
	project, err := s.project(ctx, projectID)
	if err != nil {
		return nil, err
	}

	r, err := s.startRun(ctx, project, models.RunDiscoverKeywords)
	if err != nil {
		return nil, err
	}

	// Dedupe across all seeds before touching the database.
	bestVolume := make(map[string]int)
	var order []string
	for _, seed := range seeds {
		seed = validation.NormalizeKeyword(seed)
		if seed == "" {
			continue
		}

		suggestions, err := r.suggestions(ctx, seed)
		if err != nil {
			return nil, err
		}
		for _, sg := range suggestions {
			keyword := validation.NormalizeKeyword(sg.Keyword)
			if !validation.ValidateKeyword(keyword) {
				continue
			}
			if _, seen := bestVolume[keyword]; !seen {
				order = append(order, keyword)
			}
			if sg.SearchVolume > bestVolume[keyword] {
				bestVolume[keyword] = sg.SearchVolume
			}
		}
	}

	discovered, skipped := 0, 0
	for _, keyword := range order {
		row := &models.Keyword{
			ProjectID:    project.ID,
			Keyword:      keyword,
			SearchVolume: bestVolume[keyword],
		}
		err := s.db.CreateKeyword(ctx, row)
		if errors.Is(err, db.ErrDuplicateKeyword) {
			skipped++
			continue
		}
		if err != nil {
			return nil, err
		}
		discovered++
	}

	r.record.Counts["discovered"] = discovered
	r.record.Counts["skipped"] = skipped
	return s.finishRun(ctx, r), nil
}
