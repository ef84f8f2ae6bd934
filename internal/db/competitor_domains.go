package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

const competitorColumns = `id, project_id, domain, average_position, total_keywords_found, share_of_voice, detected_automatically, created_at, updated_at`

func scanCompetitor(row pgx.Row) (*models.CompetitorDomain, error) {
	var c models.CompetitorDomain
	err := row.Scan(
		&c.ID,
		&c.ProjectID,
		&c.Domain,
		&c.AveragePosition,
		&c.TotalKeywordsFound,
		&c.ShareOfVoice,
		&c.DetectedAutomatically,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCompetitorNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// UpsertCompetitorDomain creates or refreshes a competitor row for a project.
// A reference competitor never loses its flag to an auto-detected observation
// of the same domain.
func (d *DB) UpsertCompetitorDomain(ctx context.Context, competitor *models.CompetitorDomain) error {
	query := `
		INSERT INTO competitor_domains
			(project_id, domain, average_position, total_keywords_found, share_of_voice, detected_automatically)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (project_id, domain) DO UPDATE SET
			average_position = EXCLUDED.average_position,
			total_keywords_found = EXCLUDED.total_keywords_found,
			share_of_voice = EXCLUDED.share_of_voice,
			detected_automatically = competitor_domains.detected_automatically AND EXCLUDED.detected_automatically,
			updated_at = NOW()
		RETURNING id, detected_automatically, created_at, updated_at
	`

	return d.Pool.QueryRow(ctx, query,
		competitor.ProjectID,
		competitor.Domain,
		competitor.AveragePosition,
		competitor.TotalKeywordsFound,
		competitor.ShareOfVoice,
		competitor.DetectedAutomatically,
	).Scan(&competitor.ID, &competitor.DetectedAutomatically, &competitor.CreatedAt, &competitor.UpdatedAt)
}

// MarkReferenceCompetitor registers a user-supplied competitor domain. If
// the domain is already tracked its stats are preserved and only the
// reference flag is set.
func (d *DB) MarkReferenceCompetitor(ctx context.Context, projectID uuid.UUID, domain string) (*models.CompetitorDomain, error) {
	query := `
		INSERT INTO competitor_domains (project_id, domain, detected_automatically)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (project_id, domain) DO UPDATE SET
			detected_automatically = FALSE,
			updated_at = NOW()
		RETURNING ` + competitorColumns + `
	`
	return scanCompetitor(d.Pool.QueryRow(ctx, query, projectID, domain))
}

// GetCompetitorByDomain retrieves one competitor row.
func (d *DB) GetCompetitorByDomain(ctx context.Context, projectID uuid.UUID, domain string) (*models.CompetitorDomain, error) {
	query := `SELECT ` + competitorColumns + ` FROM competitor_domains WHERE project_id = $1 AND domain = $2`
	return scanCompetitor(d.Pool.QueryRow(ctx, query, projectID, domain))
}

// ListCompetitorDomains returns a project's competitors ordered by average
// position, best first.
func (d *DB) ListCompetitorDomains(ctx context.Context, projectID uuid.UUID) ([]models.CompetitorDomain, error) {
	query := `
		SELECT ` + competitorColumns + `
		FROM competitor_domains
		WHERE project_id = $1
		ORDER BY average_position, domain
	`

	rows, err := d.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var competitors []models.CompetitorDomain
	for rows.Next() {
		var c models.CompetitorDomain
		if err := rows.Scan(&c.ID, &c.ProjectID, &c.Domain, &c.AveragePosition, &c.TotalKeywordsFound, &c.ShareOfVoice, &c.DetectedAutomatically, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		competitors = append(competitors, c)
	}
	return competitors, rows.Err()
}

// DeleteCompetitorDomain removes a competitor row.
func (d *DB) DeleteCompetitorDomain(ctx context.Context, id uuid.UUID) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM competitor_domains WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCompetitorNotFound
	}
	return nil
}
