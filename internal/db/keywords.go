package db

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

const keywordColumns = `id, project_id, keyword, search_volume, target_position, checked_at, created_at, updated_at`

func scanKeyword(row pgx.Row) (*models.Keyword, error) {
	var k models.Keyword
	var target *int
	err := row.Scan(
		&k.ID,
		&k.ProjectID,
		&k.Keyword,
		&k.SearchVolume,
		&target,
		&k.CheckedAt,
		&k.CreatedAt,
		&k.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrKeywordNotFound
	}
	if err != nil {
		return nil, err
	}
	k.TargetPosition = positionFrom(target)
	return &k, nil
}

func positionFrom(rank *int) models.Position {
	if rank == nil {
		return models.Unranked()
	}
	return models.Ranked(*rank)
}

func positionTo(p models.Position) *int {
	if rank, ok := p.Rank(); ok {
		return &rank
	}
	return nil
}

// CreateKeyword adds a keyword to a project. The keyword must be normalized
// before calling.
func (d *DB) CreateKeyword(ctx context.Context, keyword *models.Keyword) error {
	query := `
		INSERT INTO keywords (project_id, keyword, search_volume, target_position)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := d.Pool.QueryRow(ctx, query,
		keyword.ProjectID,
		keyword.Keyword,
		keyword.SearchVolume,
		positionTo(keyword.TargetPosition),
	).Scan(&keyword.ID, &keyword.CreatedAt, &keyword.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateKeyword
		}
		return err
	}
	return nil
}

// GetKeywordByID retrieves a keyword by ID.
func (d *DB) GetKeywordByID(ctx context.Context, id uuid.UUID) (*models.Keyword, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE id = $1`
	return scanKeyword(d.Pool.QueryRow(ctx, query, id))
}

// ListKeywords returns a project's keywords, alphabetical.
func (d *DB) ListKeywords(ctx context.Context, projectID uuid.UUID) ([]models.Keyword, error) {
	query := `SELECT ` + keywordColumns + ` FROM keywords WHERE project_id = $1 ORDER BY keyword`

	rows, err := d.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []models.Keyword
	for rows.Next() {
		var k models.Keyword
		var target *int
		if err := rows.Scan(&k.ID, &k.ProjectID, &k.Keyword, &k.SearchVolume, &target, &k.CheckedAt, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, err
		}
		k.TargetPosition = positionFrom(target)
		keywords = append(keywords, k)
	}
	return keywords, rows.Err()
}

// ListStaleKeywords returns keywords whose last position check is older than
// maxAge (or that were never checked), oldest first, up to limit rows.
func (d *DB) ListStaleKeywords(ctx context.Context, maxAge time.Duration, limit int) ([]models.Keyword, error) {
	cutoff := time.Now().Add(-maxAge)
	query := `
		SELECT ` + keywordColumns + `
		FROM keywords
		WHERE checked_at IS NULL OR checked_at < $1
		ORDER BY checked_at NULLS FIRST
		LIMIT $2
	`

	rows, err := d.Pool.Query(ctx, query, cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []models.Keyword
	for rows.Next() {
		var k models.Keyword
		var target *int
		if err := rows.Scan(&k.ID, &k.ProjectID, &k.Keyword, &k.SearchVolume, &target, &k.CheckedAt, &k.CreatedAt, &k.UpdatedAt); err != nil {
			return nil, err
		}
		k.TargetPosition = positionFrom(target)
		keywords = append(keywords, k)
	}
	return keywords, rows.Err()
}

// UpdateKeywordPosition stores a fresh target position and volume for a
// keyword and stamps it as checked.
func (d *DB) UpdateKeywordPosition(ctx context.Context, id uuid.UUID, position models.Position, searchVolume int) error {
	query := `
		UPDATE keywords
		SET target_position = $2, search_volume = $3, checked_at = NOW(), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := d.Pool.Exec(ctx, query, id, positionTo(position), searchVolume)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrKeywordNotFound
	}
	return nil
}

// DeleteKeyword removes a keyword and its stored positions.
func (d *DB) DeleteKeyword(ctx context.Context, id uuid.UUID) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM keywords WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrKeywordNotFound
	}
	return nil
}

// ReplaceKeywordPositions replaces the stored competitor positions for a
// keyword with a fresh observation set.
func (d *DB) ReplaceKeywordPositions(ctx context.Context, keywordID uuid.UUID, positions []models.CompetitorPosition) error {
	tx, err := d.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM keyword_positions WHERE keyword_id = $1`, keywordID); err != nil {
		return err
	}

	for _, cp := range positions {
		if cp.Position < 1 {
			continue
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO keyword_positions (keyword_id, domain, position)
			VALUES ($1, $2, $3)
			ON CONFLICT (keyword_id, domain) DO UPDATE SET position = EXCLUDED.position, observed_at = NOW()
		`, keywordID, cp.Domain, cp.Position); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// ListKeywordResults assembles the derivation-pipeline input for a project:
// every keyword with its target position and stored competitor positions.
func (d *DB) ListKeywordResults(ctx context.Context, projectID uuid.UUID) ([]models.KeywordResult, error) {
	keywords, err := d.ListKeywords(ctx, projectID)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT kp.keyword_id, kp.domain, kp.position
		FROM keyword_positions kp
		JOIN keywords k ON k.id = kp.keyword_id
		WHERE k.project_id = $1
	`
	rows, err := d.Pool.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byKeyword := make(map[uuid.UUID][]models.CompetitorPosition)
	for rows.Next() {
		var keywordID uuid.UUID
		var cp models.CompetitorPosition
		if err := rows.Scan(&keywordID, &cp.Domain, &cp.Position); err != nil {
			return nil, err
		}
		byKeyword[keywordID] = append(byKeyword[keywordID], cp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	results := make([]models.KeywordResult, 0, len(keywords))
	for _, k := range keywords {
		results = append(results, models.KeywordResult{
			Keyword:             k.Keyword,
			SearchVolume:        k.SearchVolume,
			TargetPosition:      k.TargetPosition,
			CompetitorPositions: byKeyword[k.ID],
		})
	}
	return results, nil
}
