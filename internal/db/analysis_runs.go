package db

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// CreateAnalysisRun records the start of an analysis run.
func (d *DB) CreateAnalysisRun(ctx context.Context, run *models.AnalysisRun) error {
	query := `
		INSERT INTO analysis_runs (project_id, kind, mode)
		VALUES ($1, $2, $3)
		RETURNING id, started_at
	`
	return d.Pool.QueryRow(ctx, query, run.ProjectID, run.Kind, run.Mode).
		Scan(&run.ID, &run.StartedAt)
}

// FinishAnalysisRun stores the final mode, counts and error of a run.
func (d *DB) FinishAnalysisRun(ctx context.Context, run *models.AnalysisRun) error {
	counts, err := json.Marshal(run.Counts)
	if err != nil {
		return err
	}

	query := `
		UPDATE analysis_runs
		SET mode = $2, counts = $3, error = $4, finished_at = NOW()
		WHERE id = $1
		RETURNING finished_at
	`
	return d.Pool.QueryRow(ctx, query, run.ID, run.Mode, counts, run.Error).
		Scan(&run.FinishedAt)
}

// ListAnalysisRuns returns a project's runs, newest first, up to limit rows.
func (d *DB) ListAnalysisRuns(ctx context.Context, projectID uuid.UUID, limit int) ([]models.AnalysisRun, error) {
	query := `
		SELECT id, project_id, kind, mode, counts, error, started_at, finished_at
		FROM analysis_runs
		WHERE project_id = $1
		ORDER BY started_at DESC
		LIMIT $2
	`

	rows, err := d.Pool.Query(ctx, query, projectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []models.AnalysisRun
	for rows.Next() {
		var run models.AnalysisRun
		var counts []byte
		if err := rows.Scan(&run.ID, &run.ProjectID, &run.Kind, &run.Mode, &counts, &run.Error, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(counts, &run.Counts); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetAnalysisRun retrieves a single run by ID.
func (d *DB) GetAnalysisRun(ctx context.Context, id uuid.UUID) (*models.AnalysisRun, error) {
	query := `
		SELECT id, project_id, kind, mode, counts, error, started_at, finished_at
		FROM analysis_runs
		WHERE id = $1
	`

	var run models.AnalysisRun
	var counts []byte
	err := d.Pool.QueryRow(ctx, query, id).
		Scan(&run.ID, &run.ProjectID, &run.Kind, &run.Mode, &counts, &run.Error, &run.StartedAt, &run.FinishedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(counts, &run.Counts); err != nil {
		return nil, err
	}
	return &run, nil
}
