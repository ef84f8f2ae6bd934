package db

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

const projectColumns = `id, name, domain, owner_id, created_at, updated_at`

func scanProject(row pgx.Row) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Domain,
		&p.OwnerID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// CreateProject creates a new tracked project. The domain must be normalized
// before calling.
func (d *DB) CreateProject(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (name, domain, owner_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := d.Pool.QueryRow(ctx, query,
		project.Name,
		project.Domain,
		project.OwnerID,
	).Scan(&project.ID, &project.CreatedAt, &project.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateProject
		}
		return err
	}
	return nil
}

// GetProjectByID retrieves a project by ID.
func (d *DB) GetProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	return scanProject(d.Pool.QueryRow(ctx, query, id))
}

// GetProjectByDomain retrieves a project by its normalized domain.
func (d *DB) GetProjectByDomain(ctx context.Context, domain string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE domain = $1`
	return scanProject(d.Pool.QueryRow(ctx, query, domain))
}

// ListProjects returns all projects, newest first.
func (d *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := d.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Domain, &p.OwnerID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// DeleteProject removes a project and all its dependent rows.
func (d *DB) DeleteProject(ctx context.Context, id uuid.UUID) error {
	tag, err := d.Pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProjectNotFound
	}
	return nil
}
