package db

import (
	"context"

	"github.com/Pedro39-dash/site-posi-finder-sub002/internal/models"
)

// IncrementSerpLookup bumps the counter for a (provider, outcome) pair.
func (d *DB) IncrementSerpLookup(ctx context.Context, provider, outcome string) error {
	query := `
		INSERT INTO serp_lookups (provider, outcome, count)
		VALUES ($1, $2, 1)
		ON CONFLICT (provider, outcome) DO UPDATE SET count = serp_lookups.count + 1
	`
	_, err := d.Pool.Exec(ctx, query, provider, outcome)
	return err
}

// GetAllSerpLookups returns every lookup counter, for the Prometheus collector.
func (d *DB) GetAllSerpLookups(ctx context.Context) ([]models.SerpLookup, error) {
	rows, err := d.Pool.Query(ctx, `SELECT provider, outcome, count FROM serp_lookups`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lookups []models.SerpLookup
	for rows.Next() {
		var l models.SerpLookup
		if err := rows.Scan(&l.Provider, &l.Outcome, &l.Count); err != nil {
			return nil, err
		}
		lookups = append(lookups, l)
	}
	return lookups, rows.Err()
}
