package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// LocationRepository handles database operations for candidate locations
type LocationRepository struct {
	db *sql.DB
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(db *sql.DB) *LocationRepository {
	return &LocationRepository{db: db}
}

// Upsert inserts or replaces a candidate location.
func (r *LocationRepository) Upsert(ctx context.Context, loc models.CandidateLocation) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO candidate_locations (id, name, lat, lon, zone)
		VALUES (?, ?, ?, ?, ?)
	`, loc.ID, loc.Name, loc.Lat, loc.Lon, loc.Zone)
	if err != nil {
		return fmt.Errorf("failed to upsert location %s: %w", loc.ID, err)
	}
	return nil
}

// UpsertBatch writes locations in one transaction.
func (r *LocationRepository) UpsertBatch(ctx context.Context, locs []models.CandidateLocation) error {
	if len(locs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO candidate_locations (id, name, lat, lon, zone)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare location insert: %w", err)
	}
	defer stmt.Close()

	for _, loc := range locs {
		if _, err := stmt.ExecContext(ctx, loc.ID, loc.Name, loc.Lat, loc.Lon, loc.Zone); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert location %s: %w", loc.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit locations: %w", err)
	}
	return nil
}

// List returns every candidate location, ordered by ID for deterministic scans.
func (r *LocationRepository) List(ctx context.Context) ([]models.CandidateLocation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, lat, lon, zone FROM candidate_locations ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query locations: %w", err)
	}
	defer rows.Close()

	var locs []models.CandidateLocation
	for rows.Next() {
		var loc models.CandidateLocation
		if err := rows.Scan(&loc.ID, &loc.Name, &loc.Lat, &loc.Lon, &loc.Zone); err != nil {
			return nil, fmt.Errorf("failed to scan location: %w", err)
		}
		locs = append(locs, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read locations: %w", err)
	}
	return locs, nil
}

// GetByID retrieves a single candidate location, nil when absent.
func (r *LocationRepository) GetByID(ctx context.Context, id string) (*models.CandidateLocation, error) {
	var loc models.CandidateLocation
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, lat, lon, zone FROM candidate_locations WHERE id = ?
	`, id).Scan(&loc.ID, &loc.Name, &loc.Lat, &loc.Lon, &loc.Zone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get location %s: %w", id, err)
	}
	return &loc, nil
}
