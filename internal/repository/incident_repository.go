package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/models"
)

// IncidentFilter narrows incident queries. Zero values mean no filter.
type IncidentFilter struct {
	Category string
	Source   string
	Since    time.Time
	Until    time.Time
	Limit    int
}

// IncidentRepository handles database operations for incident reports
type IncidentRepository struct {
	db *sql.DB
}

// NewIncidentRepository creates a new incident repository
func NewIncidentRepository(db *sql.DB) *IncidentRepository {
	return &IncidentRepository{db: db}
}

// InsertBatch writes incidents in one transaction. Existing IDs are replaced
// so re-ingesting the same feed is idempotent.
func (r *IncidentRepository) InsertBatch(ctx context.Context, incidents []models.Incident) error {
	if len(incidents) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR REPLACE INTO incidents (id, occurred_at, hour, lat, lon, category, severity, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare incident insert: %w", err)
	}
	defer stmt.Close()

	for _, inc := range incidents {
		_, err := stmt.ExecContext(ctx, inc.ID, inc.Date, inc.Hour, inc.Lat, inc.Lon, inc.Category, inc.Severity, inc.Source)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert incident %s: %w", inc.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit incidents: %w", err)
	}
	return nil
}

// List retrieves incidents with filtering
func (r *IncidentRepository) List(ctx context.Context, filter IncidentFilter) ([]models.Incident, error) {
	query := `SELECT id, occurred_at, hour, lat, lon, category, severity, source FROM incidents`

	var conditions []string
	var args []interface{}

	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, filter.Category)
	}
	if filter.Source != "" {
		conditions = append(conditions, "source = ?")
		args = append(args, filter.Source)
	}
	if !filter.Since.IsZero() {
		conditions = append(conditions, "occurred_at >= ?")
		args = append(args, filter.Since)
	}
	if !filter.Until.IsZero() {
		conditions = append(conditions, "occurred_at <= ?")
		args = append(args, filter.Until)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY occurred_at DESC"
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query incidents: %w", err)
	}
	defer rows.Close()

	var incidents []models.Incident
	for rows.Next() {
		var inc models.Incident
		err := rows.Scan(&inc.ID, &inc.Date, &inc.Hour, &inc.Lat, &inc.Lon, &inc.Category, &inc.Severity, &inc.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident: %w", err)
		}
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read incidents: %w", err)
	}

	return incidents, nil
}

// Count returns the total number of stored incidents.
func (r *IncidentRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM incidents").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return n, nil
}

// CategoryCounts returns incident totals per category, descending.
func (r *IncidentRepository) CategoryCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT category, COUNT(*) FROM incidents GROUP BY category ORDER BY COUNT(*) DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query category counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var category string
		var n int
		if err := rows.Scan(&category, &n); err != nil {
			return nil, fmt.Errorf("failed to scan category count: %w", err)
		}
		counts[category] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read category counts: %w", err)
	}
	return counts, nil
}
