package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/geodata"
	"github.com/vaniseth/MUIDSI-Hackathon-2026/internal/spatial"
)

// GeoRepository reads and writes the geospatial reference tables: luminance
// grid, estimate zones, road segments, and infrastructure points. It is the
// database-backed geodata.Source.
type GeoRepository struct {
	db *sql.DB
}

// NewGeoRepository creates a new geospatial repository
func NewGeoRepository(db *sql.DB) *GeoRepository {
	return &GeoRepository{db: db}
}

// LuminanceCells returns the measured radiance grid.
func (r *GeoRepository) LuminanceCells(ctx context.Context) ([]geodata.LuminanceCell, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT lat, lon, value FROM luminance_grid")
	if err != nil {
		return nil, fmt.Errorf("failed to query luminance grid: %w", err)
	}
	defer rows.Close()

	var cells []geodata.LuminanceCell
	for rows.Next() {
		var c geodata.LuminanceCell
		if err := rows.Scan(&c.Lat, &c.Lon, &c.Value); err != nil {
			return nil, fmt.Errorf("failed to scan luminance cell: %w", err)
		}
		cells = append(cells, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read luminance grid: %w", err)
	}
	return cells, nil
}

// EstimateZones returns the location-keyed luminance fallback zones.
func (r *GeoRepository) EstimateZones(ctx context.Context) ([]geodata.EstimateZone, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT lat, lon, radius_miles, value FROM luminance_estimates")
	if err != nil {
		return nil, fmt.Errorf("failed to query luminance estimates: %w", err)
	}
	defer rows.Close()

	var zones []geodata.EstimateZone
	for rows.Next() {
		var z geodata.EstimateZone
		if err := rows.Scan(&z.Lat, &z.Lon, &z.RadiusMiles, &z.Value); err != nil {
			return nil, fmt.Errorf("failed to scan estimate zone: %w", err)
		}
		zones = append(zones, z)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read luminance estimates: %w", err)
	}
	return zones, nil
}

// RoadPoints returns every road segment sample point.
func (r *GeoRepository) RoadPoints(ctx context.Context) ([]geodata.RoadPoint, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT name, class_code, lat, lon FROM road_segments")
	if err != nil {
		return nil, fmt.Errorf("failed to query road segments: %w", err)
	}
	defer rows.Close()

	var points []geodata.RoadPoint
	for rows.Next() {
		var p geodata.RoadPoint
		if err := rows.Scan(&p.Name, &p.ClassCode, &p.Lat, &p.Lon); err != nil {
			return nil, fmt.Errorf("failed to scan road segment: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read road segments: %w", err)
	}
	return points, nil
}

// InfrastructurePoints returns poles, call boxes, and corridors in one pass.
func (r *GeoRepository) InfrastructurePoints(ctx context.Context) (poles, callBoxes, corridors []spatial.Point, err error) {
	rows, err := r.db.QueryContext(ctx, "SELECT kind, name, lat, lon FROM infrastructure_points")
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to query infrastructure points: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind string
		var p spatial.Point
		if err := rows.Scan(&kind, &p.Name, &p.Lat, &p.Lon); err != nil {
			return nil, nil, nil, fmt.Errorf("failed to scan infrastructure point: %w", err)
		}
		switch kind {
		case geodata.KindLightPole:
			poles = append(poles, p)
		case geodata.KindCallBox:
			callBoxes = append(callBoxes, p)
		case geodata.KindCorridor:
			corridors = append(corridors, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, nil, fmt.Errorf("failed to read infrastructure points: %w", err)
	}
	return poles, callBoxes, corridors, nil
}

// InsertInfrastructure stores one infrastructure point.
func (r *GeoRepository) InsertInfrastructure(ctx context.Context, kind string, p spatial.Point) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO infrastructure_points (kind, name, lat, lon) VALUES (?, ?, ?, ?)
	`, kind, p.Name, p.Lat, p.Lon)
	if err != nil {
		return fmt.Errorf("failed to insert infrastructure point %s: %w", p.Name, err)
	}
	return nil
}

// InsertRoadPoints stores road segment sample points in one transaction.
func (r *GeoRepository) InsertRoadPoints(ctx context.Context, points []geodata.RoadPoint) error {
	if len(points) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO road_segments (name, class_code, lat, lon) VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare road insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.ExecContext(ctx, p.Name, p.ClassCode, p.Lat, p.Lon); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert road segment %s: %w", p.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit road segments: %w", err)
	}
	return nil
}

// InsertLuminanceCells stores measured grid cells in one transaction.
func (r *GeoRepository) InsertLuminanceCells(ctx context.Context, cells []geodata.LuminanceCell) error {
	if len(cells) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO luminance_grid (lat, lon, value) VALUES (?, ?, ?)
	`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to prepare luminance insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range cells {
		if _, err := stmt.ExecContext(ctx, c.Lat, c.Lon, c.Value); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert luminance cell: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit luminance cells: %w", err)
	}
	return nil
}
