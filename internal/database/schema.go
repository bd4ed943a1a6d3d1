package database

import (
	"database/sql"
	"fmt"
	"log"
)

// Migration is one versioned schema step. Migrations are embedded rather than
// loaded from disk so a fresh binary can bootstrap an empty database.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_incidents",
		SQL: `
			CREATE TABLE IF NOT EXISTS incidents (
				id TEXT PRIMARY KEY,
				occurred_at TIMESTAMP NOT NULL,
				hour INTEGER NOT NULL DEFAULT -1,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				category TEXT NOT NULL,
				severity INTEGER NOT NULL,
				source TEXT NOT NULL DEFAULT ''
			);
			CREATE INDEX IF NOT EXISTS idx_incidents_occurred_at ON incidents(occurred_at);
			CREATE INDEX IF NOT EXISTS idx_incidents_category ON incidents(category);
		`,
	},
	{
		Version: 2,
		Name:    "create_candidate_locations",
		SQL: `
			CREATE TABLE IF NOT EXISTS candidate_locations (
				id TEXT PRIMARY KEY,
				name TEXT NOT NULL,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				zone TEXT NOT NULL DEFAULT ''
			);
		`,
	},
	{
		Version: 3,
		Name:    "create_infrastructure_points",
		SQL: `
			CREATE TABLE IF NOT EXISTS infrastructure_points (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				kind TEXT NOT NULL,
				name TEXT NOT NULL,
				lat REAL NOT NULL,
				lon REAL NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_infrastructure_kind ON infrastructure_points(kind);
		`,
	},
	{
		Version: 4,
		Name:    "create_road_segments",
		SQL: `
			CREATE TABLE IF NOT EXISTS road_segments (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL DEFAULT '',
				class_code TEXT NOT NULL,
				lat REAL NOT NULL,
				lon REAL NOT NULL
			);
		`,
	},
	{
		Version: 5,
		Name:    "create_luminance_grid",
		SQL: `
			CREATE TABLE IF NOT EXISTS luminance_grid (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				value REAL NOT NULL
			);
			CREATE TABLE IF NOT EXISTS luminance_estimates (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				lat REAL NOT NULL,
				lon REAL NOT NULL,
				radius_miles REAL NOT NULL,
				value REAL NOT NULL
			);
		`,
	},
}

// Migrate applies any schema migrations not yet recorded.
func Migrate(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS migrations (
			version INTEGER PRIMARY KEY,
			name TEXT NOT NULL,
			applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create migrations table: %w", err)
	}

	applied := make(map[int]bool)
	rows, err := conn.Query("SELECT version FROM migrations")
	if err != nil {
		return fmt.Errorf("failed to query migrations: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read migrations: %w", err)
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := apply(conn, m); err != nil {
			return err
		}
	}
	return nil
}

func apply(conn *sql.DB, m Migration) error {
	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(m.SQL); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to execute migration %d: %w", m.Version, err)
	}
	if _, err := tx.Exec("INSERT INTO migrations (version, name) VALUES (?, ?)", m.Version, m.Name); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %d: %w", m.Version, err)
	}

	log.Printf("[Database] applied migration %d: %s", m.Version, m.Name)
	return nil
}
