package db

import (
	"database/sql"
	"fmt"
)

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE agencies (
    id                  TEXT PRIMARY KEY,
    name                TEXT NOT NULL,
    type                TEXT NOT NULL,
    address             TEXT NOT NULL DEFAULT '',
    region              TEXT NOT NULL DEFAULT '',
    phone               TEXT NOT NULL DEFAULT '',
    latitude            REAL,
    longitude           REAL,
    by_appointment_only INTEGER NOT NULL DEFAULT 0,
    requirements        TEXT NOT NULL DEFAULT '',
    food_format         TEXT NOT NULL DEFAULT '',
    distribution_models TEXT NOT NULL DEFAULT '',
    cultures_served     TEXT NOT NULL DEFAULT '',
    wraparound_services TEXT NOT NULL DEFAULT '',
    last_service_date   TEXT,
    created_at          TEXT NOT NULL,
    updated_at          TEXT NOT NULL
);

CREATE TABLE agency_hours (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    agency_id  TEXT NOT NULL REFERENCES agencies(id) ON DELETE CASCADE,
    weekday    TEXT NOT NULL DEFAULT '',
    frequency  TEXT NOT NULL DEFAULT '',
    start_time TEXT NOT NULL DEFAULT '',
    end_time   TEXT NOT NULL DEFAULT ''
);

CREATE INDEX idx_agency_hours_agency ON agency_hours(agency_id);
`,
	},
}

// Migrate applies any pending schema migrations in order.
func Migrate(database *sql.DB) error {
	if _, err := database.Exec(`
CREATE TABLE IF NOT EXISTS schema_migrations (
    version    INTEGER PRIMARY KEY,
    applied_at TEXT NOT NULL
)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	var current int
	row := database.QueryRow(`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`)
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}
		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("beginning migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(m.sql); err != nil {
			tx.Rollback()
			return fmt.Errorf("applying migration %d: %w", m.version, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO schema_migrations (version, applied_at) VALUES (?, datetime('now'))`,
			m.version,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("recording migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("committing migration %d: %w", m.version, err)
		}
	}

	return nil
}
