package store

import (
	"database/sql"
	"fmt"
)

// tableDef couples a table's create statement with the seed rows inserted
// exactly once, immediately after first creation.
type tableDef struct {
	name   string
	create string
	seed   []string
}

// bootstrapTables lists the tables in bootstrap order. Users come first so
// the seeded tasks can reference seeded user ids; the remaining tables are
// independent of one another.
var bootstrapTables = []tableDef{
	{
		name: "users",
		create: `
			CREATE TABLE users (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL
			)`,
		seed: []string{
			`INSERT INTO users (name) VALUES ('Alice Johnson')`,
			`INSERT INTO users (name) VALUES ('Bob Smith')`,
			`INSERT INTO users (name) VALUES ('Carol Nguyen')`,
		},
	},
	{
		name: "tasks",
		create: `
			CREATE TABLE tasks (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				title TEXT NOT NULL,
				user_id INTEGER NOT NULL REFERENCES users(id),
				completion_time TIMESTAMP
			)`,
		seed: []string{
			`INSERT INTO tasks (title, user_id) VALUES ('Label training images', 1)`,
			`INSERT INTO tasks (title, user_id, completion_time) VALUES ('Review model evaluation report', 2, '2025-05-12 09:30:00')`,
			`INSERT INTO tasks (title, user_id) VALUES ('Backfill ingestion metrics', 3)`,
		},
	},
	{
		name: "models",
		create: `
			CREATE TABLE models (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				version TEXT NOT NULL,
				description TEXT,
				model_uri TEXT NOT NULL,
				registered_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				registered_by TEXT
			)`,
		seed: []string{
			`INSERT INTO models (name, version, description, model_uri, registered_by)
				VALUES ('churn-predictor', '1.2.0', 'Gradient boosted churn model', 's3://mlbase-models/churn-predictor/1.2.0', 'alice.johnson')`,
			`INSERT INTO models (name, version, model_uri)
				VALUES ('doc-embedder', '0.4.1', 's3://mlbase-models/doc-embedder/0.4.1')`,
		},
	},
	{
		name: "data_ingestion_jobs",
		create: `
			CREATE TABLE data_ingestion_jobs (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				data_source_uri TEXT NOT NULL,
				status TEXT NOT NULL DEFAULT 'pending'
					CHECK (status IN ('pending', 'in_progress', 'completed', 'failed')),
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				completed_at TIMESTAMP
			)`,
		seed: []string{
			`INSERT INTO data_ingestion_jobs (data_source_uri) VALUES ('s3://mlbase-data/raw/events-2025-05.csv')`,
			`INSERT INTO data_ingestion_jobs (data_source_uri, status, created_at, completed_at)
				VALUES ('https://data.example.com/exports/catalog.json', 'completed', '2025-05-10 13:45:00', '2025-05-10 14:00:00')`,
		},
	},
}

// ensureTableExists checks for the table in sqlite_master and, when absent,
// creates it and runs its seed inserts. Existing tables are left untouched,
// which keeps bootstrap a no-op after the first successful run.
func ensureTableExists(db *sql.DB, t tableDef) error {
	var exists bool
	err := db.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?)", t.name,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check table %s: %w", t.name, err)
	}

	if exists {
		return nil
	}

	if _, err := db.Exec(t.create); err != nil {
		return fmt.Errorf("failed to create table %s: %w", t.name, err)
	}

	for _, stmt := range t.seed {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to seed table %s: %w", t.name, err)
		}
	}

	return nil
}
