package store

import (
	"database/sql"
	"io"
	"testing"

	"github.com/tkaria/mlbase/internal/shared"
)

// setupTestStore creates a Store over an in-memory SQLite database with the
// bootstrap already run. The pool is pinned to a single connection so every
// statement sees the same in-memory database.
func setupTestStore(t *testing.T) (*Store, *sql.DB) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	return New(db, shared.NewLogger(io.Discard)), db
}

func tableRowCount(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return count
}

func TestNew(t *testing.T) {
	t.Run("CreatesTables", func(t *testing.T) {
		_, db := setupTestStore(t)

		for _, name := range []string{"users", "tasks", "models", "data_ingestion_jobs"} {
			var count int
			err := db.QueryRow(
				"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", name,
			).Scan(&count)
			if err != nil {
				t.Fatalf("failed to query sqlite_master: %v", err)
			}
			if count != 1 {
				t.Errorf("expected table %s to exist, got count %d", name, count)
			}
		}
	})

	t.Run("SeedsTables", func(t *testing.T) {
		_, db := setupTestStore(t)

		want := map[string]int{
			"users":               3,
			"tasks":               3,
			"models":              2,
			"data_ingestion_jobs": 2,
		}
		for table, rows := range want {
			if got := tableRowCount(t, db, table); got != rows {
				t.Errorf("expected %d seed rows in %s, got %d", rows, table, got)
			}
		}
	})
}

func TestBootstrap(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		s, db := setupTestStore(t)

		// a second bootstrap over the same database must not reseed
		s.bootstrap()

		want := map[string]int{
			"users":               3,
			"tasks":               3,
			"models":              2,
			"data_ingestion_jobs": 2,
		}
		for table, rows := range want {
			if got := tableRowCount(t, db, table); got != rows {
				t.Errorf("expected %d rows in %s after double bootstrap, got %d", rows, table, got)
			}
		}
	})

	t.Run("SkipsExistingData", func(t *testing.T) {
		s, db := setupTestStore(t)

		if _, err := s.AddUser("Dana White"); err != nil {
			t.Fatalf("failed to add user: %v", err)
		}

		s.bootstrap()

		if got := tableRowCount(t, db, "users"); got != 4 {
			t.Errorf("expected 4 users after bootstrap over existing table, got %d", got)
		}
	})

	t.Run("PartialFailureIsNonFatal", func(t *testing.T) {
		db, err := shared.NewDatabase(":memory:")
		if err != nil {
			t.Fatalf("failed to create test database: %v", err)
		}
		db.SetMaxOpenConns(1)
		defer db.Close()

		// a view named tasks makes the tasks CREATE TABLE fail while leaving
		// the existence check negative
		if _, err := db.Exec("CREATE VIEW tasks AS SELECT 1 AS id"); err != nil {
			t.Fatalf("failed to create conflicting view: %v", err)
		}

		s := New(db, shared.NewLogger(io.Discard))

		// the other tables still bootstrap and the store stays usable
		if got := tableRowCount(t, db, "users"); got != 3 {
			t.Errorf("expected users to be seeded despite tasks failure, got %d rows", got)
		}
		if got := len(s.GetModels()); got != 2 {
			t.Errorf("expected 2 seeded models, got %d", got)
		}
		if got := len(s.GetDataIngestionJobs()); got != 2 {
			t.Errorf("expected 2 seeded ingestion jobs, got %d", got)
		}
	})
}
