package store

import (
	"database/sql"

	"github.com/charmbracelet/log"
	"github.com/tkaria/mlbase/internal/shared"
)

// Store provides access to the four platform tables over a single database
// handle. The handle is owned by the caller; Store never closes it.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// New creates a Store and runs the schema bootstrap before returning, so
// the Store is fully usable the moment construction completes. A bootstrap
// failure for one table is logged and does not abort the others; accessor
// calls against a table that failed to materialize fail at call time.
func New(db *sql.DB, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	s := &Store{db: db, logger: logger}
	s.bootstrap()
	return s
}

// bootstrap ensures every table exists and is seeded. Safe to call again;
// existing tables are skipped entirely, seeds included.
func (s *Store) bootstrap() {
	for _, t := range bootstrapTables {
		if err := ensureTableExists(s.db, t); err != nil {
			s.logger.Error("table bootstrap failed", "table", t.name, "error", err)
		}
	}
}
