// Package store implements the SQLite-backed data access layer for the
// mlbase platform.
//
// [Store] wraps an injected *sql.DB and exposes per-entity accessors for
// users, tasks, registered models, and data ingestion jobs. Construction via
// [New] runs the schema bootstrap to completion before returning: each of
// the four tables is created if absent and, only on first creation, filled
// with fixed sample rows. Bootstrap is idempotent across restarts and a
// failure for one table never blocks the others.
//
// Error handling follows two fixed policies:
//   - listing accessors (GetUsers, GetTasks, GetModels,
//     GetDataIngestionJobs) log query failures and return an empty slice
//   - mutating accessors propagate database errors, including foreign key
//     violations, to the caller
package store
