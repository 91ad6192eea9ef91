// Package models defines domain entities for the mlbase platform store.
//
// The entities mirror the four persisted tables:
//   - [User] : platform user accounts, referenced by tasks
//   - [Task] : assigned work items with an optional completion timestamp
//   - [Model] : registered ML model versions with storage URIs
//   - [IngestionJob] : data ingestion runs with a pending/in_progress/completed/failed lifecycle
//
// [TaskWithUser] is the joined read shape produced by the task listing.
// Column names and types of the backing tables are part of the external
// contract; other tools may query them directly.
package models
