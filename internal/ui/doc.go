// Package ui implements the interactive ingestion job monitor.
//
// The monitor lists all data ingestion jobs and lets the operator drive the
// job lifecycle from the keyboard: s starts the selected job, c completes
// it, f fails it, and r reloads the listing from the store. It is a thin
// bubbletea front end over the store's job accessors; all state lives in
// the database.
package ui
