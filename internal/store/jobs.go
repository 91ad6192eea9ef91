package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tkaria/mlbase/internal/models"
)

// GetDataIngestionJobs returns all data ingestion jobs. On query failure the
// error is logged and an empty slice is returned.
func (s *Store) GetDataIngestionJobs() []models.IngestionJob {
	rows, err := s.db.Query(`
		SELECT id, data_source_uri, status, created_at, completed_at
		FROM data_ingestion_jobs
		ORDER BY id`)
	if err != nil {
		s.logger.Error("failed to query ingestion jobs", "error", err)
		return []models.IngestionJob{}
	}
	defer rows.Close()

	jobs := []models.IngestionJob{}
	for rows.Next() {
		j, err := scanIngestionJob(rows)
		if err != nil {
			s.logger.Error("failed to scan ingestion job row", "error", err)
			return []models.IngestionJob{}
		}
		jobs = append(jobs, *j)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("failed to read ingestion job rows", "error", err)
		return []models.IngestionJob{}
	}

	return jobs
}

// AddDataIngestionJob inserts a new job for the given source with status
// forced to pending and returns the created row.
func (s *Store) AddDataIngestionJob(dataSourceURI string) (*models.IngestionJob, error) {
	res, err := s.db.Exec(
		`INSERT INTO data_ingestion_jobs (data_source_uri, status) VALUES (?, ?)`,
		dataSourceURI, models.JobStatusPending,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert ingestion job: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted ingestion job id: %w", err)
	}

	// read back so the caller sees the database-assigned created_at
	return s.getDataIngestionJob(id)
}

// getDataIngestionJob retrieves a single job row by id.
func (s *Store) getDataIngestionJob(id int64) (*models.IngestionJob, error) {
	row := s.db.QueryRow(`
		SELECT id, data_source_uri, status, created_at, completed_at
		FROM data_ingestion_jobs
		WHERE id = ?`, id)

	j, err := scanIngestionJob(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("ingestion job not found: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan ingestion job: %w", err)
	}

	return j, nil
}

// StartDataIngestionJob marks a job in_progress. completed_at is left
// untouched. Updating an id that does not exist is a silent no-op.
func (s *Store) StartDataIngestionJob(id int64) error {
	_, err := s.db.Exec(
		`UPDATE data_ingestion_jobs SET status = ? WHERE id = ?`,
		models.JobStatusInProgress, id,
	)
	if err != nil {
		return fmt.Errorf("failed to start ingestion job %d: %w", id, err)
	}
	return nil
}

// CompleteDataIngestionJob marks a job completed and stamps completed_at.
func (s *Store) CompleteDataIngestionJob(id int64) error {
	return s.finishDataIngestionJob(id, models.JobStatusCompleted)
}

// FailDataIngestionJob marks a job failed and stamps completed_at.
func (s *Store) FailDataIngestionJob(id int64) error {
	return s.finishDataIngestionJob(id, models.JobStatusFailed)
}

// finishDataIngestionJob applies a terminal status. No transition check is
// made; re-finishing a finished job simply re-applies the update.
func (s *Store) finishDataIngestionJob(id int64, status models.JobStatus) error {
	_, err := s.db.Exec(
		`UPDATE data_ingestion_jobs SET status = ?, completed_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return fmt.Errorf("failed to mark ingestion job %d %s: %w", id, status, err)
	}
	return nil
}

func scanIngestionJob(row rowScanner) (*models.IngestionJob, error) {
	var j models.IngestionJob
	var completedAt sql.NullTime

	err := row.Scan(&j.ID, &j.DataSourceURI, &j.Status, &j.CreatedAt, &completedAt)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		j.CompletedAt = &completedAt.Time
	}

	return &j, nil
}
