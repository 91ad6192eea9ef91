package store

import (
	"database/sql"
	"fmt"

	"github.com/tkaria/mlbase/internal/models"
)

// GetModels returns all registered models. On query failure the error is
// logged and an empty slice is returned.
func (s *Store) GetModels() []models.Model {
	rows, err := s.db.Query(`
		SELECT id, name, version, description, model_uri, registered_at, registered_by
		FROM models
		ORDER BY id`)
	if err != nil {
		s.logger.Error("failed to query models", "error", err)
		return []models.Model{}
	}
	defer rows.Close()

	list := []models.Model{}
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			s.logger.Error("failed to scan model row", "error", err)
			return []models.Model{}
		}
		list = append(list, *m)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("failed to read model rows", "error", err)
		return []models.Model{}
	}

	return list
}

// AddModel registers a new model version and returns the created row.
// description and registeredBy are optional; empty strings are stored as
// NULL. registered_at defaults to the database's current time.
func (s *Store) AddModel(name, version, description, modelURI, registeredBy string) (*models.Model, error) {
	var desc any
	if description != "" {
		desc = description
	}
	var regBy any
	if registeredBy != "" {
		regBy = registeredBy
	}

	res, err := s.db.Exec(
		`INSERT INTO models (name, version, description, model_uri, registered_by) VALUES (?, ?, ?, ?, ?)`,
		name, version, desc, modelURI, regBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert model: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted model id: %w", err)
	}

	// read back so the caller sees the database-assigned registered_at
	return s.getModel(id)
}

// getModel retrieves a single model row by id.
func (s *Store) getModel(id int64) (*models.Model, error) {
	row := s.db.QueryRow(`
		SELECT id, name, version, description, model_uri, registered_at, registered_by
		FROM models
		WHERE id = ?`, id)

	m, err := scanModel(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("model not found: %d", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan model: %w", err)
	}

	return m, nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanModel(row rowScanner) (*models.Model, error) {
	var m models.Model
	var description, registeredBy sql.NullString

	err := row.Scan(&m.ID, &m.Name, &m.Version, &description, &m.ModelURI, &m.RegisteredAt, &registeredBy)
	if err != nil {
		return nil, err
	}

	if description.Valid {
		m.Description = description.String
	}
	if registeredBy.Valid {
		m.RegisteredBy = registeredBy.String
	}

	return &m, nil
}
