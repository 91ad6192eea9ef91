package store

import (
	"fmt"

	"github.com/tkaria/mlbase/internal/models"
)

// GetUsers returns all users. On query failure the error is logged and an
// empty slice is returned; callers cannot distinguish that from no rows.
func (s *Store) GetUsers() []models.User {
	rows, err := s.db.Query(`SELECT id, name FROM users ORDER BY id`)
	if err != nil {
		s.logger.Error("failed to query users", "error", err)
		return []models.User{}
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			s.logger.Error("failed to scan user row", "error", err)
			return []models.User{}
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("failed to read user rows", "error", err)
		return []models.User{}
	}

	return users
}

// AddUser inserts a new user and returns the created row with its assigned id.
func (s *Store) AddUser(name string) (*models.User, error) {
	res, err := s.db.Exec(`INSERT INTO users (name) VALUES (?)`, name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted user id: %w", err)
	}

	return &models.User{ID: id, Name: name}, nil
}
