package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tkaria/mlbase/internal/models"
)

// GetTasks returns all tasks joined with their owning user's name. On query
// failure the error is logged and an empty slice is returned.
func (s *Store) GetTasks() []models.TaskWithUser {
	rows, err := s.db.Query(`
		SELECT t.id, t.title, t.user_id, t.completion_time, u.name
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		ORDER BY t.id`)
	if err != nil {
		s.logger.Error("failed to query tasks", "error", err)
		return []models.TaskWithUser{}
	}
	defer rows.Close()

	tasks := []models.TaskWithUser{}
	for rows.Next() {
		var t models.TaskWithUser
		var completionTime sql.NullTime

		if err := rows.Scan(&t.ID, &t.Title, &t.UserID, &completionTime, &t.UserName); err != nil {
			s.logger.Error("failed to scan task row", "error", err)
			return []models.TaskWithUser{}
		}
		if completionTime.Valid {
			t.CompletionTime = &completionTime.Time
		}

		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		s.logger.Error("failed to read task rows", "error", err)
		return []models.TaskWithUser{}
	}

	return tasks
}

// AddTask inserts a new task for the given user and returns the created row.
// A nil completionTime is stored as NULL. Database errors, including a
// user_id that references no existing user, propagate to the caller.
func (s *Store) AddTask(title string, userID int64, completionTime *time.Time) (*models.Task, error) {
	var ct any
	if completionTime != nil {
		ct = completionTime.UTC()
	}

	res, err := s.db.Exec(
		`INSERT INTO tasks (title, user_id, completion_time) VALUES (?, ?, ?)`,
		title, userID, ct,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted task id: %w", err)
	}

	task := &models.Task{ID: id, Title: title, UserID: userID}
	if completionTime != nil {
		utc := completionTime.UTC()
		task.CompletionTime = &utc
	}

	return task, nil
}
