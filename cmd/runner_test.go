package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/tkaria/mlbase/internal/models"
	"github.com/tkaria/mlbase/internal/shared"
	"github.com/tkaria/mlbase/internal/store"
)

// newTestRunner builds a Runner over a bootstrapped in-memory store with
// output captured in a buffer.
func newTestRunner(t *testing.T) (*Runner, *bytes.Buffer) {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	logger := shared.NewLogger(io.Discard)
	st := store.New(db, logger)

	var buf bytes.Buffer
	r := NewRunner(RunnerOpts{
		Logger: logger,
		Output: &buf,
		Store:  st,
	})

	return r, &buf
}

func runCommand(t *testing.T, r *Runner, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:     "mlbase",
		Commands: r.register(),
	}
	return app.Run(context.Background(), append([]string{"mlbase"}, args...))
}

func TestUsersCommands(t *testing.T) {
	t.Run("List", func(t *testing.T) {
		r, buf := newTestRunner(t)

		if err := runCommand(t, r, "users", "list"); err != nil {
			t.Fatalf("users list failed: %v", err)
		}

		var users []models.User
		if err := json.Unmarshal(buf.Bytes(), &users); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if len(users) != 3 {
			t.Errorf("expected 3 seeded users, got %d", len(users))
		}
	})

	t.Run("Add", func(t *testing.T) {
		r, buf := newTestRunner(t)

		if err := runCommand(t, r, "users", "add", "Dana White"); err != nil {
			t.Fatalf("users add failed: %v", err)
		}

		var user models.User
		if err := json.Unmarshal(buf.Bytes(), &user); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if user.ID != 4 || user.Name != "Dana White" {
			t.Errorf("unexpected created user: %+v", user)
		}
	})

	t.Run("AddMissingName", func(t *testing.T) {
		r, _ := newTestRunner(t)

		if err := runCommand(t, r, "users", "add"); err == nil {
			t.Fatal("expected error for missing name argument")
		}
	})
}

func TestTasksCommands(t *testing.T) {
	t.Run("AddAndListCSV", func(t *testing.T) {
		r, buf := newTestRunner(t)

		if err := runCommand(t, r, "tasks", "add", "--title", "Tune hyperparameters", "--user", "2"); err != nil {
			t.Fatalf("tasks add failed: %v", err)
		}

		var task models.Task
		if err := json.Unmarshal(buf.Bytes(), &task); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if task.Title != "Tune hyperparameters" || task.UserID != 2 {
			t.Errorf("unexpected created task: %+v", task)
		}
		if task.CompletionTime != nil {
			t.Errorf("expected open task, got completion time %v", task.CompletionTime)
		}

		buf.Reset()
		if err := runCommand(t, r, "tasks", "list", "--format", "csv"); err != nil {
			t.Fatalf("tasks list failed: %v", err)
		}
		out := buf.String()
		if !strings.Contains(out, "ID,Title,Assignee,Completed At") {
			t.Errorf("expected CSV header in output, got:\n%s", out)
		}
		if !strings.Contains(out, "Tune hyperparameters,Bob Smith") {
			t.Errorf("expected new task joined with owner, got:\n%s", out)
		}
	})

	t.Run("AddUnknownUserFails", func(t *testing.T) {
		r, _ := newTestRunner(t)

		err := runCommand(t, r, "tasks", "add", "--title", "Orphan", "--user", "9999")
		if err == nil {
			t.Fatal("expected foreign key error to propagate through the command")
		}
	})

	t.Run("ListUnknownFormat", func(t *testing.T) {
		r, _ := newTestRunner(t)

		if err := runCommand(t, r, "tasks", "list", "--format", "xml"); err == nil {
			t.Fatal("expected unknown format error")
		}
	})
}

func TestModelsCommands(t *testing.T) {
	r, buf := newTestRunner(t)

	if err := runCommand(t, r, "models", "add",
		"--name", "fraud-detector", "--version", "2.0.1",
		"--uri", "s3://mlbase-models/fraud-detector/2.0.1"); err != nil {
		t.Fatalf("models add failed: %v", err)
	}

	var model models.Model
	if err := json.Unmarshal(buf.Bytes(), &model); err != nil {
		t.Fatalf("failed to parse output: %v", err)
	}
	if model.Name != "fraud-detector" || model.RegisteredAt.IsZero() {
		t.Errorf("unexpected created model: %+v", model)
	}

	buf.Reset()
	if err := runCommand(t, r, "models", "list", "--format", "csv"); err != nil {
		t.Fatalf("models list failed: %v", err)
	}
	if !strings.Contains(buf.String(), "fraud-detector") {
		t.Errorf("expected registered model in listing, got:\n%s", buf.String())
	}
}

func TestJobsCommands(t *testing.T) {
	t.Run("AddStartComplete", func(t *testing.T) {
		r, buf := newTestRunner(t)

		if err := runCommand(t, r, "jobs", "add", "s3://mlbase-data/raw/users.parquet"); err != nil {
			t.Fatalf("jobs add failed: %v", err)
		}

		var job models.IngestionJob
		if err := json.Unmarshal(buf.Bytes(), &job); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		if job.Status != models.JobStatusPending {
			t.Errorf("expected pending job, got %s", job.Status)
		}

		buf.Reset()
		if err := runCommand(t, r, "jobs", "start", "--id", "3"); err != nil {
			t.Fatalf("jobs start failed: %v", err)
		}
		if err := runCommand(t, r, "jobs", "complete", "--id", "3"); err != nil {
			t.Fatalf("jobs complete failed: %v", err)
		}

		buf.Reset()
		if err := runCommand(t, r, "jobs", "list"); err != nil {
			t.Fatalf("jobs list failed: %v", err)
		}

		var jobs []models.IngestionJob
		if err := json.Unmarshal(buf.Bytes(), &jobs); err != nil {
			t.Fatalf("failed to parse output: %v", err)
		}
		var found bool
		for _, j := range jobs {
			if j.ID == 3 {
				found = true
				if j.Status != models.JobStatusCompleted {
					t.Errorf("expected completed, got %s", j.Status)
				}
				if j.CompletedAt == nil {
					t.Error("expected completed_at to be stamped")
				}
			}
		}
		if !found {
			t.Error("queued job missing from listing")
		}
	})

	t.Run("AddMissingSource", func(t *testing.T) {
		r, _ := newTestRunner(t)

		if err := runCommand(t, r, "jobs", "add"); err == nil {
			t.Fatal("expected error for missing source argument")
		}
	})
}
