package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/tkaria/mlbase/internal/formatter"
	"github.com/tkaria/mlbase/internal/shared"
)

// parseTimestamp accepts the timestamp formats the CLI understands.
func parseTimestamp(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: unrecognized timestamp %q", shared.ErrInvalidFlag, value)
}

// TasksList prints all tasks joined with their assignees.
func (r *Runner) TasksList(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	tasks := st.GetTasks()

	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(tasks, cmd.Bool("pretty"))
	case "csv":
		out, err := formatter.TasksToCSV(tasks)
		if err != nil {
			return err
		}
		return r.writePlainln("%s", out)
	case "markdown":
		out, err := formatter.TasksToMarkdown(tasks)
		if err != nil {
			return err
		}
		return r.writePlainln("%s", out)
	case "text":
		out, err := formatter.TasksToText(tasks)
		if err != nil {
			return err
		}
		return r.writePlainln("%s", out)
	default:
		return fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}
}

// TaskAdd inserts a new task and prints the created row.
func (r *Runner) TaskAdd(ctx context.Context, cmd *cli.Command) error {
	title := cmd.String("title")
	userID := int64(cmd.Int("user"))

	var completionTime *time.Time
	if value := cmd.String("completed-at"); value != "" {
		ts, err := parseTimestamp(value)
		if err != nil {
			return err
		}
		completionTime = &ts
	}

	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	task, err := st.AddTask(title, userID, completionTime)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}

	r.logger.Info("task created", "id", task.ID, "user", task.UserID)
	return r.writeJSON(task, cmd.Bool("pretty"))
}

// TasksExport writes the task listing to a file in the requested format.
func (r *Runner) TasksExport(ctx context.Context, cmd *cli.Command) error {
	format := cmd.String("format")

	var ext string
	switch format {
	case "csv":
		ext = "csv"
	case "markdown":
		ext = "md"
	case "text":
		ext = "txt"
	default:
		return fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}

	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	tasks := st.GetTasks()

	var out []byte
	switch format {
	case "csv":
		out, err = formatter.TasksToCSV(tasks)
	case "markdown":
		out, err = formatter.TasksToMarkdown(tasks)
	case "text":
		out, err = formatter.TasksToText(tasks)
	}
	if err != nil {
		return fmt.Errorf("failed to render tasks: %w", err)
	}

	outputPath := cmd.String("output")
	if outputPath == "" {
		outputPath = fmt.Sprintf("tasks_%s.%s", shared.GenerateID()[:8], ext)
	}

	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	r.logger.Info("tasks exported", "path", outputPath, "format", format, "count", len(tasks))
	return r.writePlainln("exported %d tasks to %s", len(tasks), outputPath)
}
