// package formatter provides functions to export store listings to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/tkaria/mlbase/internal/models"
)

// timeLayout is the timestamp format used in exported files.
const timeLayout = "2006-01-02 15:04:05"

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(timeLayout)
}

// TasksToCSV converts a task listing to CSV format with columns: ID, Title, Assignee, Completed At
func TasksToCSV(tasks []models.TaskWithUser) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Assignee", "Completed At"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, task := range tasks {
		record := []string{
			strconv.FormatInt(task.ID, 10),
			task.Title,
			task.UserName,
			formatOptionalTime(task.CompletionTime),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// TasksToMarkdown converts a task listing to a Markdown checklist grouped by completion state
func TasksToMarkdown(tasks []models.TaskWithUser) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString("# Tasks\n\n")
	buf.WriteString(fmt.Sprintf("**Total**: %d\n\n", len(tasks)))

	for _, task := range tasks {
		mark := " "
		suffix := ""
		if task.CompletionTime != nil {
			mark = "x"
			suffix = fmt.Sprintf(" (completed %s)", formatOptionalTime(task.CompletionTime))
		}
		buf.WriteString(fmt.Sprintf("- [%s] %s • %s%s\n", mark, task.Title, task.UserName, suffix))
	}

	return buf.Bytes(), nil
}

// TasksToText converts a task listing to plain text format
func TasksToText(tasks []models.TaskWithUser) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Tasks: %d\n\n", len(tasks)))

	for i, task := range tasks {
		state := "open"
		if task.CompletionTime != nil {
			state = "done"
		}
		buf.WriteString(fmt.Sprintf("%d. [%s] %s (%s)\n", i+1, state, task.Title, task.UserName))
	}

	return buf.Bytes(), nil
}

// ModelsToCSV converts a model listing to CSV format with columns: ID, Name, Version, URI, Registered At, Registered By
func ModelsToCSV(list []models.Model) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Name", "Version", "URI", "Registered At", "Registered By"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, m := range list {
		record := []string{
			strconv.FormatInt(m.ID, 10),
			m.Name,
			m.Version,
			m.ModelURI,
			m.RegisteredAt.UTC().Format(timeLayout),
			m.RegisteredBy,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// JobsToCSV converts an ingestion job listing to CSV format with columns: ID, Source, Status, Created At, Completed At
func JobsToCSV(jobs []models.IngestionJob) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Source", "Status", "Created At", "Completed At"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, job := range jobs {
		record := []string{
			strconv.FormatInt(job.ID, 10),
			job.DataSourceURI,
			job.Status.String(),
			job.CreatedAt.UTC().Format(timeLayout),
			formatOptionalTime(job.CompletedAt),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}
