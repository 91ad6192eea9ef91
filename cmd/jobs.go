package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tkaria/mlbase/internal/formatter"
	"github.com/tkaria/mlbase/internal/shared"
	"github.com/tkaria/mlbase/internal/ui"
)

// JobsList prints all data ingestion jobs.
func (r *Runner) JobsList(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	jobs := st.GetDataIngestionJobs()

	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(jobs, cmd.Bool("pretty"))
	case "csv":
		out, err := formatter.JobsToCSV(jobs)
		if err != nil {
			return err
		}
		return r.writePlainln("%s", out)
	default:
		return fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}
}

// JobAdd queues a pending ingestion job and prints the created row.
func (r *Runner) JobAdd(ctx context.Context, cmd *cli.Command) error {
	source := cmd.StringArg("source")
	if source == "" {
		return fmt.Errorf("%w: data source URI", shared.ErrMissingArgument)
	}

	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	job, err := st.AddDataIngestionJob(source)
	if err != nil {
		return fmt.Errorf("failed to queue ingestion job: %w", err)
	}

	r.logger.Info("ingestion job queued", "id", job.ID, "source", job.DataSourceURI)
	return r.writeJSON(job, cmd.Bool("pretty"))
}

// JobStart marks a job in progress.
func (r *Runner) JobStart(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	id := int64(cmd.Int("id"))
	if err := st.StartDataIngestionJob(id); err != nil {
		return err
	}

	r.logger.Info("ingestion job started", "id", id)
	return r.writePlainln("job %d marked in_progress", id)
}

// JobComplete marks a job completed.
func (r *Runner) JobComplete(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	id := int64(cmd.Int("id"))
	if err := st.CompleteDataIngestionJob(id); err != nil {
		return err
	}

	r.logger.Info("ingestion job completed", "id", id)
	return r.writePlainln("job %d marked completed", id)
}

// JobFail marks a job failed.
func (r *Runner) JobFail(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	id := int64(cmd.Int("id"))
	if err := st.FailDataIngestionJob(id); err != nil {
		return err
	}

	r.logger.Info("ingestion job failed", "id", id)
	return r.writePlainln("job %d marked failed", id)
}

// JobsUI launches the interactive job monitor.
func (r *Runner) JobsUI(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	return ui.Run(st)
}
