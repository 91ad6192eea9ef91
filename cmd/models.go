package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tkaria/mlbase/internal/formatter"
	"github.com/tkaria/mlbase/internal/shared"
)

// ModelsList prints all registered models.
func (r *Runner) ModelsList(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	list := st.GetModels()

	switch format := cmd.String("format"); format {
	case "json":
		return r.writeJSON(list, cmd.Bool("pretty"))
	case "csv":
		out, err := formatter.ModelsToCSV(list)
		if err != nil {
			return err
		}
		return r.writePlainln("%s", out)
	default:
		return fmt.Errorf("%w: %q", shared.ErrUnknownFormat, format)
	}
}

// ModelAdd registers a model version and prints the created row.
func (r *Runner) ModelAdd(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	model, err := st.AddModel(
		cmd.String("name"),
		cmd.String("version"),
		cmd.String("description"),
		cmd.String("uri"),
		cmd.String("registered-by"),
	)
	if err != nil {
		return fmt.Errorf("failed to register model: %w", err)
	}

	r.logger.Info("model registered", "id", model.ID, "name", model.Name, "version", model.Version)
	return r.writeJSON(model, cmd.Bool("pretty"))
}
