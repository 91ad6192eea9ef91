package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tkaria/mlbase/internal/shared"
)

// UsersList prints all users as JSON.
func (r *Runner) UsersList(ctx context.Context, cmd *cli.Command) error {
	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	return r.writeJSON(st.GetUsers(), cmd.Bool("pretty"))
}

// UserAdd inserts a new user and prints the created row.
func (r *Runner) UserAdd(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: user name", shared.ErrMissingArgument)
	}

	st, closer, err := r.openStore(cmd)
	if err != nil {
		return err
	}
	defer closer()

	user, err := st.AddUser(name)
	if err != nil {
		return fmt.Errorf("failed to add user: %w", err)
	}

	r.logger.Info("user created", "id", user.ID, "name", user.Name)
	return r.writeJSON(user, cmd.Bool("pretty"))
}
