// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

func configFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to configuration file",
		Value:   "config.toml",
	}
}

func prettyFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:  "pretty",
		Usage: "Pretty-print output",
		Value: true,
	}
}

// setupCommand handles database initialization.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "setup",
		Usage:  "Create the configuration file, the database and the seeded tables",
		Flags:  []cli.Flag{configFlag()},
		Action: r.Setup,
	}
}

// usersCommand handles user operations
func usersCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "users",
		Usage: "Platform user operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all users",
				Flags:  []cli.Flag{configFlag(), prettyFlag()},
				Action: r.UsersList,
			},
			{
				Name:  "add",
				Usage: "Add a user",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "name"},
				},
				Flags:  []cli.Flag{configFlag(), prettyFlag()},
				Action: r.UserAdd,
			},
		},
	}
}

// tasksCommand handles task operations
func tasksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tasks",
		Usage: "Task operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all tasks with their assignees",
				Flags: []cli.Flag{
					configFlag(),
					prettyFlag(),
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json, csv, markdown or text",
						Value: "json",
					},
				},
				Action: r.TasksList,
			},
			{
				Name:  "add",
				Usage: "Add a task for a user",
				Flags: []cli.Flag{
					configFlag(),
					prettyFlag(),
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Task title",
						Required: true,
					},
					&cli.IntFlag{
						Name:     "user",
						Usage:    "Owning user id",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "completed-at",
						Usage: "Completion timestamp (RFC3339 or '2006-01-02 15:04:05'), omit for an open task",
					},
				},
				Action: r.TaskAdd,
			},
			{
				Name:  "export",
				Usage: "Export the task listing to a file",
				Flags: []cli.Flag{
					configFlag(),
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format: csv, markdown or text",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.TasksExport,
			},
		},
	}
}

// modelsCommand handles model registry operations
func modelsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "models",
		Usage: "Model registry operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all registered models",
				Flags: []cli.Flag{
					configFlag(),
					prettyFlag(),
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or csv",
						Value: "json",
					},
				},
				Action: r.ModelsList,
			},
			{
				Name:  "add",
				Usage: "Register a model version",
				Flags: []cli.Flag{
					configFlag(),
					prettyFlag(),
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Model name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "version",
						Usage:    "Model version",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "uri",
						Usage:    "Model artifact URI",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "description",
						Usage: "Model description",
					},
					&cli.StringFlag{
						Name:  "registered-by",
						Usage: "Registering user",
					},
				},
				Action: r.ModelAdd,
			},
		},
	}
}

// jobsCommand handles data ingestion job operations
func jobsCommand(r *Runner) *cli.Command {
	idFlag := func() cli.Flag {
		return &cli.IntFlag{
			Name:     "id",
			Usage:    "Ingestion job id",
			Required: true,
		}
	}

	return &cli.Command{
		Name:  "jobs",
		Usage: "Data ingestion job operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List all ingestion jobs",
				Flags: []cli.Flag{
					configFlag(),
					prettyFlag(),
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: json or csv",
						Value: "json",
					},
				},
				Action: r.JobsList,
			},
			{
				Name:  "add",
				Usage: "Queue a pending ingestion job for a data source",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "source"},
				},
				Flags:  []cli.Flag{configFlag(), prettyFlag()},
				Action: r.JobAdd,
			},
			{
				Name:   "start",
				Usage:  "Mark an ingestion job in progress",
				Flags:  []cli.Flag{configFlag(), idFlag()},
				Action: r.JobStart,
			},
			{
				Name:   "complete",
				Usage:  "Mark an ingestion job completed",
				Flags:  []cli.Flag{configFlag(), idFlag()},
				Action: r.JobComplete,
			},
			{
				Name:   "fail",
				Usage:  "Mark an ingestion job failed",
				Flags:  []cli.Flag{configFlag(), idFlag()},
				Action: r.JobFail,
			},
			{
				Name:    "ui",
				Aliases: []string{"monitor"},
				Usage:   "Launch the interactive job monitor",
				Flags:   []cli.Flag{configFlag()},
				Action:  r.JobsUI,
			},
		},
	}
}
