package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"

	"github.com/tasklattice/taskhost/internal/startup"
)

var startCmd = &cli.Command{
	Name:  "start",
	Usage: "Start the task host",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "options",
			Aliases: []string{"o"},
			Usage:   "Path to the options file; omit to start with host defaults",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Dotenv file layered under the process environment for placeholder resolution",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		SetupLogger(cmd.Root().String("log-level"))
		logger := slog.Default()

		resolver, err := buildResolver(cmd.String("env-file"))
		if err != nil {
			return cli.Exit(err, 1)
		}

		runner, err := startup.NewRunner(
			cmd.String("options"),
			resolver,
			startup.WithLogger(logger.With("component", "startup")),
			startup.WithContext(ctx),
		)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to create startup runner: %w", err), 1)
		}

		super, err := supervisor.New(
			supervisor.WithRunnables(runner),
			supervisor.WithLogHandler(logger.Handler()),
			supervisor.WithContext(ctx),
		)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to create supervisor: %w", err), 1)
		}
		if err := super.Run(); err != nil {
			return cli.Exit(fmt.Errorf("failed to run host: %w", err), 1)
		}

		logger.Info("Host shutdown complete")
		return nil
	},
}
