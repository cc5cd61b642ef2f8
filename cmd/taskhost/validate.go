package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tasklattice/taskhost/internal/env"
	"github.com/tasklattice/taskhost/internal/options"
)

var validateCmd = &cli.Command{
	Name:    "validate",
	Aliases: []string{"lint"},
	Usage:   "Validate an options file against the host invariants",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:    "tree",
			Aliases: []string{"t"},
			Usage:   "Show detailed tree view of the validated options",
		},
		&cli.StringFlag{
			Name:    "options",
			Aliases: []string{"o"},
			Usage:   "Path to the options file",
		},
		&cli.StringFlag{
			Name:  "env-file",
			Usage: "Dotenv file layered under the process environment for placeholder resolution",
		},
	},
	Suggest:           true,
	ReadArgsFromStdin: true,
	Action:            validateAction,
}

func validateAction(_ context.Context, cmd *cli.Command) error {
	SetupLogger(cmd.Root().String("log-level"))

	// Check for options flag first
	optionsPath := cmd.String("options")

	// If no options flag, check for positional argument
	if optionsPath == "" {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf(
				"options file path required (use the --options flag, or provide the options file as positional argument)",
			)
		}
		optionsPath = cmd.Args().Get(0)
	}

	resolver, err := buildResolver(cmd.String("env-file"))
	if err != nil {
		return err
	}

	opts, err := options.NewFromFile(optionsPath)
	if err != nil {
		return fmt.Errorf("failed to load options: %w", err)
	}

	if err := options.Resolve(opts, resolver); err != nil {
		return fmt.Errorf("failed to resolve options: %w", err)
	}

	if err := options.Validate(opts, resolver); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	fmt.Printf("Options file %s is valid\n", optionsPath)

	if cmd.Bool("tree") {
		// Use the Stringer interface to print the options in a fancy tree format
		fmt.Println(opts)
		return nil
	}

	fmt.Println(renderOptionsSummary(optionsPath, opts))
	return nil
}

// buildResolver layers an optional dotenv file under the process environment.
func buildResolver(envFile string) (env.Resolver, error) {
	base := env.FromOS()
	if envFile == "" {
		return base, nil
	}

	merged, err := env.LoadDotEnv(base, envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}
	return merged, nil
}

// renderOptionsSummary creates a formatted summary string for the options
func renderOptionsSummary(path string, opts *options.Options) string {
	var summary strings.Builder

	summary.WriteString("\nOptions Summary:\n")
	summary.WriteString(fmt.Sprintf("- Path: %s\n", path))
	summary.WriteString(fmt.Sprintf("- Task Hub: %s\n", opts.HubName()))
	summary.WriteString(fmt.Sprintf("- Default Hub Name: %t\n", opts.IsDefaultHubName()))
	summary.WriteString(fmt.Sprintf("- Notifications: %t\n", opts.Notifications.Enabled()))
	summary.WriteString(fmt.Sprintf("- Tracing: %t\n", opts.Tracing.Enabled))
	summary.WriteString(fmt.Sprintf("- App Lease: %t\n", opts.UseAppLease))
	summary.WriteString("\nUse --tree for a more detailed view of the options.")

	return summary.String()
}
