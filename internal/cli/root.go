// Package cli provides the command-line interface for logplot.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logplot/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(context.Background(), NewRootCommand(), os.Args[1:])
}

func run(ctx context.Context, rootCmd *cobra.Command, args []string) int {
	commands.ExitCode = 0
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// SilenceErrors prevents Cobra from printing this
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 2
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logplot",
		Short: "Extract and plot numeric tables from simulation logs",
		Long: `logplot reads molecular-dynamics style simulation logs and pulls out the
numeric tables printed between "run" and "Loop" lines.

It can:
  - Show two columns of a run as a table
  - Plot one column against another as a PNG or SVG line chart
  - List the runs and column headers of a log
  - Build small tables from manual description/price entries

Files whose names contain "log" are parsed; "csv" and "profile" files are
recognised but not imported yet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&commands.Globals.ConfigPath, "config", "c", "", "Path to configuration file (YAML)")
	flags.StringVar(&commands.Globals.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")
	flags.StringVar(&commands.Globals.LogFormat, "log-format", "", "Log format (console|json)")

	rootCmd.AddCommand(commands.NewOpenCommand())
	rootCmd.AddCommand(commands.NewPlotCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewAddCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
