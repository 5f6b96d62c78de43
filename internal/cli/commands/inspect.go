package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/logplot/pkg/output"
	"github.com/ccollicutt/logplot/pkg/parser"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <log-file>...",
		Short: "List the runs and columns of simulation logs",
		Long: `Parse simulation log files and list every run with its column header,
accepted row count, and the number of data lines that were dropped.

Runs whose marker line contains "every" are flagged.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, format string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	formatter, err := output.New(format, output.FormatOptions{})
	if err != nil {
		return err
	}

	files, err := selectLogs(e, args)
	if err != nil {
		return err
	}

	for _, path := range files {
		doc, err := parser.ParseFile(e.ctx, path, parser.WithLogger(e.logger))
		if err != nil {
			return err
		}
		if err := formatter.FormatInventory(e.ctx, output.NewInventory(doc), cmd.OutOrStdout()); err != nil {
			return err
		}
	}
	return nil
}
