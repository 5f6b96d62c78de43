package commands

import (
	"github.com/spf13/cobra"

	"github.com/ccollicutt/logplot/pkg/output"
)

// OpenOptions holds command-line options for the open command.
type OpenOptions struct {
	SelectionOptions

	Output  string
	Verbose bool
	Quiet   bool
}

// NewOpenCommand creates the open command.
func NewOpenCommand() *cobra.Command {
	opts := &OpenOptions{}

	cmd := &cobra.Command{
		Use:   "open <log-file>...",
		Short: "Load a run of a simulation log into a table",
		Long: `Parse simulation log files and print two columns of one run as a table.

Files are routed by name: names containing "log" are parsed, names
containing "csv" or "profile" are accepted but skipped (no importer yet).
Glob patterns are expanded.

Values are shown with two decimal places.

Exit codes:
  0 - Table loaded with at least one row
  1 - Table loaded but empty
  2 - Missing file, run, or column`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOpen(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show the parse summary")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Row count only")

	return cmd
}

func runOpen(cmd *cobra.Command, args []string, opts *OpenOptions) error {
	ExitCode = 0

	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	formatter, err := output.New(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	files, err := selectLogs(e, args)
	if err != nil {
		return err
	}

	sel := opts.resolve(e)
	empty := false
	for _, path := range files {
		l, err := loadLog(e, path, sel)
		if err != nil {
			return err
		}

		report := output.NewReport(l.table, l.doc, l.run)
		if err := formatter.Format(e.ctx, report, cmd.OutOrStdout()); err != nil {
			return err
		}
		if !report.HasRows() {
			empty = true
		}
	}

	if empty {
		ExitCode = 1
	}
	return nil
}
