package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logplot/pkg/output"
	"github.com/ccollicutt/logplot/pkg/table"
)

// AddOptions holds command-line options for the add command.
type AddOptions struct {
	Empty  bool
	Output string
}

// NewAddCommand creates the add command.
func NewAddCommand() *cobra.Command {
	opts := &AddOptions{}

	cmd := &cobra.Command{
		Use:   "add <description> <price> [<description> <price>...]",
		Short: "Add manual entries to a table",
		Long: `Append description/price entries to a table and print it.

The table starts with the example row (Step 0.00, v_ntot 1.00) unless
--empty is given. Prices must be numbers; they are shown with two decimals.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || len(args)%2 != 0 {
				return fmt.Errorf("expected description/price pairs, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.Empty, "empty", false, "Start from an empty Description/Price table")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string, opts *AddOptions) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	formatter, err := output.New(opts.Output, output.FormatOptions{})
	if err != nil {
		return err
	}

	tbl := table.Example()
	if opts.Empty {
		tbl = table.New("Description", "Price")
	}

	for i := 0; i < len(args); i += 2 {
		if err := tbl.Add(args[i], args[i+1]); err != nil {
			return fmt.Errorf("entry %d: %w", i/2+1, err)
		}
	}
	e.logger.Debug().Int("entries", len(args)/2).Int("rows", tbl.Len()).Msg("entries added")

	return formatter.Format(e.ctx, output.NewReport(tbl, nil, nil), cmd.OutOrStdout())
}
