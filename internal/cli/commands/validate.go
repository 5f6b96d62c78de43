package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logplot/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a logplot configuration file.

Checks:
  - YAML syntax
  - Run index and column names
  - Chart size, tick count, label format, and image format
  - Log level and format`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(w, "\nConfiguration valid!\n")
	fmt.Fprintf(w, "  Run:     %d\n", cfg.Run)
	fmt.Fprintf(w, "  Columns: %s vs %s\n", cfg.Columns.Y, cfg.Columns.X)
	fmt.Fprintf(w, "  Chart:   %dx%d %s, %d ticks, labels %s\n",
		cfg.Chart.Width, cfg.Chart.Height, cfg.Chart.Format, cfg.Chart.TickCount, cfg.Chart.LabelFormat)
	fmt.Fprintf(w, "  Logging: %s (%s)\n", cfg.Log.Level, cfg.Log.Format)

	return nil
}
