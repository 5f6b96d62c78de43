package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logplot/pkg/plot"
)

// PlotOptions holds command-line options for the plot command.
type PlotOptions struct {
	SelectionOptions

	Out    string
	Format string
	Title  string
}

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	opts := &PlotOptions{}

	cmd := &cobra.Command{
		Use:   "plot <log-file>",
		Short: "Render a run of a simulation log as a line chart",
		Long: `Load two columns of one run and draw the value column against the label
column as a line chart. Axes carry the column names as titles, 10 ticks and
two-decimal labels unless the config says otherwise.

The image format is taken from --format, then from the --out extension,
then from the config (png by default).

Example:
  logplot plot log.lammps
  logplot plot -y Temp --out temp.svg log.lammps`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlot(cmd, args, opts)
		},
	}

	opts.addFlags(cmd)
	cmd.Flags().StringVarP(&opts.Out, "out", "O", "", "Output image path (default chart.<format>)")
	cmd.Flags().StringVar(&opts.Format, "format", "", "Image format (png|svg)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "Chart title")

	return cmd
}

func runPlot(cmd *cobra.Command, args []string, opts *PlotOptions) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}

	files, err := selectLogs(e, args)
	if err != nil {
		return err
	}

	format, out, err := resolveImage(opts, e.cfg.Chart.Format)
	if err != nil {
		return err
	}

	l, err := loadLog(e, files[0], opts.resolve(e))
	if err != nil {
		return err
	}

	chart, err := plot.FromTable(l.table)
	if err != nil {
		return err
	}
	chart.Title = e.cfg.Chart.Title
	if opts.Title != "" {
		chart.Title = opts.Title
	}
	chart.Width, chart.Height = e.cfg.Chart.Width, e.cfg.Chart.Height
	for _, axis := range []*plot.Axis{&chart.X, &chart.Y} {
		axis.TickCount = e.cfg.Chart.TickCount
		axis.LabelFormat = e.cfg.Chart.LabelFormat
	}

	if err := writeChart(chart, out, format); err != nil {
		return err
	}

	e.logger.Info().Str("file", out).Int("points", len(chart.Series.Points)).Msg("chart written")
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d points)\n", out, len(chart.Series.Points))
	return nil
}

// resolveImage decides the output format and path.
func resolveImage(opts *PlotOptions, fallback string) (plot.Format, string, error) {
	var (
		format plot.Format
		err    error
	)
	switch {
	case opts.Format != "":
		format, err = plot.ParseFormat(opts.Format)
	case opts.Out != "":
		format, err = plot.FormatFromPath(opts.Out)
	default:
		format, err = plot.ParseFormat(fallback)
	}
	if err != nil {
		return "", "", err
	}

	out := opts.Out
	if out == "" {
		out = "chart." + string(format)
	}
	return format, out, nil
}

func writeChart(chart *plot.Chart, path string, format plot.Format) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return fmt.Errorf("creating chart file: %w", err)
	}
	if err := chart.Render(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
