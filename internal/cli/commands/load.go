package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logplot/pkg/parser"
	"github.com/ccollicutt/logplot/pkg/table"
)

// SelectionOptions picks the run and columns shown from a log.
type SelectionOptions struct {
	Run     int
	XColumn string
	YColumn string
}

func (o *SelectionOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&o.Run, "run", 0, "Run to display (default from config, 1)")
	cmd.Flags().StringVarP(&o.XColumn, "x-column", "x", "", "Label column (default from config, Step)")
	cmd.Flags().StringVarP(&o.YColumn, "y-column", "y", "", "Value column (default from config, v_ntot)")
}

// resolve fills unset options from the configuration.
func (o *SelectionOptions) resolve(e *env) SelectionOptions {
	r := *o
	if r.Run == 0 {
		r.Run = e.cfg.Run
	}
	if r.XColumn == "" {
		r.XColumn = e.cfg.Columns.X
	}
	if r.YColumn == "" {
		r.YColumn = e.cfg.Columns.Y
	}
	return r
}

// loaded is one log file turned into a table.
type loaded struct {
	doc   *parser.LogDocument
	run   *parser.Run
	table *table.Table
}

// loadLog parses a log file and loads the selected run and columns.
func loadLog(e *env, path string, sel SelectionOptions) (*loaded, error) {
	doc, err := parser.ParseFile(e.ctx, path, parser.WithLogger(e.logger))
	if err != nil {
		return nil, err
	}
	e.logger.Debug().
		Str("file", path).
		Int("runs", len(doc.Runs)).
		Int("rows", doc.TotalRows()).
		Msg("parsed log")

	run, err := doc.Run(sel.Run)
	if err != nil {
		return nil, err
	}

	tbl, err := table.FromRun(run, sel.XColumn, sel.YColumn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &loaded{doc: doc, run: run, table: tbl}, nil
}

// selectLogs expands patterns and returns the log files among them. CSV and
// profile files are accepted but have no handler yet.
func selectLogs(e *env, patterns []string) ([]string, error) {
	sel, err := parser.Select(patterns)
	if err != nil {
		return nil, fmt.Errorf("expanding file patterns: %w", err)
	}
	for _, p := range sel.CSV {
		e.logger.Info().Str("file", p).Msg("csv import is not supported yet, skipping")
	}
	for _, p := range sel.Profiles {
		e.logger.Info().Str("file", p).Msg("profile import is not supported yet, skipping")
	}
	for _, p := range sel.Unknown {
		e.logger.Warn().Str("file", p).Msg("not a log file, skipping")
	}
	if len(sel.Logs) == 0 {
		return nil, fmt.Errorf("no log files among %v", patterns)
	}
	return sel.Logs, nil
}
