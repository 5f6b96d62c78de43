package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "%s: %d row(s)\n", reportTitle(report), len(report.Rows))
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "=== %s ===\n", reportTitle(report))

	// Labels left-aligned, values right-aligned
	labelWidth, valueWidth := len(report.Columns[0]), len(report.Columns[1])
	for _, row := range report.Rows {
		labelWidth = max(labelWidth, len(row.Label))
		valueWidth = max(valueWidth, len(row.Value))
	}

	fmt.Fprintf(w, "%-*s  %*s\n", labelWidth, report.Columns[0], valueWidth, report.Columns[1])
	fmt.Fprintf(w, "%s  %s\n", strings.Repeat("-", labelWidth), strings.Repeat("-", valueWidth))
	for _, row := range report.Rows {
		fmt.Fprintf(w, "%-*s  %*s\n", labelWidth, row.Label, valueWidth, row.Value)
	}

	if f.opts.Verbose && report.Summary != nil {
		s := report.Summary
		fmt.Fprintln(w, "---")
		fmt.Fprintf(w, "Runs: %d, rows: %d, dropped: %d\n", s.Runs, s.Rows, s.Dropped)
		_, err := fmt.Fprintf(w, "Lines read: %d, skipped: %d\n", s.LinesRead, s.LinesSkipped)
		return err
	}
	return nil
}

// FormatInventory renders the run listing as text.
func (f *TextFormatter) FormatInventory(ctx context.Context, inv *Inventory, w io.Writer) error {
	fmt.Fprintf(w, "%s: %d run(s)\n", inv.Source, len(inv.Runs))
	if f.opts.Quiet {
		return nil
	}
	for _, r := range inv.Runs {
		every := ""
		if r.Every {
			every = " [every]"
		}
		fmt.Fprintf(w, "  Run %d%s: %d row(s), %d dropped\n", r.Index, every, r.Rows, r.Dropped)
		if len(r.Header) > 0 {
			fmt.Fprintf(w, "    columns: %s\n", strings.Join(r.Header, " "))
		} else {
			fmt.Fprintln(w, "    columns: (none)")
		}
	}
	return nil
}

func reportTitle(report *Report) string {
	switch {
	case report.Source != "" && report.Run > 0:
		return fmt.Sprintf("%s (Run %d)", report.Source, report.Run)
	case report.Source != "":
		return report.Source
	default:
		return "Table"
	}
}
