// Package output provides formatting for tables and run inventories.
package output

import (
	"github.com/ccollicutt/logplot/pkg/parser"
	"github.com/ccollicutt/logplot/pkg/table"
)

// Report is a displayed table plus where it came from.
type Report struct {
	// Source is the log file the table was loaded from, empty for manual tables.
	Source string `json:"source,omitempty"`

	// Run is the run index the rows belong to, zero for manual tables.
	Run int `json:"run,omitempty"`

	// Columns are the two column titles.
	Columns [2]string `json:"columns"`

	// Rows hold the two-decimal display strings.
	Rows []Row `json:"rows"`

	// Summary is present when the table was loaded from a log.
	Summary *Summary `json:"summary,omitempty"`
}

// Row is one displayed table line.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary describes the parsed document behind a report.
type Summary struct {
	Runs         int `json:"runs"`
	Rows         int `json:"rows"`
	Dropped      int `json:"dropped"`
	LinesRead    int `json:"lines_read"`
	LinesSkipped int `json:"lines_skipped"`
}

// Inventory lists the runs of a parsed document.
type Inventory struct {
	Source string    `json:"source"`
	Runs   []RunInfo `json:"runs"`
}

// RunInfo describes one run.
type RunInfo struct {
	Index   int      `json:"index"`
	Header  []string `json:"header"`
	Rows    int      `json:"rows"`
	Dropped int      `json:"dropped"`
	Every   bool     `json:"every"`
}

// NewReport creates a Report from a table. doc and run may be nil for a
// manually built table.
func NewReport(t *table.Table, doc *parser.LogDocument, run *parser.Run) *Report {
	report := &Report{
		Columns: t.Columns,
		Rows:    make([]Row, t.Len()),
	}
	for i := range t.Rows {
		label, value := t.Cells(i)
		report.Rows[i] = Row{Label: label, Value: value}
	}
	if run != nil {
		report.Run = run.Index
	}
	if doc != nil {
		report.Source = doc.Source
		report.Summary = &Summary{
			Runs:         len(doc.Runs),
			Rows:         doc.TotalRows(),
			LinesRead:    doc.LinesRead,
			LinesSkipped: doc.LinesSkipped,
		}
		for _, r := range doc.Runs {
			report.Summary.Dropped += r.Dropped
		}
	}
	return report
}

// NewInventory describes every run of doc.
func NewInventory(doc *parser.LogDocument) *Inventory {
	inv := &Inventory{
		Source: doc.Source,
		Runs:   make([]RunInfo, len(doc.Runs)),
	}
	for i, r := range doc.Runs {
		inv.Runs[i] = RunInfo{
			Index:   r.Index,
			Header:  r.Header,
			Rows:    len(r.Rows),
			Dropped: r.Dropped,
			Every:   r.Every,
		}
	}
	return inv
}

// HasRows reports whether the table has any rows.
func (r *Report) HasRows() bool {
	return len(r.Rows) > 0
}
