// Package parser reads simulation logs and extracts the numeric tables of
// each run.
package parser

import (
	"fmt"
	"slices"
)

// LogDocument is the parse result for one log stream.
type LogDocument struct {
	// Source is the file path the document was read from, if any.
	Source string

	// Runs holds every run in the order its marker was seen.
	Runs []*Run

	// LinesRead is the number of lines consumed from the stream.
	LinesRead int

	// LinesSkipped counts lines with fewer than two tokens.
	LinesSkipped int
}

// Run is one simulation segment delimited by a run marker.
type Run struct {
	// Index is the 1-based position of the run in the log.
	Index int

	// Header is the ordered list of column names.
	Header []string

	// Rows holds the coerced data rows; each has len(Header) fields.
	Rows [][]float64

	// Every is set when the run marker line contains the token "every".
	Every bool

	// Dropped counts data lines rejected by coercion or width checks.
	Dropped int

	columns map[string]int
}

// Key returns the display key of the run, e.g. "Run 1".
func (r *Run) Key() string {
	return fmt.Sprintf("Run %d", r.Index)
}

// Run returns the run with the given 1-based index.
func (d *LogDocument) Run(index int) (*Run, error) {
	for _, r := range d.Runs {
		if r.Index == index {
			return r, nil
		}
	}
	return nil, &RunNotFoundError{Index: index, Available: len(d.Runs), Source: d.Source}
}

// TotalRows returns the number of rows across all runs.
func (d *LogDocument) TotalRows() int {
	n := 0
	for _, r := range d.Runs {
		n += len(r.Rows)
	}
	return n
}

// Equal reports whether two documents hold the same runs.
// Source and line counters are compared as well.
func (d *LogDocument) Equal(other *LogDocument) bool {
	if d == nil || other == nil {
		return d == other
	}
	if d.Source != other.Source || d.LinesRead != other.LinesRead || d.LinesSkipped != other.LinesSkipped {
		return false
	}
	return slices.EqualFunc(d.Runs, other.Runs, func(a, b *Run) bool {
		return a.equal(b)
	})
}

func (r *Run) equal(o *Run) bool {
	if r.Index != o.Index || r.Every != o.Every || r.Dropped != o.Dropped {
		return false
	}
	if !slices.Equal(r.Header, o.Header) {
		return false
	}
	return slices.EqualFunc(r.Rows, o.Rows, func(a, b []float64) bool {
		return slices.Equal(a, b)
	})
}
