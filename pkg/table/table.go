// Package table holds the two-column display table fed by log runs and
// manual entries.
package table

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ccollicutt/logplot/pkg/parser"
)

// Default column names, matching the example data.
const (
	DefaultLabelColumn = "Step"
	DefaultValueColumn = "v_ntot"
)

// ErrIncompleteEntry is returned by Add when a field is blank.
var ErrIncompleteEntry = errors.New("description and price are both required")

// NumericFormatError reports a field that does not parse as a number.
type NumericFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *NumericFormatError) Error() string {
	return fmt.Sprintf("%s %q is not a number", e.Field, e.Value)
}

func (e *NumericFormatError) Unwrap() error {
	return e.Err
}

// Row is one table line as displayed: a label and a two-decimal value.
type Row struct {
	Label string
	Value string
}

// Table is an ordered list of rows under two column titles.
type Table struct {
	Columns [2]string
	Rows    []Row
}

// New returns an empty table with the given column titles.
func New(labelCol, valueCol string) *Table {
	return &Table{Columns: [2]string{labelCol, valueCol}}
}

// Example returns the table shown before any file is opened.
func Example() *Table {
	t := New(DefaultLabelColumn, DefaultValueColumn)
	t.appendNumeric(0, 1)
	return t
}

// FromRun builds a table from two named columns of a run.
func FromRun(run *parser.Run, x, y string) (*Table, error) {
	t := New(x, y)
	if err := t.Load(run, x, y); err != nil {
		return nil, err
	}
	return t, nil
}

// Load replaces the table contents with two columns of a run. On a lookup
// failure the table is left unchanged.
func (t *Table) Load(run *parser.Run, x, y string) error {
	xs, ys, err := run.Pair(x, y)
	if err != nil {
		return err
	}
	t.Clear()
	t.Columns = [2]string{x, y}
	for i := range xs {
		t.appendNumeric(xs[i], ys[i])
	}
	return nil
}

// appendNumeric formats both cells the same way. NaN and infinities from a
// diverged run render as "NaN", "+Inf" and "-Inf".
func (t *Table) appendNumeric(label, value float64) {
	t.Rows = append(t.Rows, Row{
		Label: fmt.Sprintf("%.2f", label),
		Value: fmt.Sprintf("%.2f", value),
	})
}

// CanAdd reports whether a manual entry has both fields filled in.
func CanAdd(description, price string) bool {
	return strings.TrimSpace(description) != "" && strings.TrimSpace(price) != ""
}

// Add appends a manual entry. The price must parse as a decimal number.
func (t *Table) Add(description, price string) error {
	if !CanAdd(description, price) {
		return ErrIncompleteEntry
	}
	value, err := decimal.NewFromString(strings.TrimSpace(price))
	if err != nil {
		return &NumericFormatError{Field: "price", Value: price, Err: err}
	}
	t.Rows = append(t.Rows, Row{Label: description, Value: value.StringFixed(2)})
	return nil
}

// Clear removes every row and keeps the column titles.
func (t *Table) Clear() {
	t.Rows = t.Rows[:0]
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Cells returns the display strings of row i.
func (t *Table) Cells(i int) (label, value string) {
	r := t.Rows[i]
	return r.Label, r.Value
}
