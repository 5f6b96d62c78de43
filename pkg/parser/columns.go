package parser

import (
	"errors"
	"fmt"
	"strings"
)

// ErrColumnNotFound is matched by every *ColumnNotFoundError.
var ErrColumnNotFound = errors.New("column not found")

// ErrRunNotFound is matched by every *RunNotFoundError.
var ErrRunNotFound = errors.New("run not found")

// ColumnNotFoundError reports a header name absent from a run.
type ColumnNotFoundError struct {
	Column string
	Run    int
	Header []string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in run %d (header: %s)",
		e.Column, e.Run, strings.Join(e.Header, " "))
}

// Is makes errors.Is(err, ErrColumnNotFound) hold.
func (e *ColumnNotFoundError) Is(target error) bool {
	return target == ErrColumnNotFound
}

// RunNotFoundError reports a run index the document does not contain.
type RunNotFoundError struct {
	Index     int
	Available int
	Source    string
}

func (e *RunNotFoundError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("run %d not found in %s (%d run(s) available)", e.Index, e.Source, e.Available)
	}
	return fmt.Sprintf("run %d not found (%d run(s) available)", e.Index, e.Available)
}

// Is makes errors.Is(err, ErrRunNotFound) hold.
func (e *RunNotFoundError) Is(target error) bool {
	return target == ErrRunNotFound
}

// buildIndex maps header names to column positions. The first occurrence of
// a duplicated name wins.
func (r *Run) buildIndex() {
	r.columns = make(map[string]int, len(r.Header))
	for i, name := range r.Header {
		if _, ok := r.columns[name]; !ok {
			r.columns[name] = i
		}
	}
}

// ColumnIndex returns the position of the named column.
func (r *Run) ColumnIndex(name string) (int, error) {
	if r.columns == nil {
		r.buildIndex()
	}
	i, ok := r.columns[name]
	if !ok {
		return -1, &ColumnNotFoundError{Column: name, Run: r.Index, Header: r.Header}
	}
	return i, nil
}

// Column returns every value of the named column in row order.
func (r *Run) Column(name string) ([]float64, error) {
	i, err := r.ColumnIndex(name)
	if err != nil {
		return nil, err
	}
	values := make([]float64, len(r.Rows))
	for n, row := range r.Rows {
		values[n] = row[i]
	}
	return values, nil
}

// Pair returns two columns side by side, ready for a table or a series.
func (r *Run) Pair(x, y string) (xs, ys []float64, err error) {
	if xs, err = r.Column(x); err != nil {
		return nil, nil, err
	}
	if ys, err = r.Column(y); err != nil {
		return nil, nil, err
	}
	return xs, ys, nil
}
