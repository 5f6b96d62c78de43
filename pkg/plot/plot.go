// Package plot turns two table columns into a 2D point series and renders it
// as a line chart.
package plot

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/ccollicutt/logplot/pkg/parser"
	"github.com/ccollicutt/logplot/pkg/table"
)

// Axis defaults.
const (
	DefaultTickCount   = 10
	DefaultLabelFormat = "%.2f"
	DefaultWidth       = 1024
	DefaultHeight      = 400
)

// ErrNoPoints is returned when rendering a series without finite points.
var ErrNoPoints = errors.New("series has no points")

// Point is one (x, y) pair.
type Point struct {
	X, Y float64
}

// Series is an ordered list of points.
type Series struct {
	Name   string
	Points []Point
}

// Axis holds the title and tick hints of one chart axis.
type Axis struct {
	Title       string
	TickCount   int
	LabelFormat string
}

// Tick is a labelled position on an axis.
type Tick struct {
	Value float64
	Label string
}

// Chart is a single-series line chart.
type Chart struct {
	Title  string
	Series Series
	X, Y   Axis
	Width  int
	Height int
}

// NewChart returns a chart with default axis hints and size.
func NewChart(xTitle, yTitle string, points []Point) *Chart {
	return &Chart{
		Series: Series{Name: yTitle, Points: points},
		X:      Axis{Title: xTitle, TickCount: DefaultTickCount, LabelFormat: DefaultLabelFormat},
		Y:      Axis{Title: yTitle, TickCount: DefaultTickCount, LabelFormat: DefaultLabelFormat},
		Width:  DefaultWidth,
		Height: DefaultHeight,
	}
}

// FromRun plots column y against column x of a run.
func FromRun(run *parser.Run, x, y string) (*Chart, error) {
	xs, ys, err := run.Pair(x, y)
	if err != nil {
		return nil, err
	}
	points := make([]Point, len(xs))
	for i := range xs {
		points[i] = Point{X: xs[i], Y: ys[i]}
	}
	return NewChart(x, y, points), nil
}

// FromTable plots the rows of a table by parsing the displayed cells back
// into numbers. Both cells must be numeric.
func FromTable(t *table.Table) (*Chart, error) {
	points := make([]Point, 0, t.Len())
	for i := range t.Rows {
		label, value := t.Cells(i)
		x, err := parseCell(t.Columns[0], label)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		y, err := parseCell(t.Columns[1], value)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return NewChart(t.Columns[0], t.Columns[1], points), nil
}

func parseCell(column, cell string) (float64, error) {
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, &table.NumericFormatError{Field: column, Value: cell, Err: err}
	}
	return v, nil
}

// Finite returns the points whose coordinates are both finite numbers.
func (s Series) Finite() []Point {
	out := make([]Point, 0, len(s.Points))
	for _, p := range s.Points {
		if isFinite(p.X) && isFinite(p.Y) {
			out = append(out, p)
		}
	}
	return out
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Bounds returns the extent of the finite points on both axes.
func (s Series) Bounds() (minX, maxX, minY, maxY float64) {
	points := s.Finite()
	if len(points) == 0 {
		return 0, 0, 0, 0
	}
	minX, maxX = points[0].X, points[0].X
	minY, maxY = points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	return minX, maxX, minY, maxY
}

// Ticks returns TickCount evenly spaced ticks from lo to hi inclusive.
func (a Axis) Ticks(lo, hi float64) []Tick {
	n := a.TickCount
	if n < 2 {
		n = 2
	}
	format := a.LabelFormat
	if format == "" {
		format = DefaultLabelFormat
	}
	step := (hi - lo) / float64(n-1)
	ticks := make([]Tick, n)
	for i := range ticks {
		v := lo + float64(i)*step
		if i == n-1 {
			v = hi
		}
		ticks[i] = Tick{Value: v, Label: fmt.Sprintf(format, v)}
	}
	return ticks
}

// padRange widens a degenerate range so the axis has a non-zero span.
func padRange(lo, hi float64) (float64, float64) {
	if hi > lo {
		return lo, hi
	}
	pad := 0.5
	if lo != 0 {
		pad = abs(lo) * 0.1
	}
	return lo - pad, hi + pad
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
