package plot

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ccollicutt/logplot/pkg/parser"
	"github.com/ccollicutt/logplot/pkg/table"
)

const sampleLog = `Run 1
Step v_ntot
step 0 1
step 1 2.5
step 2 2
loop
`

func sampleRun(t *testing.T) *parser.Run {
	t.Helper()
	doc, err := parser.Parse(context.Background(), strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	run, err := doc.Run(1)
	if err != nil {
		t.Fatalf("Run(1) error = %v", err)
	}
	return run
}

func TestFromRun(t *testing.T) {
	c, err := FromRun(sampleRun(t), "Step", "v_ntot")
	if err != nil {
		t.Fatalf("FromRun() error = %v", err)
	}

	want := []Point{{0, 1}, {1, 2.5}, {2, 2}}
	if len(c.Series.Points) != len(want) {
		t.Fatalf("len(Points) = %d, want %d", len(c.Series.Points), len(want))
	}
	for i, p := range want {
		if c.Series.Points[i] != p {
			t.Errorf("Points[%d] = %v, want %v", i, c.Series.Points[i], p)
		}
	}
	if c.X.Title != "Step" || c.Y.Title != "v_ntot" {
		t.Errorf("axis titles = (%q, %q), want (Step, v_ntot)", c.X.Title, c.Y.Title)
	}
	if c.X.TickCount != 10 || c.Y.LabelFormat != "%.2f" {
		t.Errorf("axis hints = %+v / %+v", c.X, c.Y)
	}
}

func TestFromRun_MissingColumn(t *testing.T) {
	_, err := FromRun(sampleRun(t), "Step", "missing")
	if !errors.Is(err, parser.ErrColumnNotFound) {
		t.Errorf("FromRun() error = %v, want ErrColumnNotFound", err)
	}
}

func TestFromTable(t *testing.T) {
	tbl, err := table.FromRun(sampleRun(t), "Step", "v_ntot")
	if err != nil {
		t.Fatal(err)
	}

	c, err := FromTable(tbl)
	if err != nil {
		t.Fatalf("FromTable() error = %v", err)
	}
	if len(c.Series.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(c.Series.Points))
	}
	if c.Series.Points[1] != (Point{X: 1, Y: 2.5}) {
		t.Errorf("Points[1] = %v, want {1 2.5}", c.Series.Points[1])
	}
}

func TestFromTable_NonNumericLabel(t *testing.T) {
	tbl := table.Example()
	if err := tbl.Add("Coffee", "3.50"); err != nil {
		t.Fatal(err)
	}

	_, err := FromTable(tbl)
	var numErr *table.NumericFormatError
	if !errors.As(err, &numErr) {
		t.Fatalf("FromTable() error = %v, want *table.NumericFormatError", err)
	}
	if numErr.Value != "Coffee" {
		t.Errorf("Value = %q, want Coffee", numErr.Value)
	}
}

func TestAxisTicks(t *testing.T) {
	a := Axis{TickCount: 10, LabelFormat: "%.2f"}

	ticks := a.Ticks(0, 9)
	if len(ticks) != 10 {
		t.Fatalf("len(ticks) = %d, want 10", len(ticks))
	}
	if ticks[0].Label != "0.00" || ticks[9].Label != "9.00" {
		t.Errorf("ticks = %v", ticks)
	}
	if ticks[3].Value != 3 {
		t.Errorf("ticks[3].Value = %v, want 3", ticks[3].Value)
	}
}

func TestAxisTicks_Defaults(t *testing.T) {
	ticks := Axis{}.Ticks(1, 2)
	if len(ticks) != 2 {
		t.Fatalf("len(ticks) = %d, want 2", len(ticks))
	}
	if ticks[1].Label != "2.00" {
		t.Errorf("ticks[1].Label = %q, want 2.00", ticks[1].Label)
	}
}

func TestPadRange(t *testing.T) {
	tests := []struct {
		lo, hi         float64
		wantLo, wantHi float64
	}{
		{0, 1, 0, 1},
		{0, 0, -0.5, 0.5},
		{10, 10, 9, 11},
		{-10, -10, -11, -9},
	}

	for _, tt := range tests {
		lo, hi := padRange(tt.lo, tt.hi)
		if lo != tt.wantLo || hi != tt.wantHi {
			t.Errorf("padRange(%v, %v) = (%v, %v), want (%v, %v)", tt.lo, tt.hi, lo, hi, tt.wantLo, tt.wantHi)
		}
	}
}

func TestRender_PNG(t *testing.T) {
	c, err := FromRun(sampleRun(t), "Step", "v_ntot")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := c.Render(&buf, FormatPNG); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("Render() output is not a PNG")
	}
}

func TestRender_SVG(t *testing.T) {
	c, err := FromRun(sampleRun(t), "Step", "v_ntot")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := c.Render(&buf, FormatSVG); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Error("Render() output is not an SVG document")
	}
}

func TestRender_SinglePoint(t *testing.T) {
	c := NewChart("x", "y", []Point{{X: 3, Y: 3}})

	var buf bytes.Buffer
	if err := c.Render(&buf, FormatPNG); err != nil {
		t.Errorf("Render() error = %v", err)
	}
}

func TestRender_NoPoints(t *testing.T) {
	c := NewChart("x", "y", nil)

	err := c.Render(&bytes.Buffer{}, FormatPNG)
	if !errors.Is(err, ErrNoPoints) {
		t.Errorf("Render() error = %v, want ErrNoPoints", err)
	}
}

func TestFromTable_NonFiniteValues(t *testing.T) {
	doc, err := parser.Parse(context.Background(), strings.NewReader("Run 1\nStep v_ntot\n0 1\n100 nan\n200 inf\nloop\n"))
	if err != nil {
		t.Fatal(err)
	}
	tbl, err := table.FromRun(doc.Runs[0], "Step", "v_ntot")
	if err != nil {
		t.Fatal(err)
	}

	c, err := FromTable(tbl)
	if err != nil {
		t.Fatalf("FromTable() error = %v", err)
	}
	if len(c.Series.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(c.Series.Points))
	}
	if !math.IsNaN(c.Series.Points[1].Y) || !math.IsInf(c.Series.Points[2].Y, 1) {
		t.Errorf("Points = %v, want NaN and +Inf values kept", c.Series.Points)
	}
	if got := c.Series.Finite(); len(got) != 1 || got[0] != (Point{X: 0, Y: 1}) {
		t.Errorf("Finite() = %v, want [{0 1}]", got)
	}

	var buf bytes.Buffer
	if err := c.Render(&buf, FormatSVG); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
}

func TestSeriesBounds_SkipsNonFinite(t *testing.T) {
	s := Series{Points: []Point{
		{X: 1, Y: 5},
		{X: math.NaN(), Y: 100},
		{X: 3, Y: math.Inf(-1)},
		{X: 2, Y: -1},
	}}

	minX, maxX, minY, maxY := s.Bounds()
	if minX != 1 || maxX != 2 || minY != -1 || maxY != 5 {
		t.Errorf("Bounds() = (%v, %v, %v, %v), want (1, 2, -1, 5)", minX, maxX, minY, maxY)
	}
}

func TestRender_OnlyNonFinitePoints(t *testing.T) {
	c := NewChart("x", "y", []Point{{X: 1, Y: math.NaN()}, {X: math.Inf(1), Y: 2}})

	err := c.Render(&bytes.Buffer{}, FormatPNG)
	if !errors.Is(err, ErrNoPoints) {
		t.Errorf("Render() error = %v, want ErrNoPoints", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"chart.png", FormatPNG, false},
		{"out/chart.SVG", FormatSVG, false},
		{"chart.jpg", "", true},
		{"chart", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatFromPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatFromPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
