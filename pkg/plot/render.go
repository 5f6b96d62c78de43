package plot

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output image format.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case FormatPNG:
		return FormatPNG, nil
	case FormatSVG:
		return FormatSVG, nil
	default:
		return "", fmt.Errorf("unknown chart format %q (use png or svg)", s)
	}
}

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("cannot infer chart format from %q (use .png or .svg)", path)
	}
	return ParseFormat(ext)
}

func (f Format) provider() chart.RendererProvider {
	if f == FormatSVG {
		return chart.SVG
	}
	return chart.PNG
}

// Render draws the chart to w.
func (c *Chart) Render(w io.Writer, f Format) error {
	points := c.Series.Finite()
	if len(points) == 0 {
		return ErrNoPoints
	}

	minX, maxX, minY, maxY := c.Series.Bounds()
	minX, maxX = padRange(minX, maxX)
	minY, maxY = padRange(minY, maxY)

	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i], ys[i] = p.X, p.Y
	}

	graph := chart.Chart{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:  c.X.Title,
			Range: &chart.ContinuousRange{Min: minX, Max: maxX},
			Ticks: chartTicks(c.X.Ticks(minX, maxX)),
		},
		YAxis: chart.YAxis{
			Name:  c.Y.Title,
			Range: &chart.ContinuousRange{Min: minY, Max: maxY},
			Ticks: chartTicks(c.Y.Ticks(minY, maxY)),
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    c.Series.Name,
				XValues: xs,
				YValues: ys,
			},
		},
	}

	if err := graph.Render(f.provider(), w); err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}
	return nil
}

func chartTicks(ticks []Tick) []chart.Tick {
	out := make([]chart.Tick, len(ticks))
	for i, t := range ticks {
		out[i] = chart.Tick{Value: t.Value, Label: t.Label}
	}
	return out
}
