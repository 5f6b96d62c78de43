// Package config provides configuration loading and validation for logplot.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Run is the 1-based index of the run shown in tables and charts.
	Run int `yaml:"run"`

	Columns ColumnsConfig `yaml:"columns"`
	Chart   ChartConfig   `yaml:"chart"`
	Log     LogConfig     `yaml:"log"`
}

// ColumnsConfig names the two header columns that are displayed.
type ColumnsConfig struct {
	// X is the label column (the chart's horizontal axis).
	X string `yaml:"x"`

	// Y is the value column (the chart's vertical axis).
	Y string `yaml:"y"`
}

// ChartConfig controls chart rendering.
type ChartConfig struct {
	Title       string `yaml:"title,omitempty"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	TickCount   int    `yaml:"tick_count"`
	LabelFormat string `yaml:"label_format"`

	// Format is the output image format (png or svg).
	Format string `yaml:"format"`
}

// LogFormat selects the diagnostic log encoding.
type LogFormat string

const (
	LogFormatConsole LogFormat = "console"
	LogFormatJSON    LogFormat = "json"
)

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level  string    `yaml:"level"`
	Format LogFormat `yaml:"format"`
}
