package config

import (
	"os"
	"strconv"
)

// Default values for configuration.
const (
	DefaultRun         = 1
	DefaultXColumn     = "Step"
	DefaultYColumn     = "v_ntot"
	DefaultWidth       = 1024
	DefaultHeight      = 400
	DefaultTickCount   = 10
	DefaultLabelFormat = "%.2f"
	DefaultChartFormat = "png"
	DefaultLogLevel    = "info"
)

// Environment variable names.
const (
	EnvLogLevel = "LOGPLOT_LOG_LEVEL"
	EnvRun      = "LOGPLOT_RUN"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Run: DefaultRun,
		Columns: ColumnsConfig{
			X: DefaultXColumn,
			Y: DefaultYColumn,
		},
		Chart: ChartConfig{
			Width:       DefaultWidth,
			Height:      DefaultHeight,
			TickCount:   DefaultTickCount,
			LabelFormat: DefaultLabelFormat,
			Format:      DefaultChartFormat,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: LogFormatConsole,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
// A malformed run number is left for Validate to report.
func (c *Config) applyEnvironmentOverrides() {
	if level := os.Getenv(EnvLogLevel); level != "" {
		c.Log.Level = level
	}
	if run := os.Getenv(EnvRun); run != "" {
		if n, err := strconv.Atoi(run); err == nil {
			c.Run = n
		} else {
			c.Run = -1
		}
	}
}
