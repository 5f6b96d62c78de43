package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path, or returns the defaults with environment
// overrides applied when path is empty.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors and fills in zero values.
func Validate(cfg *Config) error {
	if cfg.Run < 1 {
		return fmt.Errorf("run: must be >= 1, got %d", cfg.Run)
	}

	if err := validateColumns(&cfg.Columns); err != nil {
		return fmt.Errorf("columns: %w", err)
	}

	if err := validateChart(&cfg.Chart); err != nil {
		return fmt.Errorf("chart: %w", err)
	}

	if err := validateLog(&cfg.Log); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func validateColumns(c *ColumnsConfig) error {
	if c.X == "" {
		return errors.New("x is required")
	}
	if c.Y == "" {
		return errors.New("y is required")
	}
	if c.X == c.Y {
		return fmt.Errorf("x and y must differ, both are %q", c.X)
	}
	return nil
}

func validateChart(c *ChartConfig) error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("width and height must be >= 0, got %dx%d", c.Width, c.Height)
	}
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}

	if c.TickCount == 0 {
		c.TickCount = DefaultTickCount
	}
	if c.TickCount < 2 {
		return fmt.Errorf("tick_count must be >= 2, got %d", c.TickCount)
	}

	if c.LabelFormat == "" {
		c.LabelFormat = DefaultLabelFormat
	}
	if !strings.Contains(c.LabelFormat, "%") || strings.Contains(fmt.Sprintf(c.LabelFormat, 1.5), "%!") {
		return fmt.Errorf("label_format %q must contain one float verb such as %%.2f", c.LabelFormat)
	}

	if c.Format == "" {
		c.Format = DefaultChartFormat
	}
	switch strings.ToLower(c.Format) {
	case "png", "svg":
		c.Format = strings.ToLower(c.Format)
	default:
		return fmt.Errorf("invalid format %q (must be png or svg)", c.Format)
	}

	return nil
}

func validateLog(l *LogConfig) error {
	if l.Level == "" {
		l.Level = DefaultLogLevel
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(l.Level)); err != nil {
		return fmt.Errorf("invalid level %q: %w", l.Level, err)
	}

	switch l.Format {
	case "":
		l.Format = LogFormatConsole
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid format %q (must be console or json)", l.Format)
	}
	return nil
}
