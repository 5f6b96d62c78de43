package output

import (
	"context"
	"fmt"
	"io"
)

// Formatter renders reports and inventories in a specific format.
type Formatter interface {
	// Format renders a table report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// FormatInventory renders a run listing to the given writer.
	FormatInventory(ctx context.Context, inv *Inventory, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose adds the parse summary to text output.
	Verbose bool

	// Quiet prints only the row count.
	Quiet bool
}

// New returns the formatter registered under name.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "text":
		return NewTextFormatter(opts), nil
	case "json":
		return NewJSONFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", name)
	}
}
