package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/logplot/internal/logging"
	"github.com/ccollicutt/logplot/pkg/config"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// GlobalOptions holds the persistent flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	LogLevel   string
	LogFormat  string
}

// Globals is bound to the root command's persistent flags.
var Globals = &GlobalOptions{}

// env is the configuration and logger a command runs with.
type env struct {
	ctx    context.Context
	cfg    *config.Config
	logger zerolog.Logger
}

// loadEnv loads the configuration (defaults when no --config is given) and
// builds the logger. Flags take precedence over the file.
func loadEnv(cmd *cobra.Command) (*env, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadOrDefault(ctx, Globals.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if Globals.LogLevel != "" {
		cfg.Log.Level = Globals.LogLevel
	}
	if Globals.LogFormat != "" {
		cfg.Log.Format = config.LogFormat(Globals.LogFormat)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, logging.Format(cfg.Log.Format))
	if err != nil {
		return nil, err
	}

	return &env{ctx: ctx, cfg: cfg, logger: logger}, nil
}
