// Package cmd implements the CLI commands for sessionlist using Cobra.
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nilovelez/wptv-sessions-list/config"
	"github.com/nilovelez/wptv-sessions-list/core/export"
	"github.com/nilovelez/wptv-sessions-list/logging"
	"github.com/nilovelez/wptv-sessions-list/telemetry"
)

// version is set at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

var (
	flagConfig string

	cfg      *config.Config
	logger   *slog.Logger
	cleanups []func(context.Context) error
)

var rootCmd = &cobra.Command{
	Use:   "sessionlist",
	Short: "Turn WordCamp schedules into team-ready session lists",
	Long: `sessionlist reads the public schedule of a WordCamp site and renders it
for the photography, social media and WordPress.tv teams.

Usage:
  sessionlist export <url> --format photos|social|wptv [flags]
  sessionlist sessions <url>
  sessionlist serve`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Config file (default: ~/.sessionlist/config.yaml, ./.sessionlist/config.yaml)")
	pf.String("timezone", "", "Site timezone, IANA name (default UTC)")
	pf.String("locale", "", "Weekday label locale: en or es (default en)")
	pf.String("user-agent", "", "User-Agent sent to the WordCamp site")
	pf.String("log-level", "", "Log level: debug, info, warn, error (default info)")
	pf.String("log-format", "", "Log format: text or json (default text)")
	pf.String("log-file", "", "Also log to this file, rotated")
	pf.Bool("telemetry", false, "Export traces and metrics to stderr")
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger and telemetry
// shared by every subcommand.
func setup(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(flagConfig, cmd.Flags())
	if err != nil {
		return err
	}

	l, closer, err := logging.New(c.Log, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	cleanups = append(cleanups, func(context.Context) error { return closer.Close() })
	slog.SetDefault(l)

	if c.Telemetry.Enabled {
		stop, err := telemetry.Init(cmd.Context(), cmd.ErrOrStderr(), version)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}
		cleanups = append(cleanups, stop)
	}

	cfg, logger = c, l
	return nil
}

// shutdown releases what setup acquired, newest first.
func shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for i := len(cleanups) - 1; i >= 0; i-- {
		if err := cleanups[i](ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}
	cleanups = nil
}

// userError shows the short user-facing message for err while keeping
// the full chain for errors.Is and errors.As.
type userError struct {
	err error
}

func (e *userError) Error() string { return export.UserMessage(e.err) }

func (e *userError) Unwrap() error { return e.err }
