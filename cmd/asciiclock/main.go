// Package main is the entry point for asciiclock.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/asciiclock/internal/app"
	"github.com/dshills/asciiclock/internal/renderer/backend"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// isTerminal is swapped in tests.
var isTerminal = term.IsTerminal

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	color bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "asciiclock",
		Short: "Analog clock drawn with characters in the terminal",
		Long: `asciiclock draws an analog clock face that fills the terminal and
sweeps in real time. Press q to quit.

Set ASCIICLOCK_LOG to a file path to write diagnostics, and
ASCIICLOCK_LOG_LEVEL to debug, info, warn or error.`,
		Args:          cobra.NoArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClock(cmd.Context(), opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("asciiclock %s\nCommit: %s\nBuilt: %s\n", version, commit, date))
	cmd.Flags().BoolVar(&opts.color, "color", false, "Color the outline, markers and hands")

	return cmd
}

func runClock(parent context.Context, opts options) error {
	if !isTerminal(int(os.Stdout.Fd())) {
		return app.ErrNotTerminal
	}

	logger, closer, err := app.LoggerFromEnv(os.Getenv)
	if err != nil {
		return err
	}
	defer closeLog(closer, os.Stderr)

	// Handle signals for graceful shutdown
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	screen, err := backend.NewTerminal()
	if err != nil {
		return app.NewOperationError("create", "terminal", err)
	}

	application := app.New(app.Options{
		Color:  opts.color,
		Logger: logger,
	})
	application.SetBackend(screen)

	if err := application.Run(ctx); !app.IsNormalExit(err) {
		logger.Error("exit: %v", err)
		return err
	}
	return nil
}

// closeLog closes the diagnostics log. The terminal is already restored
// when it runs, so a failure is reported on errOut.
func closeLog(c io.Closer, errOut io.Writer) {
	if err := c.Close(); err != nil {
		fmt.Fprintf(errOut, "Error: closing log: %v\n", err)
	}
}
