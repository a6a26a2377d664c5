// Command sheetlocale exports a CSV localization sheet into per-language
// JSON or YAML documents, verifies written documents against the sheet and
// serves rendered documents over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sheetlocale/internal/config"
	"github.com/dmitrymomot/sheetlocale/internal/server"
	"github.com/dmitrymomot/sheetlocale/pkg/logger"
)

// Exit codes.
const (
	exitOK    = 0
	exitDrift = 1
	exitError = 2
)

const sentryFlushTimeout = 2 * time.Second

// errDrift is returned by verify when stored documents differ from the sheet.
var errDrift = errors.New("stored documents differ from the sheet")

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitError
	}

	app := &app{cfg: cfg, stdout: stdout, stderr: stderr, log: logger.NewNope()}
	root := app.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err = root.ExecuteContext(ctx)
	logger.Flush(sentryFlushTimeout)

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errDrift):
		return exitDrift
	default:
		fmt.Fprintf(stderr, "ERROR: %v\n", err)
		return exitError
	}
}

// app carries the configuration shared by all subcommands.
// Flags are bound to cfg fields, so they override the environment.
type app struct {
	cfg    *config.Config
	log    *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "sheetlocale",
		Short:         "Export Google Sheet translations to locales/{lang}/{namespace}.json",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := logger.ParseLevel(a.cfg.Log.Level); err != nil {
				return err
			}
			a.log = a.newLogger()
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfg.Log.Level, "log-level", a.cfg.Log.Level, "log level: debug, info, warn or error")
	pf.StringVar(&a.cfg.Log.Format, "log-format", a.cfg.Log.Format, "log format: text or json")

	root.AddCommand(a.exportCmd(), a.verifyCmd(), a.serveCmd())
	return root
}

func (a *app) newLogger() *slog.Logger {
	extractors := []logger.ContextExtractor{logger.RunIDExtractor(), server.RequestIDExtractor()}
	if a.cfg.Sentry.DSN != "" {
		return logger.NewWithSentry(a.cfg.Log, a.cfg.Sentry, extractors...)
	}
	return logger.NewWriter(a.stderr, a.cfg.Log, extractors...)
}
