package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sheetlocale/internal/server"
)

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve rendered documents for SHEET_URL over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyNegations(cmd.Flags(), a.cfg)

			source, err := a.sourceArg(nil)
			if err != nil {
				return err
			}

			d, err := a.build(cmd.Context(), true, true)
			if err != nil {
				return err
			}

			srv, err := server.New(d.exporter, source,
				server.WithLogger(a.log),
				server.WithAddress(a.cfg.HTTP.Addr),
				server.WithChecks(d.checks),
				server.WithSchedule(a.cfg.HTTP.ExportSchedule),
				server.WithRequestTimeout(a.cfg.HTTP.RequestTimeout),
				server.WithShutdownTimeout(a.cfg.HTTP.ShutdownTimeout),
				server.WithShutdownHook(func(context.Context) error {
					d.Close()
					return nil
				}),
			)
			if err != nil {
				d.Close()
				return err
			}

			a.log.Info("serving sheet", slog.String("source", source))
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&a.cfg.Sheet.URL, "url", a.cfg.Sheet.URL, "sheet URL or CSV path to serve")
	cmd.Flags().StringVar(&a.cfg.HTTP.Addr, "addr", a.cfg.HTTP.Addr, "listen address")
	cmd.Flags().StringVar(&a.cfg.HTTP.ExportSchedule, "schedule", a.cfg.HTTP.ExportSchedule, "cron spec for periodic exports, empty disables")
	bindSheetFlags(cmd.Flags(), a.cfg)
	bindOutputFlags(cmd.Flags(), a.cfg)
	return cmd
}
