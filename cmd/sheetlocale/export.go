package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sheetlocale/pkg/sheet"
)

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [url|path]",
		Short: "Write one document per language column of the sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyNegations(cmd.Flags(), a.cfg)

			source, err := a.sourceArg(args)
			if err != nil {
				return err
			}

			d, err := a.build(cmd.Context(), true, false)
			if err != nil {
				return err
			}
			defer d.Close()

			location, err := sheet.Resolve(source, a.cfg.Sheet.GID)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "Fetching CSV: %s\n", location)

			report, err := d.exporter.Run(cmd.Context(), source)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.stdout, "Detected languages: %s\n", strings.Join(report.Languages, ", "))
			for _, f := range report.Files {
				if f.Unchanged {
					fmt.Fprintf(a.stdout, "Unchanged %s\n", f.Location)
					continue
				}
				fmt.Fprintf(a.stdout, "Wrote %s\n", f.Location)
			}
			fmt.Fprintln(a.stdout, "Done.")
			return nil
		},
	}

	bindSheetFlags(cmd.Flags(), a.cfg)
	bindOutputFlags(cmd.Flags(), a.cfg)
	return cmd
}
