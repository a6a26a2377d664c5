package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/sheetlocale/internal/config"
	"github.com/dmitrymomot/sheetlocale/internal/exporter"
)

func (a *app) verifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify [url|path]",
		Short: "Compare written documents in --out with the sheet",
		Long: "Compare written documents in --out with the sheet.\n" +
			"Exits with status 1 when a key is missing, changed or extra.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyNegations(cmd.Flags(), a.cfg)

			source, err := a.sourceArg(args)
			if err != nil {
				return err
			}

			// Documents are read back from the local directory only.
			a.cfg.Output.Backend = config.BackendFS

			d, err := a.build(cmd.Context(), false, false)
			if err != nil {
				return err
			}
			defer d.Close()

			report, err := d.exporter.Verify(cmd.Context(), source, os.DirFS(a.cfg.Output.Dir))
			if err != nil {
				return err
			}

			for _, drift := range report.Drift {
				switch drift.Kind {
				case exporter.DriftChanged:
					fmt.Fprintf(a.stdout, "%s %s %s: %q != %q\n", drift.Kind, drift.Language, drift.Key, drift.Got, drift.Want)
				default:
					fmt.Fprintf(a.stdout, "%s %s %s\n", drift.Kind, drift.Language, drift.Key)
				}
			}

			if !report.InSync() {
				return fmt.Errorf("%w: %d of %d keys", errDrift, len(report.Drift), report.Checked)
			}
			fmt.Fprintf(a.stdout, "In sync: %d keys checked.\n", report.Checked)
			return nil
		},
	}

	bindSheetFlags(cmd.Flags(), a.cfg)
	cmd.Flags().StringVar(&a.cfg.Output.Dir, "out", a.cfg.Output.Dir, "folder with written documents")
	return cmd
}
