package root

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"starbank/internal/ui"
)

func newExportCmd() *cobra.Command {
	var format string
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the full history as JSON (re-importable) or CSV (report)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			var data []byte
			switch format {
			case "json":
				data, err = store.ExportJSON()
			case "csv":
				data, err = store.ExportCSV()
			default:
				return fmt.Errorf("unknown format %q (want json or csv)", format)
			}
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outPath, data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.Good.Render(ui.IconDone+" Exported to"), outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "Export format (json|csv)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "Output file (default stdout)")

	return cmd
}
