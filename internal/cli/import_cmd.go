package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cafb-tech/alacarte/internal/cli/formatter"
	"github.com/cafb-tech/alacarte/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import <export.csv>",
		Short: "Import an agency hours-of-operation export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening export: %w", err)
			}
			defer f.Close()

			records, err := importer.ReadRecords(f)
			if err != nil {
				return err
			}

			result, err := app.Importer.Import(cmd.Context(), records)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d agencies\n", result.AgenciesImported)
			if result.RowsSkipped > 0 {
				fmt.Fprintln(out, formatter.Dim(fmt.Sprintf("Skipped %d rows:", result.RowsSkipped)))
				for _, rowErr := range result.RowErrors {
					fmt.Fprintln(out, formatter.Dim("  "+rowErr.Error()))
				}
			}
			return nil
		},
	}
}
