package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cafb-tech/alacarte/internal/cli/formatter"
)

func newAgencyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agency",
		Short: "Inspect the agency database",
	}
	cmd.AddCommand(
		newAgencyListCmd(app),
		newAgencyShowCmd(app),
		newAgencyDeleteCmd(app),
	)
	return cmd
}

func newAgencyListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all agencies",
		RunE: func(cmd *cobra.Command, args []string) error {
			agencies, err := app.Agencies.List(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAgencyList(agencies))
			return nil
		},
	}
}

func newAgencyShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <agency-id>",
		Short: "Show one agency with its hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			agency, err := app.Agencies.GetByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			hours, err := app.Agencies.Hours(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatAgencyDetail(agency, hours))
			return nil
		},
	}
}

func newAgencyDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <agency-id>",
		Short: "Delete an agency and its hours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Agencies.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted agency %s\n", args[0])
			return nil
		},
	}
}
