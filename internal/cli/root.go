package cli

import (
	"github.com/cafb-tech/alacarte/internal/importer"
	"github.com/cafb-tech/alacarte/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Find     service.FindService
	Agencies service.AgencyService
	Importer *importer.Importer

	// IsInteractive reports whether stdin is a terminal; the find command
	// only opens the preference form when it is.
	IsInteractive func() bool

	// Configured search defaults, used as find flag defaults.
	DefaultRadiusMiles float64
	DefaultLimit       int
}

// NewRootCmd creates the top-level "alacarte" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "alacarte",
		Short: "Find food-assistance agencies open when you can get there",
	}

	root.AddCommand(
		newFindCmd(app),
		newAgencyCmd(app),
		newImportCmd(app),
	)

	return root
}
