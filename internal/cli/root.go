package cli

import (
	"github.com/alexanderramin/itinera/internal/places"
	"github.com/alexanderramin/itinera/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Trips     service.TripService
	Itinerary service.ItineraryService
	Search    places.Searcher

	// IsInteractive reports whether stdin is a terminal; forms and the
	// planner TUI are only offered interactively.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "itinera" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "itinera",
		Short: "Collaborative trip itinerary planner",
	}

	root.AddCommand(
		newTripCmd(app),
		newPlaceCmd(app),
		newShowCmd(app),
		newPlanCmd(app),
		newImportCmd(app),
		newSearchCmd(app),
	)

	return root
}
