package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show TRIP",
		Short: "Show a trip's derived schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}

			trip, err := app.Trips.GetByID(ctx, tripID)
			if err != nil {
				return err
			}
			items, err := app.Itinerary.Schedule(ctx, tripID)
			if err != nil {
				return err
			}

			fmt.Printf("%s\n", formatter.FormatSchedule(trip, items))
			return nil
		},
	}
}
