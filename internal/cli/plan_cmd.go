package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan TRIP",
		Short: "Interactively reorder a trip's schedule",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("plan requires an interactive terminal")
			}

			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			trip, err := app.Trips.GetByID(ctx, tripID)
			if err != nil {
				return err
			}

			p := tea.NewProgram(newPlanModel(app, trip))
			_, err = p.Run()
			return err
		},
	}
}
