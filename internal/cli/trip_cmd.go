package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/domain"
	"github.com/spf13/cobra"
)

func newTripCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip",
		Short: "Manage trips",
	}

	cmd.AddCommand(
		newTripAddCmd(app),
		newTripListCmd(app),
		newTripUpdateCmd(app),
		newTripRemoveCmd(app),
		newTripResequenceCmd(app),
	)

	return cmd
}

func newTripAddCmd(app *App) *cobra.Command {
	var name, destination, start string
	var days int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := &domain.Trip{
				Name:        name,
				Destination: destination,
				Days:        days,
			}
			if start != "" {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				t.StartDate = &startDate
			}

			if err := app.Trips.Create(context.Background(), t); err != nil {
				return err
			}

			fmt.Printf("Created trip %s [%s]\n", t.Name, t.ID[:8])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Trip name")
	cmd.Flags().StringVar(&destination, "dest", "", "Destination")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 1, "Number of days")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newTripListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			trips, err := app.Trips.List(context.Background())
			if err != nil {
				return err
			}

			if len(trips) == 0 {
				fmt.Println("No trips found.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatTripList(trips))
			return nil
		},
	}
}

func newTripUpdateCmd(app *App) *cobra.Command {
	var name, destination, start string
	var days int

	cmd := &cobra.Command{
		Use:   "update TRIP",
		Short: "Update a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			t, err := app.Trips.GetByID(ctx, tripID)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("name") {
				t.Name = name
			}
			if cmd.Flags().Changed("dest") {
				t.Destination = destination
			}
			if cmd.Flags().Changed("days") {
				t.Days = days
			}
			if cmd.Flags().Changed("start") {
				startDate, err := time.Parse("2006-01-02", start)
				if err != nil {
					return fmt.Errorf("invalid start date %q: %w", start, err)
				}
				t.StartDate = &startDate
			}

			if err := app.Trips.Update(ctx, t); err != nil {
				return err
			}

			fmt.Printf("Updated trip %s\n", t.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Trip name")
	cmd.Flags().StringVar(&destination, "dest", "", "Destination")
	cmd.Flags().StringVar(&start, "start", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&days, "days", 0, "Number of days")

	return cmd
}

func newTripRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove TRIP",
		Short: "Remove a trip and all its places",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Trips.Delete(ctx, tripID); err != nil {
				return err
			}
			app.Itinerary.CloseTrip(tripID)
			fmt.Printf("Removed trip %s\n", tripID[:8])
			return nil
		},
	}
}

func newTripResequenceCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "resequence TRIP",
		Short: "Densify order values after accumulated gaps",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Itinerary.Resequence(ctx, tripID); err != nil {
				return err
			}
			fmt.Println("Resequenced.")
			return nil
		},
	}
}
