package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/alexanderramin/itinera/internal/contract"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newPlaceCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "place",
		Aliases: []string{"item"},
		Short:   "Manage places on an itinerary",
	}

	cmd.AddCommand(
		newPlaceAddCmd(app),
		newPlaceMoveCmd(app),
		newPlaceRemoveCmd(app),
		newPlaceEditCmd(app),
	)

	return cmd
}

func newPlaceAddCmd(app *App) *cobra.Command {
	var name, kind, startTime, notes, tags, search string
	var day, duration, atIndex int
	var favorite bool

	cmd := &cobra.Command{
		Use:   "add TRIP",
		Short: "Add a place to a trip",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}

			var cand contract.PlaceCandidate
			if search != "" {
				cand, err = pickCandidate(ctx, app, search)
				if err != nil {
					return err
				}
			}
			if name != "" {
				cand.Name = name
			}
			if kind != "" {
				cand.Kind = kind
			}
			if notes != "" {
				cand.Notes = notes
			}
			if favorite {
				cand.Favorite = true
			}
			if tags != "" {
				cand.Tags = splitCommaList(tags)
			}
			if startTime != "" {
				cand.StartTime = &startTime
			}
			if cmd.Flags().Changed("duration") {
				cand.DurationMin = &duration
			}

			// No --name and a terminal: collect the fields interactively.
			if cand.Name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name or --search is required in non-interactive mode")
				}
				if err := runAddPlaceForm(&cand, &day); err != nil {
					return err
				}
			}

			var at *int
			if cmd.Flags().Changed("at") {
				at = &atIndex
			}

			item, err := app.Itinerary.AddPlace(ctx, tripID, cand, day, at)
			if err != nil {
				return err
			}

			fmt.Printf("Added %s on day %d at %s\n", item.Name, item.Day, item.DerivedTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Place name")
	cmd.Flags().StringVar(&search, "search", "", "Prefill from a favorited place matching this query")
	cmd.Flags().StringVar(&kind, "kind", "", "Kind (sight|food|lodging|transit|activity|shopping|other)")
	cmd.Flags().IntVar(&day, "day", 1, "Trip day")
	cmd.Flags().IntVar(&atIndex, "at", 0, "Explicit order rank within the day")
	cmd.Flags().StringVar(&startTime, "time", "", "Pinned start time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Mark as favorite")

	return cmd
}

func newPlaceMoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "move TRIP FROM TO",
		Short: "Move a place to a new position in the schedule",
		Long: "Move the place at flat schedule index FROM to index TO, as printed by " +
			"`itinera show`. The whole sequence is renumbered to match the new layout.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			from, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid FROM index %q", args[1])
			}
			to, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid TO index %q", args[2])
			}

			items, err := app.Itinerary.MoveItem(ctx, tripID, from, to)
			if err != nil {
				return err
			}

			trip, err := app.Trips.GetByID(ctx, tripID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatSchedule(trip, items))
			return nil
		},
	}
}

func newPlaceRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove TRIP ITEM",
		Short: "Remove a place (by schedule index or ID)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(ctx, app, tripID, args[1])
			if err != nil {
				return err
			}
			if err := app.Itinerary.RemoveItem(ctx, tripID, itemID); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", itemID[:8])
			return nil
		},
	}
}

func newPlaceEditCmd(app *App) *cobra.Command {
	var name, startTime, notes string
	var day, duration int
	var favorite bool

	cmd := &cobra.Command{
		Use:   "edit TRIP ITEM",
		Short: "Edit a place's fields (by schedule index or ID)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}
			itemID, err := resolveItemID(ctx, app, tripID, args[1])
			if err != nil {
				return err
			}

			// Only explicitly set flags become part of the edit.
			var edit contract.ItemEdit
			cmd.Flags().Visit(func(f *pflag.Flag) {
				switch f.Name {
				case "name":
					edit.Name = &name
				case "time":
					edit.StartTime = &startTime
				case "duration":
					edit.DurationMin = &duration
				case "day":
					edit.Day = &day
				case "notes":
					edit.Notes = &notes
				case "favorite":
					edit.Favorite = &favorite
				}
			})

			item, err := app.Itinerary.EditItem(ctx, tripID, itemID, edit)
			if err != nil {
				return err
			}

			fmt.Printf("Updated %s (day %d, %s)\n", item.Name, item.Day, item.DerivedTime)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Place name")
	cmd.Flags().StringVar(&startTime, "time", "", "Pinned start time (HH:MM, empty to unpin)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes")
	cmd.Flags().IntVar(&day, "day", 0, "Trip day")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "Mark as favorite")

	return cmd
}

// pickCandidate resolves a --search query to one favorited place. With
// several matches an interactive terminal gets a select form; otherwise
// the first match wins.
func pickCandidate(ctx context.Context, app *App, query string) (contract.PlaceCandidate, error) {
	matches, err := app.Search.Search(ctx, query, 10)
	if err != nil {
		return contract.PlaceCandidate{}, err
	}

	switch {
	case len(matches) == 0:
		return contract.PlaceCandidate{}, fmt.Errorf("no favorited place matches %q", query)
	case len(matches) == 1 || !app.interactive():
		return matches[0], nil
	}

	options := make([]huh.Option[int], 0, len(matches))
	for i, c := range matches {
		label := c.Name
		if c.Kind != "" {
			label = fmt.Sprintf("%s (%s)", c.Name, c.Kind)
		}
		options = append(options, huh.NewOption(label, i))
	}

	var picked int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which Place?").
				Options(options...).
				Value(&picked),
		),
	).WithTheme(itineraHuhTheme()).WithShowHelp(false)
	if err := form.Run(); err != nil {
		return contract.PlaceCandidate{}, err
	}
	return matches[picked], nil
}

func splitCommaList(s string) []string {
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
