package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/itinera/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import TRIP FILE",
		Short: "Import suggested places from a JSON file",
		Long: "Import a suggestion document (as produced by an external place\n" +
			"suggester) and append its places to the trip in one batch.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			tripID, err := resolveTripID(ctx, app, args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[1], err)
			}
			defer f.Close()

			schema, err := importer.ParseSuggestions(f)
			if err != nil {
				return err
			}

			n, err := app.Itinerary.ImportSuggestions(ctx, tripID, schema)
			if err != nil {
				return err
			}

			fmt.Printf("Imported %d place(s)\n", n)
			return nil
		},
	}
}
