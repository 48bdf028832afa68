package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/itinera/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSearchCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search [QUERY...]",
		Short: "Search favorited places for quick re-adding",
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			cands, err := app.Search.Search(context.Background(), query, limit)
			if err != nil {
				return err
			}

			if len(cands) == 0 {
				fmt.Println("No matches.")
				return nil
			}

			fmt.Printf("%s\n", formatter.FormatCandidates(cands))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum results")

	return cmd
}
