package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fffdata/fff"
	"github.com/s0up4200/fffdata/filter"
)

// clubCmd represents the club command
var clubCmd = &cobra.Command{
	Use:   "club <club-number>...",
	Short: "Show clubs by number",
	Long: `Fetch one or more clubs and display district, address, phone numbers
and pitches. Use --where or --filter to keep only the clubs an expression
accepts, for example:

  fffdata club 500650 500247 --where 'Department == "75" and hasPhone()'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClub,
}

func init() {
	clubCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression")
	clubCmd.Flags().StringVarP(&filterName, "filter", "f", "", "use a named filter from config")
}

func runClub(cmd *cobra.Command, args []string) error {
	ids, err := parseIdentifiers("club", args)
	if err != nil {
		return err
	}

	f, err := selectFilter(filter.KindClub)
	if err != nil {
		return err
	}

	logger.Debug().Ints64("clubs", ids).Msg("Fetching clubs")

	clubs, err := fetchAll(cmd.Context(), ids, cfg.Output.Concurrency,
		func(ctx context.Context, id int64) (*fff.Club, error) {
			return fffClient.GetClub(ctx, id)
		})
	if err != nil {
		return err
	}
	missing := notFound(ids, clubs)

	found := make([]*fff.Club, 0, len(clubs))
	for _, c := range clubs {
		if c != nil {
			found = append(found, c)
		}
	}
	if f != nil {
		found, err = f.SelectClubs(found)
		if err != nil {
			return err
		}
		logger.Debug().Str("filter", f.Expression()).Int("kept", len(found)).Msg("Filtered clubs")
	}

	out := cmd.OutOrStdout()
	if cfg.Output.JSON {
		return writeJSON(out, found)
	}

	formatter := NewConsoleFormatter()
	fmt.Fprint(out, formatter.FormatClubList(found))
	fmt.Fprint(os.Stderr, formatter.FormatNotFound("club", missing))
	return nil
}
