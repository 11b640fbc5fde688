package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fffdata/fff"
	"github.com/s0up4200/fffdata/filter"
)

var (
	whereExpr  string
	filterName string
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <match-number>...",
	Short: "Show matches by number",
	Long: `Fetch one or more matches and display teams, score, competition, venue
and referee. Use --where or --filter to keep only the matches an expression
accepts, for example:

  fffdata match 28541157 28541158 --where 'Finished and HomeScore > AwayScore'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

func init() {
	matchCmd.Flags().StringVarP(&whereExpr, "where", "w", "", "filter expression")
	matchCmd.Flags().StringVarP(&filterName, "filter", "f", "", "use a named filter from config")
}

func runMatch(cmd *cobra.Command, args []string) error {
	ids, err := parseIdentifiers("match", args)
	if err != nil {
		return err
	}

	f, err := selectFilter(filter.KindMatch)
	if err != nil {
		return err
	}

	logger.Debug().Ints64("matches", ids).Msg("Fetching matches")

	matches, err := fetchAll(cmd.Context(), ids, cfg.Output.Concurrency,
		func(ctx context.Context, id int64) (*fff.Match, error) {
			return fffClient.GetMatch(ctx, id)
		})
	if err != nil {
		return err
	}
	missing := notFound(ids, matches)

	found := make([]*fff.Match, 0, len(matches))
	for _, m := range matches {
		if m != nil {
			found = append(found, m)
		}
	}
	if f != nil {
		found, err = f.SelectMatches(found)
		if err != nil {
			return err
		}
		logger.Debug().Str("filter", f.Expression()).Int("kept", len(found)).Msg("Filtered matches")
	}

	out := cmd.OutOrStdout()
	if cfg.Output.JSON {
		return writeJSON(out, found)
	}

	formatter := NewConsoleFormatter()
	fmt.Fprint(out, formatter.FormatMatchList(found))
	fmt.Fprint(os.Stderr, formatter.FormatNotFound("match", missing))
	return nil
}

// selectFilter compiles --where, or looks up --filter in the config.
// It returns nil when neither is set.
func selectFilter(kind filter.Kind) (*filter.Filter, error) {
	// Priority: command line expression > named filter
	if whereExpr != "" {
		f, err := filters.Compile(kind, whereExpr)
		if err != nil {
			return nil, fmt.Errorf("invalid filter expression: %w", err)
		}
		return f, nil
	}

	if filterName != "" {
		return filters.Get(filterName, kind)
	}

	return nil, nil
}
