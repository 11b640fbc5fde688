package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fffdata/fff"
	"github.com/s0up4200/fffdata/query"
)

var (
	phase     int64
	pool      int64
	jqExpr    string
	rawOutput bool
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <endpoint> <id>",
	Short: "Fetch the raw JSON of a catalog endpoint",
	Long: `Fetch any endpoint of the catalog (see "fffdata endpoints") and print the
JSON the API returned. Use --jq to extract parts of it, for example:

  fffdata get standings 420000 --phase 1 --pool 2 --jq '.[] | .equipe.short_name'`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func init() {
	getCmd.Flags().Int64Var(&phase, "phase", 0, "competition phase number")
	getCmd.Flags().Int64Var(&pool, "pool", 0, "pool number")
	getCmd.Flags().StringVarP(&jqExpr, "jq", "q", "", "jq expression applied to the response")
	getCmd.Flags().BoolVarP(&rawOutput, "raw", "r", false, "print string results without quotes")
}

func runGet(cmd *cobra.Command, args []string) error {
	ep, ok := fff.LookupEndpoint(args[0])
	if !ok {
		return fmt.Errorf("unknown endpoint %q (see \"fffdata endpoints\")", args[0])
	}

	id, err := fff.ParseIdentifier(ep.Name, args[1])
	if err != nil {
		return err
	}
	if ep.UsesPhase && phase <= 0 {
		return fmt.Errorf("endpoint %q requires --phase", ep.Name)
	}
	if ep.UsesPool && pool <= 0 {
		return fmt.Errorf("endpoint %q requires --pool", ep.Name)
	}

	// Compile before the request so a typo costs no round trip
	var q *query.Query
	if jqExpr != "" {
		if q, err = query.Compile(jqExpr); err != nil {
			return err
		}
	}

	path := ep.Build(fff.PathParams{ID: id, Phase: phase, Pool: pool})
	logger.Debug().Str("endpoint", ep.Name).Str("path", path).Msg("Fetching endpoint")

	data, err := fffClient.Get(cmd.Context(), path)
	if err != nil {
		return err
	}
	if data == nil {
		return fmt.Errorf("%s %d: not found", ep.Name, id)
	}

	out := cmd.OutOrStdout()
	if q == nil {
		return writeJSON(out, data)
	}

	results, err := q.Run(data)
	if err != nil {
		return err
	}
	return writeResults(out, results, rawOutput)
}

// writeResults prints one jq result per line
func writeResults(w io.Writer, results []any, raw bool) error {
	for _, r := range results {
		if s, ok := r.(string); ok && raw {
			if _, err := fmt.Fprintln(w, s); err != nil {
				return err
			}
			continue
		}
		if err := writeJSON(w, r); err != nil {
			return err
		}
	}
	return nil
}
