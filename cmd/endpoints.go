package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fffdata/fff"
)

// endpointsCmd represents the endpoints command
var endpointsCmd = &cobra.Command{
	Use:               "endpoints",
	Short:             "List the endpoints usable with get",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	RunE:              runEndpoints,
}

func runEndpoints(cmd *cobra.Command, args []string) error {
	catalog := fff.Endpoints()
	out := cmd.OutOrStdout()

	if jsonOutput {
		type entry struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Path        string `json:"path"`
		}
		entries := make([]entry, 0, len(catalog))
		for _, ep := range catalog {
			entries = append(entries, entry{Name: ep.Name, Description: ep.Description, Path: pathTemplate(ep)})
		}
		return writeJSON(out, entries)
	}

	fmt.Fprint(out, formatEndpoints(catalog))
	return nil
}

func formatEndpoints(catalog []fff.Endpoint) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\nEndpoints (%d):\n\n", len(catalog))

	for i, ep := range catalog {
		isLast := i == len(catalog)-1
		prefix, indent := branch(isLast)

		fmt.Fprintf(&sb, "%s %s\n", prefix, ep.Name)
		fmt.Fprintf(&sb, "%s%s\n", indent, ep.Description)
		fmt.Fprintf(&sb, "%sPath: %s\n", indent, pathTemplate(ep))

		if !isLast {
			sb.WriteString("│\n")
		}
	}

	sb.WriteString("\n")
	return sb.String()
}

// pathTemplate renders the endpoint path with placeholders
func pathTemplate(ep fff.Endpoint) string {
	// Sentinel values unlikely to appear in a real path
	const id, ph, po = 999999991, 999999992, 999999993
	path := ep.Build(fff.PathParams{ID: id, Phase: ph, Pool: po})
	return strings.NewReplacer(
		fmt.Sprint(id), "{id}",
		fmt.Sprint(ph), "{phase}",
		fmt.Sprint(po), "{pool}",
	).Replace(path)
}

// skipInit replaces initializeApp for commands that need neither config nor
// a client
func skipInit(cmd *cobra.Command, args []string) error {
	return nil
}
