package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fffdata/filter"
)

// filtersCmd represents the filters command
var filtersCmd = &cobra.Command{
	Use:   "filters",
	Short: "List the named filters from config",
	Long: `List the filters defined under "filters:" in the config file, with the
entity kinds each one can be applied to. Use them with --filter <name>.`,
	Args: cobra.NoArgs,
	RunE: runFilters,
}

type filterInfo struct {
	Name       string   `json:"name"`
	Expression string   `json:"expression"`
	Kinds      []string `json:"kinds"`
}

func runFilters(cmd *cobra.Command, args []string) error {
	names := filters.Names()
	infos := make([]filterInfo, 0, len(names))
	for _, name := range names {
		expression, _ := filters.Expression(name)
		info := filterInfo{Name: name, Expression: strings.TrimSpace(expression)}
		for _, kind := range filter.Kinds {
			if _, err := filters.Get(name, kind); err == nil {
				info.Kinds = append(info.Kinds, kind.String())
			}
		}
		infos = append(infos, info)
	}

	out := cmd.OutOrStdout()
	if cfg.Output.JSON {
		return writeJSON(out, infos)
	}

	if len(infos) == 0 {
		fmt.Fprintln(out, "No filters configured")
		return nil
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "\nFilters (%d):\n\n", len(infos))
	for i, info := range infos {
		isLast := i == len(infos)-1
		prefix, indent := branch(isLast)

		fmt.Fprintf(&sb, "%s %s [%s]\n", prefix, info.Name, strings.Join(info.Kinds, ", "))
		fmt.Fprintf(&sb, "%s%s\n", indent, info.Expression)

		if !isLast {
			sb.WriteString("│\n")
		}
	}
	sb.WriteString("\n")

	fmt.Fprint(out, sb.String())
	return nil
}
