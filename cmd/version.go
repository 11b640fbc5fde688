package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fffdata/fff"
)

var (
	appVersion = "dev"
	buildTime  = "unknown"
)

// SetVersion records the build information injected by the linker
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
	rootCmd.Version = version
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	Args:              cobra.NoArgs,
	PersistentPreRunE: skipInit,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "fffdata %s\n", appVersion)
		fmt.Fprintf(out, "Built: %s\n", buildTime)
		fmt.Fprintf(out, "Client: %s\n", fff.DefaultUserAgent)
		fmt.Fprintf(out, "Go: %s\n", runtime.Version())
	},
}
