package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set at build time with -ldflags "-X .../cmd.version=...".
var (
	version = "dev"
	commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		v := version
		if commit != "" {
			v += " (" + commit + ")"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "energyexe %s %s/%s\n", v, runtime.GOOS, runtime.GOARCH)
	},
}
