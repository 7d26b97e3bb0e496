package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Set via -ldflags at release build time.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Mostra a versão",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("secretaria %s (commit %s, build %s, %s)\n",
			Version, GitCommit, BuildDate, runtime.Version())
	},
}
