package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// This is set at build time with ldflags.
var version = "0.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the application version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("income-recorder %s %s\n", version, runtime.Version())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
