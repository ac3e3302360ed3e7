package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is overridden with -ldflags at release builds.
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the AssetDog version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("assetdog %s\n", Version)
	},
}
