package cmd

import (
	"fmt"

	"github.com/ekomkassa/hubctl/internal/application"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s version %s\n", application.AppName, appVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
