package cmd

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage hub connection profiles",
	Long: `Manage named hub connection profiles.

A profile holds the hub endpoint and API key for one environment
(production, staging, a partner installation). One profile is active at
a time; all commands talk to the active profile's hub unless overridden
with HUBCTL_PROFILE or HUBCTL_BASE_URL.`,
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
