package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var providersConfigCmd = &cobra.Command{
	Use:   "config <code>",
	Short: "Edit a provider connection",
	Long: `Edit the connection of an existing provider.

Credentials are never echoed back; re-enter them to replace the stored
values.

Examples:
  hubctl providers config ek_wa`,
	Args: cobra.ExactArgs(1),
	RunE: runProvidersConfig,
}

func init() {
	providersCmd.AddCommand(providersConfigCmd)
}

func runProvidersConfig(_ *cobra.Command, args []string) error {
	code := args[0]

	providers, client, err := fetchProviders()
	if err != nil {
		return err
	}

	for i := range providers {
		if providers[i].Code == code {
			return editProvider(client, &providers[i])
		}
	}

	return fmt.Errorf("provider '%s' not found", code)
}
