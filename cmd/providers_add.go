package cmd

import (
	"github.com/spf13/cobra"
)

var providersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Connect a new notification provider",
	Long: `Connect a new notification provider interactively.

The form asks for the fields the selected channel needs: messenger
channels (WhatsApp, Telegram, MAX) take wappi credentials, mail channels
take Yandex Postbox credentials. The provider code is normalized to
lowercase with underscores.

Examples:
  hubctl providers add`,
	RunE: runProvidersAdd,
}

func init() {
	providersCmd.AddCommand(providersAddCmd)
}

func runProvidersAdd(_ *cobra.Command, _ []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	return editProvider(client, nil)
}
