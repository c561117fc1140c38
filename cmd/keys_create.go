package cmd

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ekomkassa/hubctl/internal/cli"
	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/spf13/cobra"
)

var keysCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new API key",
	Long: `Create a new API key.

Without a name argument, opens an interactive form. The expiry is one
of: never, 30, 90, 180, 365 (days).

Examples:
  hubctl keys create
  hubctl keys create billing
  hubctl keys create partner --expiry 90`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeysCreate,
}

var keysCreateExpiry string

func init() {
	keysCmd.AddCommand(keysCreateCmd)

	keysCreateCmd.Flags().StringVar(&keysCreateExpiry, "expiry", "never",
		"Key lifetime in days: "+strings.Join(hub.ExpiryChoices, ", "))
}

func runKeysCreate(_ *cobra.Command, args []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		return createKeyInteractive(client)
	}

	name := args[0]

	if !hub.ValidExpiry(keysCreateExpiry) {
		return fmt.Errorf("invalid expiry %q, expected one of: %s", keysCreateExpiry, strings.Join(hub.ExpiryChoices, ", "))
	}

	ctx, cancel := requestContext()
	defer cancel()

	created, err := client.CreateKey(ctx, name, keysCreateExpiry)
	if err != nil {
		return fmt.Errorf("failed to create key: %w", err)
	}

	printNewKey(created)

	return nil
}

func createKeyInteractive(client HubClient) error {
	m := cli.NewKeyForm(client)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	formModel := finalModel.(cli.KeyFormModel)
	if formModel.Err != nil {
		return formModel.Err
	}

	if formModel.Created != nil {
		printNewKey(formModel.Created)
	}

	return nil
}
