package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ekomkassa/hubctl/internal/cli"
	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage hub API keys",
	Long: `Manage the hub's API keys.

Without a subcommand, shows an interactive list of keys with masked
values. Press r to regenerate the selected key or x to remove it.

A key's full value is shown exactly once, right after create or
regenerate. Store it; the hub only returns masked values afterwards.

Examples:
  hubctl keys
  hubctl keys create billing --expiry 90
  hubctl keys regenerate 3
  hubctl keys remove 3`,
	RunE: runKeysList,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeysList(_ *cobra.Command, _ []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	keys, err := client.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	if len(keys) == 0 {
		printEmptyResult("API keys", "hubctl keys create <name>")

		return nil
	}

	m := cli.NewKeyList(keys)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	listModel := finalModel.(cli.KeyListModel)
	selected := listModel.GetSelected()

	if selected == nil {
		return nil
	}

	switch listModel.GetAction() {
	case "regenerate":
		return regenerateKey(client, selected)
	case "remove":
		return removeKey(client, selected.ID, selected.KeyName, false)
	}

	return nil
}

func regenerateKey(client HubClient, key *hub.APIKey) error {
	if !promptConfirm(fmt.Sprintf("Regenerate key '%s'? The current value stops working. [y/N]: ", key.KeyName)) {
		fmt.Println("Cancelled.")

		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	regenerated, err := client.RegenerateKey(ctx, key.ID)
	if err != nil {
		return fmt.Errorf("failed to regenerate key: %w", err)
	}

	printNewKey(regenerated)

	return nil
}

func removeKey(client HubClient, keyID int64, keyName string, skipConfirm bool) error {
	if !skipConfirm && !promptConfirm(fmt.Sprintf("Remove key '%s'? [y/N]: ", keyName)) {
		fmt.Println("Cancelled.")

		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := client.DeleteKey(ctx, keyID); err != nil {
		return fmt.Errorf("failed to remove key: %w", err)
	}

	fmt.Printf("Removed key: %s\n", keyName)

	return nil
}

// printNewKey shows the full key value. This is the only time it is
// available in clear.
func printNewKey(key *hub.APIKey) {
	fmt.Printf("Key:    %s\n", key.KeyName)
	fmt.Printf("Value:  %s\n", key.APIKey)

	if key.ExpiryDate != "" {
		fmt.Printf("Expires: %s\n", key.ExpiryDate)
	} else {
		fmt.Println("Expires: never")
	}

	fmt.Println("\nSave this value now. It will not be shown again.")
}
