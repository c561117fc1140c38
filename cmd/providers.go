package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ekomkassa/hubctl/internal/cli"
	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/spf13/cobra"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "Manage notification provider connections",
	Long: `Manage the hub's notification provider connections.

Without a subcommand, shows an interactive list of configured providers
with their connection status. Press enter on a provider to edit its
connection, or x to remove it.

Examples:
  hubctl providers
  hubctl providers add
  hubctl providers config ek_wa
  hubctl providers remove ek_mail`,
	RunE: runProvidersList,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func fetchProviders() ([]hub.Provider, HubClient, error) {
	client, err := getClient()
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := requestContext()
	defer cancel()

	providers, err := client.ListProviders(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list providers: %w", err)
	}

	return providers, client, nil
}

func runProvidersList(_ *cobra.Command, _ []string) error {
	providers, client, err := fetchProviders()
	if err != nil {
		return err
	}

	if len(providers) == 0 {
		printEmptyResult("providers", "hubctl providers add")

		return nil
	}

	m := cli.NewProviderList(providers)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	listModel := finalModel.(cli.ProviderListModel)
	selected := listModel.GetSelected()

	if selected == nil {
		return nil
	}

	switch listModel.GetAction() {
	case "config":
		return editProvider(client, selected)
	case "remove":
		return removeProvider(client, selected.Code)
	}

	return nil
}

func editProvider(client HubClient, existing *hub.Provider) error {
	m := cli.NewProviderForm(client, existing)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	formModel := finalModel.(cli.ProviderFormModel)
	if formModel.Err != nil {
		return formModel.Err
	}

	if formModel.Saved {
		fmt.Println("Provider saved.")
	}

	return nil
}

func removeProvider(client HubClient, code string) error {
	if !promptConfirm(fmt.Sprintf("Remove provider '%s'? [y/N]: ", code)) {
		fmt.Println("Cancelled.")

		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := client.DeleteProvider(ctx, code); err != nil {
		return fmt.Errorf("failed to remove provider: %w", err)
	}

	fmt.Printf("Removed provider: %s\n", code)

	return nil
}
