package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var providersRemoveCmd = &cobra.Command{
	Use:     "remove <code>",
	Aliases: []string{"rm"},
	Short:   "Remove a provider connection",
	Args:    cobra.ExactArgs(1),
	RunE:    runProvidersRemove,
}

var providersRemoveYes bool

func init() {
	providersCmd.AddCommand(providersRemoveCmd)

	providersRemoveCmd.Flags().BoolVarP(&providersRemoveYes, "yes", "y", false, "Skip confirmation prompt")
}

func runProvidersRemove(_ *cobra.Command, args []string) error {
	code := args[0]

	client, err := getClient()
	if err != nil {
		return err
	}

	if !providersRemoveYes && !promptConfirm(fmt.Sprintf("Remove provider '%s'? [y/N]: ", code)) {
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
