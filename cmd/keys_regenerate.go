package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var keysRegenerateCmd = &cobra.Command{
	Use:   "regenerate <id>",
	Short: "Regenerate an API key",
	Long: `Regenerate an API key by id.

The current value stops working immediately and the new value is shown
exactly once.

Examples:
  hubctl keys regenerate 3`,
	Args: cobra.ExactArgs(1),
	RunE: runKeysRegenerate,
}

var keysRegenerateYes bool

func init() {
	keysCmd.AddCommand(keysRegenerateCmd)

	keysRegenerateCmd.Flags().BoolVarP(&keysRegenerateYes, "yes", "y", false, "Skip confirmation prompt")
}

func runKeysRegenerate(_ *cobra.Command, args []string) error {
	keyID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid key id: %s", args[0])
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	if !keysRegenerateYes && !promptConfirm(fmt.Sprintf("Regenerate key %d? The current value stops working. [y/N]: ", keyID)) {
		fmt.Println("Cancelled.")

		return nil
	}

	ctx, cancel := requestContext()
	defer cancel()

	regenerated, err := client.RegenerateKey(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to regenerate key: %w", err)
	}

	printNewKey(regenerated)

	return nil
}
