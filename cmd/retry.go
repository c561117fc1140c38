package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var retryCmd = &cobra.Command{
	Use:   "retry <message-id>",
	Short: "Requeue a failed dispatch",
	Long: `Ask the hub to requeue a dispatch by message id.

The hub decides whether the message is eligible; its answer is reported
as-is.

Examples:
  hubctl retry 2f6c9a1e-8d14-4a14-9c7e-0b1f2e3d4c5b`,
	Args: cobra.ExactArgs(1),
	RunE: runRetry,
}

func init() {
	rootCmd.AddCommand(retryCmd)
}

func runRetry(_ *cobra.Command, args []string) error {
	messageID := args[0]

	client, err := getClient()
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	if err := client.RetryMessage(ctx, messageID); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}

	fmt.Printf("Retry requested for %s\n", messageID)

	return nil
}
