package cmd

import (
	"fmt"
	"os"

	"github.com/ekomkassa/hubctl/internal/provider"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a dashboard summary of the hub",
	Long: `Show a summary of the hub: provider counts by connection status,
active API keys, and recent failed dispatches.

Examples:
  hubctl status`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	ctx, cancel := requestContext()
	defer cancel()

	providers, err := client.ListProviders(ctx)
	if err != nil {
		return fmt.Errorf("failed to list providers: %w", err)
	}

	keys, err := client.ListKeys(ctx)
	if err != nil {
		return fmt.Errorf("failed to list keys: %w", err)
	}

	entries, err := client.ListLogs(ctx, resolveLogLimit())
	if err != nil {
		return fmt.Errorf("failed to fetch delivery log: %w", err)
	}

	byStatus := map[provider.ConnectionStatus]int{}
	for _, p := range providers {
		byStatus[p.Status()]++
	}

	activeKeys := 0
	for _, k := range keys {
		if k.IsActive {
			activeKeys++
		}
	}

	failed := 0
	for _, e := range entries {
		if e.Failed() {
			failed++
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Providers: %d\n", len(providers))

	for _, s := range []provider.ConnectionStatus{
		provider.StatusWorking,
		provider.StatusConfigured,
		provider.StatusError,
		provider.StatusNotConfigured,
	} {
		if n := byStatus[s]; n > 0 {
			_, _ = fmt.Fprintf(os.Stdout, "  %-16s %d\n", s.Label(), n)
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "API keys: %d (%d active)\n", len(keys), activeKeys)
	_, _ = fmt.Fprintf(os.Stdout, "Recent dispatches: %d (%d failed)\n", len(entries), failed)

	if failed > 0 {
		_, _ = fmt.Fprintln(os.Stdout, "\nRecent failures:")

		for _, e := range entries {
			if e.Failed() {
				_, _ = fmt.Fprintf(os.Stdout, "  %s  %s  %s  attempt %d/%d\n",
					e.CreatedAt, e.Provider, e.Recipient, e.Attempts, e.MaxAttempts)
			}
		}

		_, _ = fmt.Fprintln(os.Stdout, "\nRetry with: hubctl retry <message-id>")
	}

	return nil
}
