package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ekomkassa/hubctl/internal/cli"
	"github.com/ekomkassa/hubctl/internal/config"
	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/ekomkassa/hubctl/internal/store"
	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Inspect the delivery log",
	Long: `Show the hub's recent dispatches, newest first.

The interactive view lets you retry a failed dispatch with r. Use
--plain for non-interactive output suitable for piping.

Examples:
  hubctl logs
  hubctl logs --limit 100
  hubctl logs --plain`,
	RunE: runLogs,
}

var (
	logsLimit int
	logsPlain bool
)

func init() {
	rootCmd.AddCommand(logsCmd)

	logsCmd.Flags().IntVar(&logsLimit, "limit", 0, "Number of entries to fetch (default from settings)")
	logsCmd.Flags().BoolVar(&logsPlain, "plain", false, "Print entries without the interactive view")
}

// resolveLogLimit applies flag, environment and stored settings in that
// order.
func resolveLogLimit() int {
	if logsLimit > 0 {
		return logsLimit
	}

	if limit := config.LogLimit(); limit > 0 {
		return limit
	}

	if cfg, err := store.GetDB().GetConfig(); err == nil && cfg.LogLimit > 0 {
		return cfg.LogLimit
	}

	return hub.DefaultLogLimit
}

func runLogs(_ *cobra.Command, _ []string) error {
	client, err := getClient()
	if err != nil {
		return err
	}

	limit := resolveLogLimit()

	ctx, cancel := requestContext()
	defer cancel()

	entries, err := client.ListLogs(ctx, limit)
	if err != nil {
		return fmt.Errorf("failed to fetch delivery log: %w", err)
	}

	if len(entries) == 0 {
		fmt.Println("No dispatches yet.")

		return nil
	}

	if logsPlain {
		for _, e := range entries {
			_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%s\t%d/%d\t%s\n",
				e.CreatedAt, e.Status, e.Provider, e.Recipient, e.Attempts, e.MaxAttempts, e.MessageID)
		}

		return nil
	}

	m := cli.NewLogList(client, entries, limit)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	logModel := finalModel.(cli.LogListModel)

	return logModel.Err
}
