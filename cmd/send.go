package cmd

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ekomkassa/hubctl/internal/cli"
	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/ekomkassa/hubctl/internal/store"
	"github.com/spf13/cobra"
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a test message through a provider",
	Long: `Send a test message through a configured provider.

Without flags, opens the interactive sandbox: pick a provider whose
connection is working or configured, compose the message, and see the
hub's response. With --provider, --to and --message, sends directly.

Every dispatch is recorded in a local history, shown with --history.

Examples:
  hubctl send
  hubctl send --provider ek_wa --to +79001234567 --message "ping"
  hubctl send --provider ek_mail --to user@example.com --subject "Test" --message "ping"
  hubctl send --history`,
	RunE: runSend,
}

var (
	sendProvider  string
	sendRecipient string
	sendMessage   string
	sendSubject   string
	sendHistory   bool
)

func init() {
	rootCmd.AddCommand(sendCmd)

	sendCmd.Flags().StringVar(&sendProvider, "provider", "", "Provider code")
	sendCmd.Flags().StringVar(&sendRecipient, "to", "", "Recipient (phone, chat id or email)")
	sendCmd.Flags().StringVar(&sendMessage, "message", "", "Message text")
	sendCmd.Flags().StringVar(&sendSubject, "subject", "", "Subject line (mail providers only)")
	sendCmd.Flags().BoolVar(&sendHistory, "history", false, "Show the local send history")
}

func runSend(_ *cobra.Command, _ []string) error {
	if sendHistory {
		return showSendHistory()
	}

	if sendProvider == "" && sendRecipient == "" && sendMessage == "" {
		return runSendInteractive()
	}

	if sendProvider == "" || sendRecipient == "" || sendMessage == "" {
		return fmt.Errorf("--provider, --to and --message are all required for a direct send")
	}

	client, err := getClient()
	if err != nil {
		return err
	}

	req := hub.SendRequest{
		Provider:  sendProvider,
		Recipient: sendRecipient,
		Message:   sendMessage,
		Subject:   sendSubject,
	}

	ctx, cancel := requestContext()
	defer cancel()

	result, err := client.Send(ctx, req)
	if err != nil {
		return err
	}

	recordSend(req, result)

	if !result.Success {
		return fmt.Errorf("rejected by the hub: %s", result.Error)
	}

	fmt.Printf("Accepted. Message ID: %s\n", result.MessageID)

	if result.Status != "" {
		fmt.Printf("Status: %s\n", result.Status)
	}

	return nil
}

func runSendInteractive() error {
	providers, client, err := fetchProviders()
	if err != nil {
		return err
	}

	m := cli.NewSandbox(client, providers)

	p := tea.NewProgram(m)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	sandbox := finalModel.(cli.SandboxModel)
	if sandbox.Err != nil {
		return sandbox.Err
	}

	if sandbox.LastRequest != nil && sandbox.LastResult != nil {
		recordSend(*sandbox.LastRequest, sandbox.LastResult)
	}

	return nil
}

// recordSend appends the dispatch to the local history. Failures here
// never fail the send itself.
func recordSend(req hub.SendRequest, result *hub.SendResult) {
	status := result.Status
	if !result.Success {
		status = "rejected"
	} else if status == "" {
		status = "accepted"
	}

	record := &model.SendRecord{
		MessageID: result.MessageID,
		Provider:  req.Provider,
		Recipient: req.Recipient,
		Status:    status,
	}

	if err := store.GetDB().AppendSendRecord(record); err != nil {
		log.Printf("cmd: recording send history: %v", err)
	}
}

func showSendHistory() error {
	records, err := store.GetDB().ListSendRecords(50)
	if err != nil {
		return fmt.Errorf("failed to read send history: %w", err)
	}

	if len(records) == 0 {
		fmt.Println("No sandbox sends yet.")

		return nil
	}

	for _, r := range records {
		_, _ = fmt.Fprintf(os.Stdout, "%s\t%s\t%s\t%s\t%s\n",
			r.SentAt.Format("2006-01-02 15:04"), r.Status, r.Provider, r.Recipient, r.MessageID)
	}

	return nil
}
