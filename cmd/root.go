package cmd

import (
	"fmt"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ekomkassa/hubctl/internal/application"
	"github.com/ekomkassa/hubctl/internal/cli"
	"github.com/ekomkassa/hubctl/internal/config"
	"github.com/spf13/cobra"
)

var initOnce sync.Once

var rootCmd = &cobra.Command{
	Use:     application.AppName,
	Short:   "Admin console for the notification integration hub",
	Version: appVersion,
	Long: `Hubctl is a command-line admin console for the notification integration
hub. It manages provider connections (WhatsApp via wappi, email via
Yandex Postbox and other channels), API keys, and the delivery log, and
can send test messages through configured providers.

Run 'hubctl' without arguments to enter interactive mode.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		initOnce.Do(func() {
			err = config.Load()
		})

		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractiveMenu()
	},
}

func init() {
	rootCmd.PersistentFlags().String("profile", "", "Connection profile to use for this invocation")

	_ = config.BindFlag(config.KeyProfile, rootCmd.PersistentFlags().Lookup("profile"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func runInteractiveMenu() error {
	for {
		m := cli.NewMainMenu()
		p := tea.NewProgram(m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		choice := finalModel.(cli.MainMenuModel).GetChoice()

		if choice == "" || choice == "exit" {
			fmt.Println("Goodbye!")

			return nil
		}

		if err := dispatchMenu(choice); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Println("\nPress Enter to continue...")
			_, _ = fmt.Scanln()
		}
	}
}

func dispatchMenu(choice string) error {
	switch choice {
	case "status":
		return runStatus(nil, nil)
	case "providers":
		return runProvidersList(nil, nil)
	case "keys":
		return runKeysList(nil, nil)
	case "logs":
		return runLogs(nil, nil)
	case "send":
		return runSendInteractive()
	case "profiles":
		return runProfileList(nil, nil)
	case "configure":
		return runConfigure(nil, nil)
	default:
		return fmt.Errorf("unknown menu action: %s", choice)
	}
}
