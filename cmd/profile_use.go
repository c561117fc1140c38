package cmd

import (
	"fmt"

	"github.com/ekomkassa/hubctl/internal/store"
	"github.com/spf13/cobra"
)

var profileUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Set the active profile",
	Long: `Set a profile as the active profile.

The active profile's endpoint and API key are used by all hub commands.

Examples:
  hubctl profile use prod
  hubctl profile use staging`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileUse,
}

func init() {
	profileCmd.AddCommand(profileUseCmd)
}

func runProfileUse(_ *cobra.Command, args []string) error {
	name := args[0]
	db := store.GetDB()

	current, _ := db.GetActiveProfile()

	if err := db.SetActiveProfile(name); err != nil {
		return fmt.Errorf("failed to set active profile: %w", err)
	}

	if current != nil && current.Name == name {
		fmt.Printf("Profile '%s' is already active.\n", name)

		return nil
	}

	fmt.Printf("Switched to profile: %s\n", name)

	profile, err := db.GetProfile(name)
	if err == nil && profile != nil {
		fmt.Printf("Endpoint: %s\n", profile.BaseURL)
	}

	return nil
}
