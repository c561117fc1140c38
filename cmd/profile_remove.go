package cmd

import (
	"fmt"

	"github.com/ekomkassa/hubctl/internal/store"
	"github.com/spf13/cobra"
)

var profileRemoveCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"rm"},
	Short:   "Remove a connection profile",
	Long: `Remove a hub connection profile.

Removing the active profile clears the active selection; pick another
with 'hubctl profile use'.`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileRemove,
}

var profileRemoveYes bool

func init() {
	profileCmd.AddCommand(profileRemoveCmd)

	profileRemoveCmd.Flags().BoolVarP(&profileRemoveYes, "yes", "y", false, "Skip confirmation prompt")
}

func runProfileRemove(_ *cobra.Command, args []string) error {
	name := args[0]
	db := store.GetDB()

	exists, err := db.ProfileExists(name)
	if err != nil {
		return err
	}

	if !exists {
		return fmt.Errorf("profile '%s' not found", name)
	}

	if !profileRemoveYes && !promptConfirm(fmt.Sprintf("Remove profile '%s'? [y/N]: ", name)) {
		fmt.Println("Cancelled.")

		return nil
	}

	if err := db.DeleteProfile(name); err != nil {
		return fmt.Errorf("failed to remove profile: %w", err)
	}

	fmt.Printf("Removed profile: %s\n", name)

	return nil
}
