package cmd

import (
	"fmt"
	"os"

	"github.com/ekomkassa/hubctl/internal/store"
	"github.com/spf13/cobra"
)

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connection profiles",
	RunE:  runProfileList,
}

func init() {
	profileCmd.AddCommand(profileListCmd)
}

func runProfileList(_ *cobra.Command, _ []string) error {
	db := store.GetDB()

	profiles, err := db.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	if len(profiles) == 0 {
		printEmptyResult("profiles", "hubctl profile add <name> --url <endpoint>")

		return nil
	}

	active, err := db.GetActiveProfile()
	if err != nil {
		return err
	}

	for _, p := range profiles {
		marker := "  "
		if active != nil && active.Name == p.Name {
			marker = "* "
		}

		_, _ = fmt.Fprintf(os.Stdout, "%s%s\t%s\t%s\n", marker, p.Name, p.BaseURL, maskSecret(p.APIKey))
	}

	return nil
}
