package cmd

import (
	"fmt"
	"os"

	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/ekomkassa/hubctl/internal/store"
	"github.com/spf13/cobra"
)

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a new connection profile",
	Long: `Create a new hub connection profile.

The API key can be provided with the --api-key flag, otherwise it is
prompted for without echo.

The first profile created becomes active automatically.

Examples:
  hubctl profile add prod --url https://hub.example.com
  hubctl profile add staging --url https://staging.example.com --api-key ek_live_xxx`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileAdd,
}

var (
	profileAddURL    string
	profileAddAPIKey string
)

func init() {
	profileCmd.AddCommand(profileAddCmd)

	profileAddCmd.Flags().StringVar(&profileAddURL, "url", "", "Hub endpoint URL (required)")
	profileAddCmd.Flags().StringVar(&profileAddAPIKey, "api-key", "", "API key (prompted when omitted)")

	_ = profileAddCmd.MarkFlagRequired("url")
}

func runProfileAdd(_ *cobra.Command, args []string) error {
	name := args[0]
	db := store.GetDB()

	exists, err := db.ProfileExists(name)
	if err != nil {
		return fmt.Errorf("failed to check profile existence: %w", err)
	}

	if exists {
		return fmt.Errorf("profile '%s' already exists", name)
	}

	apiKey := profileAddAPIKey
	if apiKey == "" {
		apiKey, err = promptSecret("API key: ")
		if err != nil {
			return err
		}
	}

	if apiKey == "" {
		return fmt.Errorf("API key is required")
	}

	profiles, err := db.ListProfiles()
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	isFirstProfile := len(profiles) == 0

	profile := &model.Profile{
		Name:    name,
		BaseURL: profileAddURL,
		APIKey:  apiKey,
	}

	if err := db.SaveProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	if isFirstProfile {
		if err := db.SetActiveProfile(name); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintf(os.Stdout, "Profile: %s\n", profile.Name)
	_, _ = fmt.Fprintf(os.Stdout, "Endpoint: %s\n", profile.BaseURL)

	if isFirstProfile {
		_, _ = fmt.Fprintln(os.Stdout, "\nThis profile is now active.")
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "\nTo use this profile: hubctl profile use %s\n", name)
	}

	return nil
}
