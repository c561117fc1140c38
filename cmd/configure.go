package cmd

import (
	"fmt"
	"strconv"

	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/ekomkassa/hubctl/internal/store"
	"github.com/spf13/cobra"
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Set up the hub connection and local settings",
	Long: `Configure the hub endpoint, API key and local settings.

The endpoint and key are stored as a connection profile. The first
configured profile becomes active automatically.

Examples:
  hubctl configure
  hubctl configure --show
  hubctl configure --reset`,
	RunE: runConfigure,
}

var (
	configureShow    bool
	configureReset   bool
	configureProfile string
)

func init() {
	rootCmd.AddCommand(configureCmd)

	configureCmd.Flags().BoolVarP(&configureShow, "show", "s", false, "Show current configuration")
	configureCmd.Flags().BoolVarP(&configureReset, "reset", "r", false, "Reset settings to defaults")
	configureCmd.Flags().StringVar(&configureProfile, "profile", "default", "Profile to create or update")
}

func runConfigure(_ *cobra.Command, _ []string) error {
	db := store.GetDB()

	if configureShow {
		return showConfig(db)
	}

	if configureReset {
		cfg := model.DefaultConfig()
		if err := db.SaveConfig(&cfg); err != nil {
			return fmt.Errorf("resetting config: %w", err)
		}

		fmt.Println("Settings reset to defaults.")

		return nil
	}

	baseURL, err := promptLine("Hub endpoint URL: ")
	if err != nil {
		return err
	}

	if baseURL == "" {
		return fmt.Errorf("endpoint URL is required")
	}

	apiKey, err := promptSecret("API key: ")
	if err != nil {
		return err
	}

	if apiKey == "" {
		return fmt.Errorf("API key is required")
	}

	limitRaw, err := promptLine("Delivery log page size [50]: ")
	if err != nil {
		return err
	}

	cfg, err := db.GetConfig()
	if err != nil {
		return err
	}

	if limitRaw != "" {
		limit, err := strconv.Atoi(limitRaw)
		if err != nil || limit <= 0 {
			return fmt.Errorf("invalid page size: %s", limitRaw)
		}

		cfg.LogLimit = limit
	}

	profile := &model.Profile{
		Name:    configureProfile,
		BaseURL: baseURL,
		APIKey:  apiKey,
	}

	if err := db.SaveProfile(profile); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	isActive, err := activateIfFirst(db, profile.Name)
	if err != nil {
		return err
	}

	if isActive {
		cfg.ActiveProfile = profile.Name
	}

	if err := db.SaveConfig(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("Configured profile '%s' for %s\n", profile.Name, profile.BaseURL)

	return nil
}

// profileActivator is the slice of the store needed to manage the
// active-profile selection.
type profileActivator interface {
	GetActiveProfile() (*model.Profile, error)
	SetActiveProfile(name string) error
}

// activateIfFirst selects the named profile when none is active yet and
// reports whether it is the active profile afterwards. An existing
// selection of a different profile is left untouched.
func activateIfFirst(db profileActivator, name string) (bool, error) {
	active, err := db.GetActiveProfile()
	if err != nil {
		return false, err
	}

	if active == nil {
		if err := db.SetActiveProfile(name); err != nil {
			return false, err
		}

		return true, nil
	}

	return active.Name == name, nil
}

func showConfig(db store.Store) error {
	cfg, err := db.GetConfig()
	if err != nil {
		return err
	}

	active, err := db.GetActiveProfile()
	if err != nil {
		return err
	}

	if active == nil {
		printEmptyResult("profiles", "hubctl configure")

		return nil
	}

	fmt.Printf("Active profile: %s\n", active.Name)
	fmt.Printf("Endpoint:       %s\n", active.BaseURL)
	fmt.Printf("API key:        %s\n", maskSecret(active.APIKey))
	fmt.Printf("Log page size:  %d\n", cfg.LogLimit)

	return nil
}
