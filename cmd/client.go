package cmd

import (
	"context"
	"errors"
	"time"

	"github.com/ekomkassa/hubctl/internal/config"
	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/ekomkassa/hubctl/internal/provider"
	"github.com/ekomkassa/hubctl/internal/store"
)

// HubClient defines the hub API operations used by the cmd package.
// This interface allows for mocking in tests.
type HubClient interface {
	// Provider methods
	ListProviders(ctx context.Context) ([]hub.Provider, error)
	SaveProvider(ctx context.Context, req provider.CreateRequest) error
	DeleteProvider(ctx context.Context, code string) error

	// API key methods
	ListKeys(ctx context.Context) ([]hub.APIKey, error)
	CreateKey(ctx context.Context, name, expiryDays string) (*hub.APIKey, error)
	RegenerateKey(ctx context.Context, keyID int64) (*hub.APIKey, error)
	DeleteKey(ctx context.Context, keyID int64) error

	// Delivery log methods
	ListLogs(ctx context.Context, limit int) ([]hub.LogEntry, error)
	RetryMessage(ctx context.Context, messageID string) error

	// Sandbox methods
	Send(ctx context.Context, req hub.SendRequest) (*hub.SendResult, error)
}

// clientFactory builds the hub client from environment overrides and the
// active profile. It can be overridden in tests to return a mock client.
var clientFactory = func() (HubClient, error) {
	baseURL := config.BaseURL()
	apiKey := config.APIKey()

	if baseURL == "" || apiKey == "" {
		profile, err := resolveProfile()
		if err != nil {
			return nil, err
		}

		if profile != nil {
			if baseURL == "" {
				baseURL = profile.BaseURL
			}

			if apiKey == "" {
				apiKey = profile.APIKey
			}
		}
	}

	if baseURL == "" {
		return nil, errors.New("no hub endpoint configured; run 'hubctl configure' or set HUBCTL_BASE_URL")
	}

	if apiKey == "" {
		return nil, errors.New("no API key configured; run 'hubctl configure' or set HUBCTL_API_KEY")
	}

	opts := []hub.Option{hub.WithUserAgent("hubctl/" + appVersion)}

	stored, err := store.GetDB().GetConfig()
	if err != nil {
		return nil, err
	}

	if t := httpTimeoutSeconds(stored); t > 0 {
		opts = append(opts, hub.WithTimeout(time.Duration(t)*time.Second))
	}

	return hub.NewClient(baseURL, apiKey, opts...), nil
}

// httpTimeoutSeconds prefers the environment override over the stored
// setting, like resolveLogLimit does for the log page size.
func httpTimeoutSeconds(stored *model.Config) int {
	if t := config.HTTPTimeoutSeconds(); t > 0 {
		return t
	}

	if stored != nil && stored.HTTPTimeoutSeconds > 0 {
		return stored.HTTPTimeoutSeconds
	}

	return 0
}

// resolveProfile picks the profile named by HUBCTL_PROFILE, falling back
// to the active one.
func resolveProfile() (*model.Profile, error) {
	db := store.GetDB()

	if name := config.Profile(); name != "" {
		profile, err := db.GetProfile(name)
		if err != nil {
			return nil, err
		}

		if profile == nil {
			return nil, errors.New("profile '" + name + "' not found")
		}

		return profile, nil
	}

	return db.GetActiveProfile()
}

// getClient returns a HubClient instance.
// In production, this returns the real HTTP client.
// In tests, clientFactory can be replaced to return a mock.
func getClient() (HubClient, error) {
	return clientFactory()
}
