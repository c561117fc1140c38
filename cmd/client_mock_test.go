package cmd

import (
	"context"

	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/ekomkassa/hubctl/internal/provider"
)

// MockHubClient is a mock implementation of HubClient for testing.
type MockHubClient struct {
	// Data
	Providers []hub.Provider
	Keys      []hub.APIKey
	Logs      []hub.LogEntry
	NewKey    *hub.APIKey
	SendRes   *hub.SendResult

	// Error injection
	ListProvidersErr  error
	SaveProviderErr   error
	DeleteProviderErr error
	ListKeysErr       error
	CreateKeyErr      error
	RegenerateKeyErr  error
	DeleteKeyErr      error
	ListLogsErr       error
	RetryMessageErr   error
	SendErr           error

	// Call tracking
	SavedRequest        *provider.CreateRequest
	DeletedProviderCode string
	CreatedKeyName      string
	CreatedKeyExpiry    string
	RegeneratedKeyID    int64
	DeletedKeyID        int64
	RetriedMessageID    string
	SentRequest         *hub.SendRequest
}

// ListProviders implements HubClient.
func (m *MockHubClient) ListProviders(_ context.Context) ([]hub.Provider, error) {
	if m.ListProvidersErr != nil {
		return nil, m.ListProvidersErr
	}

	return m.Providers, nil
}

// SaveProvider implements HubClient.
func (m *MockHubClient) SaveProvider(_ context.Context, req provider.CreateRequest) error {
	m.SavedRequest = &req

	return m.SaveProviderErr
}

// DeleteProvider implements HubClient.
func (m *MockHubClient) DeleteProvider(_ context.Context, code string) error {
	m.DeletedProviderCode = code

	return m.DeleteProviderErr
}

// ListKeys implements HubClient.
func (m *MockHubClient) ListKeys(_ context.Context) ([]hub.APIKey, error) {
	if m.ListKeysErr != nil {
		return nil, m.ListKeysErr
	}

	return m.Keys, nil
}

// CreateKey implements HubClient.
func (m *MockHubClient) CreateKey(_ context.Context, name, expiryDays string) (*hub.APIKey, error) {
	m.CreatedKeyName = name
	m.CreatedKeyExpiry = expiryDays

	if m.CreateKeyErr != nil {
		return nil, m.CreateKeyErr
	}

	return m.NewKey, nil
}

// RegenerateKey implements HubClient.
func (m *MockHubClient) RegenerateKey(_ context.Context, keyID int64) (*hub.APIKey, error) {
	m.RegeneratedKeyID = keyID

	if m.RegenerateKeyErr != nil {
		return nil, m.RegenerateKeyErr
	}

	return m.NewKey, nil
}

// DeleteKey implements HubClient.
func (m *MockHubClient) DeleteKey(_ context.Context, keyID int64) error {
	m.DeletedKeyID = keyID

	return m.DeleteKeyErr
}

// ListLogs implements HubClient.
func (m *MockHubClient) ListLogs(_ context.Context, _ int) ([]hub.LogEntry, error) {
	if m.ListLogsErr != nil {
		return nil, m.ListLogsErr
	}

	return m.Logs, nil
}

// RetryMessage implements HubClient.
func (m *MockHubClient) RetryMessage(_ context.Context, messageID string) error {
	m.RetriedMessageID = messageID

	return m.RetryMessageErr
}

// Send implements HubClient.
func (m *MockHubClient) Send(_ context.Context, req hub.SendRequest) (*hub.SendResult, error) {
	m.SentRequest = &req

	if m.SendErr != nil {
		return nil, m.SendErr
	}

	return m.SendRes, nil
}

// withMockClient sets up the clientFactory to return the mock client,
// and returns a cleanup function to restore the original factory.
func withMockClient(mock *MockHubClient) func() {
	original := clientFactory
	clientFactory = func() (HubClient, error) {
		return mock, nil
	}

	return func() {
		clientFactory = original
	}
}

// withMockClientError sets up the clientFactory to return an error.
func withMockClientError(err error) func() {
	original := clientFactory
	clientFactory = func() (HubClient, error) {
		return nil, err
	}

	return func() {
		clientFactory = original
	}
}
