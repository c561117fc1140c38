package hub

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/ekomkassa/hubctl/internal/provider"
)

// ListProviders fetches all configured providers.
func (c *Client) ListProviders(ctx context.Context) ([]Provider, error) {
	var result struct {
		envelope
		Providers []Provider `json:"providers"`
	}

	if err := c.do(ctx, http.MethodGet, pathProviders, nil, nil, &result); err != nil {
		return nil, err
	}

	return result.Providers, nil
}

// SaveProvider creates a provider or upserts its credentials. The hub
// treats an existing provider_code as an update.
func (c *Client) SaveProvider(ctx context.Context, req provider.CreateRequest) error {
	if req.ProviderCode == "" {
		return errors.New("provider code is required")
	}

	return c.do(ctx, http.MethodPost, pathProviders, nil, req, nil)
}

// DeleteProvider removes a provider by code. Irreversible.
func (c *Client) DeleteProvider(ctx context.Context, code string) error {
	if code == "" {
		return errors.New("provider code is required")
	}

	query := url.Values{}
	query.Set("provider_code", code)

	return c.do(ctx, http.MethodDelete, pathProviders, query, nil, nil)
}
