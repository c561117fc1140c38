package hub

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListKeys fetches all API keys, newest first.
func (c *Client) ListKeys(ctx context.Context) ([]APIKey, error) {
	var result struct {
		envelope
		Keys []APIKey `json:"keys"`
	}

	if err := c.do(ctx, http.MethodGet, pathKeys, nil, nil, &result); err != nil {
		return nil, err
	}

	return result.Keys, nil
}

// CreateKey issues a new API key. expiryDays must be one of
// ExpiryChoices; the expiry date itself is computed by the backend. The
// returned key carries the full secret value, shown exactly once.
func (c *Client) CreateKey(ctx context.Context, name, expiryDays string) (*APIKey, error) {
	if name == "" {
		return nil, errors.New("key name is required")
	}

	if !ValidExpiry(expiryDays) {
		return nil, fmt.Errorf("invalid expiry %q: must be one of %v", expiryDays, ExpiryChoices)
	}

	body := struct {
		KeyName    string `json:"key_name"`
		ExpiryDays string `json:"expiry_days"`
	}{KeyName: name, ExpiryDays: expiryDays}

	var result struct {
		envelope
		KeyID      int64  `json:"key_id"`
		APIKey     string `json:"api_key"`
		KeyName    string `json:"key_name"`
		ExpiryDate string `json:"expiry_date"`
	}

	if err := c.do(ctx, http.MethodPost, pathKeys, nil, body, &result); err != nil {
		return nil, err
	}

	return &APIKey{
		ID:         result.KeyID,
		KeyName:    result.KeyName,
		APIKey:     result.APIKey,
		IsActive:   true,
		ExpiryDate: result.ExpiryDate,
	}, nil
}

// RegenerateKey atomically replaces the secret value of an existing key.
// The old value is permanently invalidated. The returned key carries the
// new secret, shown exactly once.
func (c *Client) RegenerateKey(ctx context.Context, keyID int64) (*APIKey, error) {
	body := struct {
		Action string `json:"action"`
		KeyID  int64  `json:"key_id"`
	}{Action: "regenerate", KeyID: keyID}

	var result struct {
		envelope
		KeyID   int64  `json:"key_id"`
		APIKey  string `json:"api_key"`
		KeyName string `json:"key_name"`
	}

	if err := c.do(ctx, http.MethodPost, pathKeys, nil, body, &result); err != nil {
		return nil, err
	}

	return &APIKey{
		ID:       keyID,
		KeyName:  result.KeyName,
		APIKey:   result.APIKey,
		IsActive: true,
	}, nil
}

// DeleteKey removes an API key. Irreversible.
func (c *Client) DeleteKey(ctx context.Context, keyID int64) error {
	query := url.Values{}
	query.Set("key_id", strconv.FormatInt(keyID, 10))

	return c.do(ctx, http.MethodDelete, pathKeys, query, nil, nil)
}
