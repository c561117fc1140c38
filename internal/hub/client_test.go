package hub

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ekomkassa/hubctl/internal/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv, NewClient(srv.URL, "ek_live_test")
}

func TestListProviders(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, pathProviders, r.URL.Path)
		assert.Equal(t, "ek_live_test", r.Header.Get("X-Api-Key"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		_, _ = w.Write([]byte(`{
			"success": true,
			"providers": [
				{
					"provider_code": "ek_wa",
					"provider_name": "WhatsApp Business",
					"provider_type": "whatsapp_business",
					"is_active": true,
					"has_wappi_config": true,
					"connection_status": "working",
					"last_attempt_at": "2026-08-30T10:15:00.123456"
				},
				{
					"provider_code": "ek_mail",
					"provider_name": "Postbox",
					"provider_type": "yandex_postbox",
					"is_active": true,
					"connection_status": "something_new"
				}
			]
		}`))
	})

	providers, err := client.ListProviders(context.Background())
	require.NoError(t, err)
	require.Len(t, providers, 2)

	assert.Equal(t, "ek_wa", providers[0].Code)
	assert.Equal(t, provider.TypeWhatsAppBusiness, providers[0].Type)
	assert.Equal(t, provider.StatusWorking, providers[0].Status())
	assert.True(t, providers[0].Sendable())

	// Unknown status strings fall back to not_configured.
	assert.Equal(t, provider.StatusNotConfigured, providers[1].Status())
	assert.False(t, providers[1].Sendable())
}

func TestSaveProviderPayload(t *testing.T) {
	var got map[string]any

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	draft := provider.Draft{
		Name:      "WA",
		Code:      "ek_wa",
		Type:      provider.TypeWhatsAppBusiness,
		Token:     "t1",
		ProfileID: "p1",
	}

	err := client.SaveProvider(context.Background(), draft.CreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "ek_wa", got["provider_code"])
	assert.Equal(t, "WA", got["provider_name"])
	assert.Equal(t, "whatsapp_business", got["provider_type"])
	assert.Equal(t, "t1", got["wappi_token"])
	assert.Equal(t, "p1", got["wappi_profile_id"])

	// No postbox keys may leak into a messenger payload.
	_, ok := got["postbox_access_key"]
	assert.False(t, ok)
}

func TestSaveProviderBusinessFailure(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "error": "Missing provider_code"}`))
	})

	err := client.SaveProvider(context.Background(), provider.CreateRequest{ProviderCode: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Missing provider_code", apiErr.Message)
}

func TestDeleteProvider(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "ek_wa", r.URL.Query().Get("provider_code"))
		_, _ = w.Write([]byte(`{"success": true}`))
	})

	require.NoError(t, client.DeleteProvider(context.Background(), "ek_wa"))
	require.Error(t, client.DeleteProvider(context.Background(), ""))
}

func TestCreateKey(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Production", body["key_name"])
		assert.Equal(t, "30", body["expiry_days"])

		_, _ = w.Write([]byte(`{
			"success": true,
			"key_id": 7,
			"api_key": "ek_live_abcdef1234567890",
			"key_name": "Production",
			"expiry_date": "2026-09-30T10:00:00"
		}`))
	})

	key, err := client.CreateKey(context.Background(), "Production", "30")
	require.NoError(t, err)
	assert.Equal(t, int64(7), key.ID)
	assert.Equal(t, "ek_live_abcdef1234567890", key.APIKey)
	assert.Equal(t, "2026-09-30T10:00:00", key.ExpiryDate)
}

func TestCreateKeyNeverExpiry(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "never", body["expiry_days"])

		// Backend omits expiry_date for non-expiring keys.
		_, _ = w.Write([]byte(`{"success": true, "key_id": 8, "api_key": "ek_live_x", "key_name": "CI"}`))
	})

	key, err := client.CreateKey(context.Background(), "CI", "never")
	require.NoError(t, err)
	assert.Empty(t, key.ExpiryDate)
}

func TestCreateKeyValidation(t *testing.T) {
	client := NewClient("http://hub.invalid", "k")

	_, err := client.CreateKey(context.Background(), "", "never")
	assert.Error(t, err)

	_, err = client.CreateKey(context.Background(), "x", "45")
	assert.Error(t, err)
}

func TestRegenerateKey(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "regenerate", body["action"])
		assert.Equal(t, float64(3), body["key_id"])

		_, _ = w.Write([]byte(`{"success": true, "key_id": 3, "api_key": "ek_live_new", "key_name": "Production"}`))
	})

	key, err := client.RegenerateKey(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "ek_live_new", key.APIKey)
	assert.Equal(t, int64(3), key.ID)
}

func TestListLogsDefaultLimit(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))

		_, _ = w.Write([]byte(`{
			"success": true,
			"messages": [
				{"message_id": "m1", "recipient": "+79001234567", "provider": "ek_wa", "status": "delivered", "attempts": 1, "max_attempts": 3},
				{"message_id": "m2", "recipient": "x@y.com", "provider": "ek_mail", "status": "failed", "attempts": 3, "max_attempts": 3}
			]
		}`))
	})

	logs, err := client.ListLogs(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.False(t, logs[0].Failed())
	assert.True(t, logs[1].Failed())
}

func TestRetryMessageNoLocalCheck(t *testing.T) {
	// Retry is issued for whatever ID the caller has, even one absent
	// from the current log list; the backend is the judge.
	var gotID string

	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, pathRetry, r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		gotID = body["message_id"]

		_, _ = w.Write([]byte(`{"success": true}`))
	})

	require.NoError(t, client.RetryMessage(context.Background(), "ghost-message"))
	assert.Equal(t, "ghost-message", gotID)

	require.Error(t, client.RetryMessage(context.Background(), ""))
}

func TestSendSuccess(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ek_mail", body["provider"])
		assert.Equal(t, "Test", body["subject"])

		_, _ = w.Write([]byte(`{"success": true, "message_id": "msg-1", "status": "delivered"}`))
	})

	result, err := client.Send(context.Background(), SendRequest{
		Provider:  "ek_mail",
		Recipient: "test@example.com",
		Message:   "hello",
		Subject:   "Test",
	})
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "msg-1", result.MessageID)
}

func TestSendBusinessFailureIsResult(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"success": false, "error": "Provider is not active"}`))
	})

	result, err := client.Send(context.Background(), SendRequest{
		Provider:  "ek_wa",
		Recipient: "+79001234567",
		Message:   "hello",
	})
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "Provider is not active", result.Error)
}

func TestMaskedKey(t *testing.T) {
	k := APIKey{APIKey: "ek_live_abcdef1234567890"}
	masked := k.Masked()
	assert.Contains(t, masked, "ek_live_")
	assert.NotContains(t, masked, "abcdef1234567890")

	short := APIKey{APIKey: "abc"}
	assert.Equal(t, "•••", short.Masked())
}
