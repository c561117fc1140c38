package cmd

import (
	"testing"

	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKeysCreateDirect(t *testing.T) {
	mock := &MockHubClient{
		NewKey: &hub.APIKey{ID: 7, KeyName: "billing", APIKey: "ek_live_abc123def456"},
	}

	cleanup := withMockClient(mock)
	defer cleanup()

	keysCreateExpiry = "90"
	defer func() { keysCreateExpiry = "never" }()

	err := runKeysCreate(nil, []string{"billing"})
	require.NoError(t, err)
	assert.Equal(t, "billing", mock.CreatedKeyName)
	assert.Equal(t, "90", mock.CreatedKeyExpiry)
}

func TestRunKeysCreateInvalidExpiry(t *testing.T) {
	mock := &MockHubClient{}

	cleanup := withMockClient(mock)
	defer cleanup()

	keysCreateExpiry = "45"
	defer func() { keysCreateExpiry = "never" }()

	err := runKeysCreate(nil, []string{"billing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid expiry")
	assert.Empty(t, mock.CreatedKeyName)
}

func TestRunKeysRegenerate(t *testing.T) {
	mock := &MockHubClient{
		NewKey: &hub.APIKey{ID: 3, KeyName: "partner", APIKey: "ek_live_rotated"},
	}

	cleanup := withMockClient(mock)
	defer cleanup()

	keysRegenerateYes = true
	defer func() { keysRegenerateYes = false }()

	err := runKeysRegenerate(nil, []string{"3"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), mock.RegeneratedKeyID)
}

func TestRunKeysRegenerateBadID(t *testing.T) {
	err := runKeysRegenerate(nil, []string{"abc"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid key id")
}

func TestRunKeysRemove(t *testing.T) {
	mock := &MockHubClient{}

	cleanup := withMockClient(mock)
	defer cleanup()

	keysRemoveYes = true
	defer func() { keysRemoveYes = false }()

	err := runKeysRemove(nil, []string{"5"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), mock.DeletedKeyID)
}
