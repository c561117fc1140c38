package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProvidersRemove(t *testing.T) {
	mock := &MockHubClient{}

	cleanup := withMockClient(mock)
	defer cleanup()

	providersRemoveYes = true
	defer func() { providersRemoveYes = false }()

	err := runProvidersRemove(nil, []string{"ek_wa"})
	require.NoError(t, err)
	assert.Equal(t, "ek_wa", mock.DeletedProviderCode)
}

func TestRunSendMissingFlags(t *testing.T) {
	sendProvider = "ek_wa"
	defer func() { sendProvider = "" }()

	err := runSend(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--provider, --to and --message")
}
