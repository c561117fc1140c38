package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("HUBCTL_BASE_URL", "https://hub.example.com")
	t.Setenv("HUBCTL_API_KEY", "ek_live_test")
	t.Setenv("HUBCTL_LOG_LIMIT", "25")

	require.NoError(t, Load())

	assert.Equal(t, "https://hub.example.com", BaseURL())
	assert.Equal(t, "ek_live_test", APIKey())
	assert.Equal(t, 25, LogLimit())
	assert.Empty(t, Profile())
	assert.Zero(t, HTTPTimeoutSeconds())
}
