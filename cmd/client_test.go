package cmd

import (
	"testing"

	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestHTTPTimeoutUsesStoredSetting(t *testing.T) {
	assert.Equal(t, 45, httpTimeoutSeconds(&model.Config{HTTPTimeoutSeconds: 45}))

	cfg := model.DefaultConfig()
	assert.Equal(t, 30, httpTimeoutSeconds(&cfg))

	assert.Zero(t, httpTimeoutSeconds(nil))
	assert.Zero(t, httpTimeoutSeconds(&model.Config{}))
}
