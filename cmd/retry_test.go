package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRetry(t *testing.T) {
	mock := &MockHubClient{}

	cleanup := withMockClient(mock)
	defer cleanup()

	err := runRetry(nil, []string{"msg-123"})
	require.NoError(t, err)
	assert.Equal(t, "msg-123", mock.RetriedMessageID)
}

func TestRunRetryHubRejects(t *testing.T) {
	mock := &MockHubClient{RetryMessageErr: errors.New("message not found")}

	cleanup := withMockClient(mock)
	defer cleanup()

	err := runRetry(nil, []string{"ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message not found")
	assert.Equal(t, "ghost", mock.RetriedMessageID)
}

func TestRunRetryClientError(t *testing.T) {
	cleanup := withMockClientError(errors.New("no hub endpoint configured"))
	defer cleanup()

	err := runRetry(nil, []string{"msg-123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no hub endpoint configured")
}
