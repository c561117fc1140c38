package cmd

import (
	"testing"

	"github.com/ekomkassa/hubctl/internal/hub"
	"github.com/stretchr/testify/require"
)

func TestRunStatus(t *testing.T) {
	mock := &MockHubClient{
		Providers: []hub.Provider{
			{Code: "ek_wa", ConnectionStatus: "working"},
			{Code: "ek_mail", ConnectionStatus: "error"},
		},
		Keys: []hub.APIKey{
			{ID: 1, KeyName: "billing", IsActive: true},
			{ID: 2, KeyName: "old", IsActive: false},
		},
		Logs: []hub.LogEntry{
			{MessageID: "m1", Status: "delivered"},
			{MessageID: "m2", Status: "failed", Attempts: 3, MaxAttempts: 3},
		},
	}

	cleanup := withMockClient(mock)
	defer cleanup()

	logsLimit = 50
	defer func() { logsLimit = 0 }()

	require.NoError(t, runStatus(nil, nil))
}
