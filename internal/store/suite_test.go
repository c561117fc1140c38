package store

import (
	"testing"

	"github.com/ekomkassa/hubctl/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStore runs the shared behavioral checks against any Store
// implementation. The build-tagged test files construct the concrete
// store and call this.
func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	require.NoError(t, s.Ping())

	t.Run("config defaults and roundtrip", func(t *testing.T) {
		cfg, err := s.GetConfig()
		require.NoError(t, err)
		assert.Equal(t, 50, cfg.LogLimit)
		assert.Equal(t, "default", cfg.ActiveProfile)

		cfg.LogLimit = 100
		require.NoError(t, s.SaveConfig(cfg))

		got, err := s.GetConfig()
		require.NoError(t, err)
		assert.Equal(t, 100, got.LogLimit)
	})

	t.Run("profile lifecycle", func(t *testing.T) {
		exists, err := s.ProfileExists("prod")
		require.NoError(t, err)
		assert.False(t, exists)

		profile := &model.Profile{
			Name:    "prod",
			BaseURL: "https://hub.example.com",
			APIKey:  "ek_live_prod",
		}
		require.NoError(t, s.SaveProfile(profile))
		assert.NotEmpty(t, profile.UID)
		assert.False(t, profile.CreatedAt.IsZero())

		got, err := s.GetProfile("prod")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "https://hub.example.com", got.BaseURL)

		// Upsert keeps identity, replaces credentials.
		require.NoError(t, s.SaveProfile(&model.Profile{
			Name:    "prod",
			BaseURL: "https://hub.example.com",
			APIKey:  "ek_live_rotated",
		}))

		got, err = s.GetProfile("prod")
		require.NoError(t, err)
		assert.Equal(t, "ek_live_rotated", got.APIKey)

		missing, err := s.GetProfile("nope")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("active profile selection", func(t *testing.T) {
		active, err := s.GetActiveProfile()
		require.NoError(t, err)
		assert.Nil(t, active)

		assert.Error(t, s.SetActiveProfile("ghost"))

		require.NoError(t, s.SetActiveProfile("prod"))

		active, err = s.GetActiveProfile()
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, "prod", active.Name)
	})

	t.Run("delete clears active selection", func(t *testing.T) {
		require.NoError(t, s.SaveProfile(&model.Profile{
			Name:    "staging",
			BaseURL: "https://staging.example.com",
			APIKey:  "ek_live_staging",
		}))

		profiles, err := s.ListProfiles()
		require.NoError(t, err)
		assert.Len(t, profiles, 2)

		require.NoError(t, s.DeleteProfile("prod"))

		active, err := s.GetActiveProfile()
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("send history", func(t *testing.T) {
		records, err := s.ListSendRecords(10)
		require.NoError(t, err)
		assert.Empty(t, records)

		first := &model.SendRecord{
			MessageID: "m1",
			Provider:  "ek_wa",
			Recipient: "+79001234567",
			Status:    "delivered",
		}
		require.NoError(t, s.AppendSendRecord(first))
		assert.NotZero(t, first.ID)
		assert.False(t, first.SentAt.IsZero())

		require.NoError(t, s.AppendSendRecord(&model.SendRecord{
			MessageID: "m2",
			Provider:  "ek_mail",
			Recipient: "x@y.com",
			Status:    "failed",
		}))

		records, err = s.ListSendRecords(10)
		require.NoError(t, err)
		require.Len(t, records, 2)

		// Newest first
		assert.Equal(t, "m2", records[0].MessageID)

		limited, err := s.ListSendRecords(1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})
}
