package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeEnv(t *testing.T) {
	t.Setenv("TICKETMASTER_CONSUMER_KEY", "tm-key")
	t.Setenv("SURGE_API_KEY", "surge-key")
	t.Setenv("SURGE_ACCOUNT_ID", "acct_123")
	t.Setenv("SURGE_MY_PHONE_NUMBER", "+15551234567")
	t.Setenv("SURGE_MY_FIRST_NAME", "Ada")
	t.Setenv("SURGE_MY_LAST_NAME", "Lovelace")
}

func TestLoad(t *testing.T) {
	completeEnv(t)

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "tm-key", settings.Ticketmaster.ConsumerKey)
	assert.Equal(t, "surge-key", settings.Surge.APIKey)
	assert.Equal(t, "acct_123", settings.Surge.AccountID)
	assert.Equal(t, "+15551234567", settings.Surge.MyPhoneNumber)
	assert.Equal(t, "Ada", settings.Surge.MyFirstName)
	assert.Equal(t, "Lovelace", settings.Surge.MyLastName)
}

func TestLoadFailsFast(t *testing.T) {
	tests := []struct {
		name   string
		unset  string
		wantIn string
	}{
		{
			name:   "missing ticketmaster key",
			unset:  "TICKETMASTER_CONSUMER_KEY",
			wantIn: "TICKETMASTER_CONSUMER_KEY",
		},
		{
			name:   "missing surge api key",
			unset:  "SURGE_API_KEY",
			wantIn: "SURGE_API_KEY",
		},
		{
			name:   "missing recipient phone",
			unset:  "SURGE_MY_PHONE_NUMBER",
			wantIn: "SURGE_MY_PHONE_NUMBER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completeEnv(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantIn)
		})
	}
}

func TestValidateReportsAllMissing(t *testing.T) {
	settings := &Settings{}

	err := settings.Validate()
	require.Error(t, err)

	for _, key := range []string{
		"TICKETMASTER_CONSUMER_KEY",
		"SURGE_API_KEY",
		"SURGE_ACCOUNT_ID",
		"SURGE_MY_PHONE_NUMBER",
		"SURGE_MY_FIRST_NAME",
		"SURGE_MY_LAST_NAME",
	} {
		assert.Contains(t, err.Error(), key)
	}
}
