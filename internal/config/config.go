package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds all process-wide configuration. It is resolved once at
// startup and treated as immutable afterwards.
type Settings struct {
	Ticketmaster TicketmasterSettings
	Surge        SurgeSettings
}

// TicketmasterSettings holds the Ticketmaster Discovery API configuration
type TicketmasterSettings struct {
	// ConsumerKey is the API key passed as the apikey query parameter
	ConsumerKey string `mapstructure:"consumer_key"`
}

// SurgeSettings holds the Surge messaging API configuration including the
// fixed recipient profile every outgoing text is addressed to.
type SurgeSettings struct {
	APIKey        string `mapstructure:"api_key"`
	AccountID     string `mapstructure:"account_id"`
	MyPhoneNumber string `mapstructure:"my_phone_number"`
	MyFirstName   string `mapstructure:"my_first_name"`
	MyLastName    string `mapstructure:"my_last_name"`
}

// Load resolves settings from the environment. Surge settings use the
// SURGE_ prefix (SURGE_API_KEY, SURGE_ACCOUNT_ID, SURGE_MY_PHONE_NUMBER,
// SURGE_MY_FIRST_NAME, SURGE_MY_LAST_NAME); the Ticketmaster key comes from
// TICKETMASTER_CONSUMER_KEY.
func Load() (*Settings, error) {
	surge := viper.New()
	surge.SetEnvPrefix("SURGE")
	surge.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	surge.AutomaticEnv()

	// AutomaticEnv alone does not populate Unmarshal; bind each key so the
	// struct fields are filled from the environment.
	for _, key := range []string{"api_key", "account_id", "my_phone_number", "my_first_name", "my_last_name"} {
		if err := surge.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind SURGE_%s: %w", strings.ToUpper(key), err)
		}
	}

	var surgeSettings SurgeSettings
	if err := surge.Unmarshal(&surgeSettings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Surge settings: %w", err)
	}

	tm := viper.New()
	tm.SetEnvPrefix("TICKETMASTER")
	tm.AutomaticEnv()
	if err := tm.BindEnv("consumer_key"); err != nil {
		return nil, fmt.Errorf("failed to bind TICKETMASTER_CONSUMER_KEY: %w", err)
	}

	settings := &Settings{
		Ticketmaster: TicketmasterSettings{
			ConsumerKey: tm.GetString("consumer_key"),
		},
		Surge: surgeSettings,
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Validate checks that every required value is present. The server fails
// fast at startup rather than surfacing missing credentials on the first
// tool call.
func (s *Settings) Validate() error {
	var missing []string

	if s.Ticketmaster.ConsumerKey == "" {
		missing = append(missing, "TICKETMASTER_CONSUMER_KEY")
	}
	if s.Surge.APIKey == "" {
		missing = append(missing, "SURGE_API_KEY")
	}
	if s.Surge.AccountID == "" {
		missing = append(missing, "SURGE_ACCOUNT_ID")
	}
	if s.Surge.MyPhoneNumber == "" {
		missing = append(missing, "SURGE_MY_PHONE_NUMBER")
	}
	if s.Surge.MyFirstName == "" {
		missing = append(missing, "SURGE_MY_FIRST_NAME")
	}
	if s.Surge.MyLastName == "" {
		missing = append(missing, "SURGE_MY_LAST_NAME")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}
