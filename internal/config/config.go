// Package config layers environment and file overrides on top of the
// stored configuration. Values resolve in order: flag, environment
// variable, config file, stored defaults.
package config

import (
	"errors"
	"strings"
	"sync"

	"github.com/ekomkassa/hubctl/internal/params"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "HUBCTL"

// Keys recognized in the environment (prefixed with HUBCTL_) and in the
// optional config file at the application data directory.
const (
	KeyBaseURL     = "base_url"
	KeyAPIKey      = "api_key"
	KeyProfile     = "profile"
	KeyLogLimit    = "log_limit"
	KeyHTTPTimeout = "http_timeout_seconds"
)

var (
	loadOnce sync.Once
	loadErr  error
)

// Load reads the optional config file and binds environment variables.
// It is safe to call multiple times; only the first call does work.
func Load() error {
	loadOnce.Do(func() {
		viper.SetEnvPrefix(envPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()

		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(params.AppdataDir)

		if err := viper.ReadInConfig(); err != nil {
			// Missing file is fine, a malformed one is not.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				loadErr = err
			}
		}
	})

	return loadErr
}

// BindFlag binds a command-line flag to a config key so the flag takes
// precedence over environment and file values.
func BindFlag(key string, flag *pflag.Flag) error {
	return viper.BindPFlag(key, flag)
}

// BaseURL returns the hub endpoint override, or "" when unset.
func BaseURL() string { return viper.GetString(KeyBaseURL) }

// APIKey returns the API key override, or "" when unset.
func APIKey() string { return viper.GetString(KeyAPIKey) }

// Profile returns the profile name override, or "" when unset.
func Profile() string { return viper.GetString(KeyProfile) }

// LogLimit returns the delivery log page size override, or 0 when unset.
func LogLimit() int { return viper.GetInt(KeyLogLimit) }

// HTTPTimeoutSeconds returns the request timeout override, or 0 when unset.
func HTTPTimeoutSeconds() int { return viper.GetInt(KeyHTTPTimeout) }
