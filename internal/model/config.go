package model

// Config holds the application configuration
type Config struct {
	// ActiveProfile is the name of the hub profile used by default
	ActiveProfile string `json:"active_profile"`

	// LogLimit is the number of delivery log entries fetched per load
	LogLimit int `json:"log_limit"`

	// HTTPTimeoutSeconds is the per-request timeout for hub API calls
	HTTPTimeoutSeconds int `json:"http_timeout_seconds"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		ActiveProfile:      "default",
		LogLimit:           50,
		HTTPTimeoutSeconds: 30,
	}
}
