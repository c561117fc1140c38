package model

import "time"

// Profile is a named connection to one Integration Hub environment
// (e.g. production, staging). The API key authorizes every call made
// through the profile.
type Profile struct {
	// UID is the unique identifier for this profile
	UID string `json:"uid"`

	// Name is the profile name used for selection (unique)
	Name string `json:"name"`

	// BaseURL is the hub API base URL
	BaseURL string `json:"base_url"`

	// APIKey is the X-Api-Key value sent with every request
	APIKey string `json:"api_key"`

	// CreatedAt is when the profile was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the profile was last updated
	UpdatedAt time.Time `json:"updated_at"`
}
