package provider

import (
	"strings"
	"unicode"
)

// Draft is a candidate provider configuration as edited in a form.
// Credential fields outside the draft's type family are ignored when the
// wire payload is built.
type Draft struct {
	Name string
	Code string
	Type Type

	// Wappi credentials (messenger family)
	Token     string
	ProfileID string

	// Postbox credentials (mail family)
	AccessKey string
	SecretKey string
	FromEmail string
}

// NormalizeCode canonicalizes a provider code: lowercase, whitespace runs
// become a single underscore, every other character outside [a-z0-9_] is
// dropped. It is idempotent and applied live as the user types.
func NormalizeCode(input string) string {
	var b strings.Builder

	pendingSep := false

	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		switch {
		case unicode.IsSpace(r):
			pendingSep = true
		case r == '_' || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			if pendingSep {
				if b.Len() > 0 {
					b.WriteByte('_')
				}

				pendingSep = false
			}

			b.WriteRune(r)
		}
	}

	return b.String()
}

// Submittable reports whether the draft satisfies the client-side
// completeness rule for its type family. It decides only whether the
// save control is enabled; credential correctness is the backend's call.
func (d Draft) Submittable() bool {
	if d.Name == "" || d.Code == "" || d.Type == "" {
		return false
	}

	switch Classify(d.Type) {
	case KindMessenger:
		return d.Token != "" && d.ProfileID != ""
	case KindMail:
		return d.AccessKey != "" && d.SecretKey != "" && d.FromEmail != ""
	default:
		return true
	}
}

// CreateRequest is the wire payload for creating or updating a provider.
// Credential keys are only ever set for the matching type family.
type CreateRequest struct {
	ProviderCode string `json:"provider_code"`
	ProviderName string `json:"provider_name"`
	ProviderType Type   `json:"provider_type"`

	WappiToken     string `json:"wappi_token,omitempty"`
	WappiProfileID string `json:"wappi_profile_id,omitempty"`

	PostboxAccessKey string `json:"postbox_access_key,omitempty"`
	PostboxSecretKey string `json:"postbox_secret_key,omitempty"`
	PostboxFromEmail string `json:"postbox_from_email,omitempty"`
}

// CreateRequest shapes the backend payload for the draft. Messenger
// drafts carry wappi_* keys, mail drafts carry postbox_* keys, all other
// types carry only the three base fields.
func (d Draft) CreateRequest() CreateRequest {
	req := CreateRequest{
		ProviderCode: d.Code,
		ProviderName: d.Name,
		ProviderType: d.Type,
	}

	switch Classify(d.Type) {
	case KindMessenger:
		req.WappiToken = d.Token
		req.WappiProfileID = d.ProfileID
	case KindMail:
		req.PostboxAccessKey = d.AccessKey
		req.PostboxSecretKey = d.SecretKey
		req.PostboxFromEmail = d.FromEmail
	}

	return req
}
