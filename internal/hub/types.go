package hub

import (
	"strings"

	"github.com/ekomkassa/hubctl/internal/provider"
)

// Provider is a configured notification channel as reported by the hub.
// Timestamps are kept as the backend's ISO strings; the backend omits the
// timezone, so they are display values rather than parsed times.
type Provider struct {
	Code             string            `json:"provider_code"`
	Name             string            `json:"provider_name"`
	Type             provider.Type `json:"provider_type"`
	IsActive         bool          `json:"is_active"`
	ConnectionStatus string        `json:"connection_status"`
	LastAttemptAt    string        `json:"last_attempt_at,omitempty"`
	CreatedAt        string        `json:"created_at,omitempty"`
	UpdatedAt        string        `json:"updated_at,omitempty"`
}

// Status returns the provider's connection status with the client-side
// fallback applied.
func (p Provider) Status() provider.ConnectionStatus {
	return provider.ParseConnectionStatus(p.ConnectionStatus)
}

// Sendable reports whether the provider can be offered in the sandbox
// sender (only working or configured providers are).
func (p Provider) Sendable() bool {
	s := p.Status()
	return s == provider.StatusWorking || s == provider.StatusConfigured
}

// APIKey is a bearer credential for the hub management and dispatch API.
type APIKey struct {
	ID         int64  `json:"id"`
	KeyName    string `json:"key_name"`
	APIKey     string `json:"api_key"`
	IsActive   bool   `json:"is_active"`
	CreatedAt  string `json:"created_at,omitempty"`
	LastUsedAt string `json:"last_used_at,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
}

// Masked returns the key value safe for list display. The full value is
// shown exactly once, right after create or regenerate.
func (k APIKey) Masked() string {
	const visible = 8

	if len(k.APIKey) <= visible {
		return strings.Repeat("•", len(k.APIKey))
	}

	return k.APIKey[:visible] + strings.Repeat("•", 12)
}

// ExpiryChoices are the accepted values for key creation expiry.
var ExpiryChoices = []string{"never", "30", "90", "180", "365"}

// ValidExpiry reports whether the expiry selection is one of the
// accepted values.
func ValidExpiry(expiryDays string) bool {
	for _, c := range ExpiryChoices {
		if expiryDays == c {
			return true
		}
	}

	return false
}

// LogEntry is one dispatch record from the hub delivery log. Read-only;
// the only write against it is a retry keyed by MessageID.
type LogEntry struct {
	MessageID   string `json:"message_id"`
	Recipient   string `json:"recipient"`
	Provider    string `json:"provider"`
	Status      string `json:"status"`
	Attempts    int    `json:"attempts"`
	MaxAttempts int    `json:"max_attempts"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// Failed reports whether the entry is in the failed state. Used only to
// decide whether a retry control is rendered; the retry call itself never
// re-verifies.
func (e LogEntry) Failed() bool {
	return e.Status == "failed"
}

// SendRequest is a sandbox dispatch request.
type SendRequest struct {
	Provider  string `json:"provider"`
	Recipient string `json:"recipient"`
	Message   string `json:"message"`
	Subject   string `json:"subject,omitempty"`
}

// SendResult is the sandbox dispatch outcome. On business failure the
// backend's error text is carried verbatim in Error.
type SendResult struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Status    string `json:"status,omitempty"`
	Error     string `json:"error,omitempty"`
}
