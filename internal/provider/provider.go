// Package provider defines the provider registry rules shared by every
// surface of hubctl: the closed set of provider types, the credential
// fields each type family requires, and the mapping of backend-reported
// connection state to a display status.
package provider

// Type identifies a provider backend. The string value doubles as the
// wire value for provider_type, so it must never change once released.
type Type string

const (
	TypeWhatsAppBusiness Type = "whatsapp_business"
	TypeTelegramBot      Type = "telegram_bot"
	TypeMax              Type = "max"
	TypeYandexPostbox    Type = "yandex_postbox"
	TypeSMS              Type = "sms"
	TypeEmail            Type = "email"
	TypePush             Type = "push"
	TypeCustom           Type = "custom"
)

// Types returns all known provider types in picker order.
func Types() []Type {
	return []Type{
		TypeWhatsAppBusiness,
		TypeTelegramBot,
		TypeMax,
		TypeYandexPostbox,
		TypeSMS,
		TypeEmail,
		TypePush,
		TypeCustom,
	}
}

// Valid reports whether t is one of the known provider types.
func (t Type) Valid() bool {
	switch t {
	case TypeWhatsAppBusiness, TypeTelegramBot, TypeMax, TypeYandexPostbox,
		TypeSMS, TypeEmail, TypePush, TypeCustom:
		return true
	}

	return false
}

// Label returns the human display name for a provider type.
func (t Type) Label() string {
	switch t {
	case TypeWhatsAppBusiness:
		return "WhatsApp (Wappi)"
	case TypeTelegramBot:
		return "Telegram (Wappi)"
	case TypeMax:
		return "MAX (Wappi)"
	case TypeYandexPostbox:
		return "Yandex Postbox API"
	case TypeSMS:
		return "SMS Gateway"
	case TypeEmail:
		return "Email SMTP"
	case TypePush:
		return "Push Notifications"
	case TypeCustom:
		return "Custom"
	default:
		return string(t)
	}
}

// Kind is the credential family of a provider type. It decides which
// credential fields are shown and required before a draft may be saved.
type Kind int

const (
	// KindUnconstrained providers need only name, code and type; their
	// configuration is deferred to the backend.
	KindUnconstrained Kind = iota

	// KindMessenger providers are routed through the Wappi gateway and
	// require an API token and a profile ID.
	KindMessenger

	// KindMail providers are routed through Yandex Postbox and require
	// an access key, a secret key and a verified sender address.
	KindMail
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindMessenger:
		return "messenger"
	case KindMail:
		return "mail"
	default:
		return "unconstrained"
	}
}

// Classify maps a provider type to its credential family.
func Classify(t Type) Kind {
	switch t {
	case TypeWhatsAppBusiness, TypeTelegramBot, TypeMax:
		return KindMessenger
	case TypeYandexPostbox:
		return KindMail
	default:
		return KindUnconstrained
	}
}

// ConnectionStatus is the backend-reported connection state of a
// provider. The client never computes it, only displays it.
type ConnectionStatus string

const (
	StatusNotConfigured ConnectionStatus = "not_configured"
	StatusConfigured    ConnectionStatus = "configured"
	StatusWorking       ConnectionStatus = "working"
	StatusError         ConnectionStatus = "error"
)

// ParseConnectionStatus maps a raw backend value to a ConnectionStatus.
// Unrecognized values fall back to StatusNotConfigured.
func ParseConnectionStatus(raw string) ConnectionStatus {
	switch ConnectionStatus(raw) {
	case StatusConfigured, StatusWorking, StatusError:
		return ConnectionStatus(raw)
	default:
		return StatusNotConfigured
	}
}

// Label returns the display text for a connection status.
func (s ConnectionStatus) Label() string {
	switch s {
	case StatusWorking:
		return "Working"
	case StatusConfigured:
		return "Configured"
	case StatusError:
		return "Error"
	default:
		return "Not configured"
	}
}
