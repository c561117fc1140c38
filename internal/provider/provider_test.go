package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		typ  Type
		want Kind
	}{
		{name: "whatsapp is messenger", typ: TypeWhatsAppBusiness, want: KindMessenger},
		{name: "telegram is messenger", typ: TypeTelegramBot, want: KindMessenger},
		{name: "max is messenger", typ: TypeMax, want: KindMessenger},
		{name: "postbox is mail", typ: TypeYandexPostbox, want: KindMail},
		{name: "sms is unconstrained", typ: TypeSMS, want: KindUnconstrained},
		{name: "email is unconstrained", typ: TypeEmail, want: KindUnconstrained},
		{name: "push is unconstrained", typ: TypePush, want: KindUnconstrained},
		{name: "custom is unconstrained", typ: TypeCustom, want: KindUnconstrained},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.typ))
		})
	}
}

func TestTypeValid(t *testing.T) {
	for _, typ := range Types() {
		assert.True(t, typ.Valid(), "type %q should be valid", typ)
	}

	assert.False(t, Type("").Valid())
	assert.False(t, Type("carrier_pigeon").Valid())
}

func TestParseConnectionStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want ConnectionStatus
	}{
		{raw: "working", want: StatusWorking},
		{raw: "configured", want: StatusConfigured},
		{raw: "error", want: StatusError},
		{raw: "not_configured", want: StatusNotConfigured},
		{raw: "", want: StatusNotConfigured},
		{raw: "banana", want: StatusNotConfigured},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseConnectionStatus(tt.raw))
		})
	}
}
