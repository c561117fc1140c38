package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messengerDraft() Draft {
	return Draft{
		Name:      "WA",
		Code:      "ek_wa",
		Type:      TypeWhatsAppBusiness,
		Token:     "t1",
		ProfileID: "p1",
	}
}

func mailDraft() Draft {
	return Draft{
		Name:      "Mail",
		Code:      "ek_mail",
		Type:      TypeYandexPostbox,
		AccessKey: "a",
		SecretKey: "s",
		FromEmail: "noreply@example.com",
	}
}

func TestSubmittableMessenger(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		want   bool
	}{
		{name: "complete", mutate: func(*Draft) {}, want: true},
		{name: "missing token", mutate: func(d *Draft) { d.Token = "" }, want: false},
		{name: "missing profile id", mutate: func(d *Draft) { d.ProfileID = "" }, want: false},
		{name: "missing name", mutate: func(d *Draft) { d.Name = "" }, want: false},
		{name: "missing code", mutate: func(d *Draft) { d.Code = "" }, want: false},
		{
			name: "postbox fields do not help",
			mutate: func(d *Draft) {
				d.Token = ""
				d.AccessKey = "a"
				d.SecretKey = "s"
				d.FromEmail = "x@y.com"
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := messengerDraft()
			tt.mutate(&d)
			assert.Equal(t, tt.want, d.Submittable())
		})
	}
}

func TestSubmittableMail(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Draft)
		want   bool
	}{
		{name: "complete", mutate: func(*Draft) {}, want: true},
		{name: "missing access key", mutate: func(d *Draft) { d.AccessKey = "" }, want: false},
		{name: "missing secret key", mutate: func(d *Draft) { d.SecretKey = "" }, want: false},
		{name: "missing from email", mutate: func(d *Draft) { d.FromEmail = "" }, want: false},
		{
			name: "wappi fields do not help",
			mutate: func(d *Draft) {
				d.SecretKey = ""
				d.Token = "t"
				d.ProfileID = "p"
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := mailDraft()
			tt.mutate(&d)
			assert.Equal(t, tt.want, d.Submittable())
		})
	}
}

func TestSubmittableUnconstrained(t *testing.T) {
	// Unconstrained types need only the three base fields; credential
	// fields are irrelevant either way.
	for _, typ := range []Type{TypeSMS, TypeEmail, TypePush, TypeCustom} {
		d := Draft{Name: "X", Code: "x", Type: typ}
		assert.True(t, d.Submittable(), "type %q with base fields", typ)

		d.Code = ""
		assert.False(t, d.Submittable(), "type %q without code", typ)
	}

	empty := Draft{}
	assert.False(t, empty.Submittable())
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "ek_wa", want: "ek_wa"},
		{input: "EK MAIL!", want: "ek_mail"},
		{input: "  My Provider  ", want: "my_provider"},
		{input: "Foo-Bar.Baz", want: "foobarbaz"},
		{input: "a  b\tc", want: "a_b_c"},
		{input: "ПРОВАЙДЕР 1", want: "1"},
		{input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := NormalizeCode(tt.input)
			assert.Equal(t, tt.want, got)

			// Normalization must be idempotent.
			assert.Equal(t, got, NormalizeCode(got))
		})
	}
}

func TestCreateRequestMessenger(t *testing.T) {
	d := messengerDraft()
	require.True(t, d.Submittable())

	req := d.CreateRequest()
	assert.Equal(t, "ek_wa", req.ProviderCode)
	assert.Equal(t, "WA", req.ProviderName)
	assert.Equal(t, TypeWhatsAppBusiness, req.ProviderType)
	assert.Equal(t, "t1", req.WappiToken)
	assert.Equal(t, "p1", req.WappiProfileID)
	assert.Empty(t, req.PostboxAccessKey)
	assert.Empty(t, req.PostboxSecretKey)
	assert.Empty(t, req.PostboxFromEmail)
}

func TestCreateRequestMail(t *testing.T) {
	d := mailDraft()
	// Stale wappi fields from a previous type selection must not leak
	// into a mail payload.
	d.Token = "stale"
	d.ProfileID = "stale"

	req := d.CreateRequest()
	assert.Equal(t, "a", req.PostboxAccessKey)
	assert.Equal(t, "s", req.PostboxSecretKey)
	assert.Equal(t, "noreply@example.com", req.PostboxFromEmail)
	assert.Empty(t, req.WappiToken)
	assert.Empty(t, req.WappiProfileID)
}

func TestCreateRequestUnconstrained(t *testing.T) {
	d := Draft{
		Name:      "SMS",
		Code:      "sms_main",
		Type:      TypeSMS,
		Token:     "stale",
		AccessKey: "stale",
	}

	req := d.CreateRequest()
	assert.Equal(t, "sms_main", req.ProviderCode)
	assert.Empty(t, req.WappiToken)
	assert.Empty(t, req.PostboxAccessKey)
}

func TestSubmittableMailEmptySecretScenario(t *testing.T) {
	d := Draft{
		Name:      "Mail",
		Code:      NormalizeCode("EK MAIL!"),
		Type:      TypeYandexPostbox,
		AccessKey: "a",
		SecretKey: "",
		FromEmail: "x@y.com",
	}

	assert.Equal(t, "ek_mail", d.Code)
	assert.False(t, d.Submittable())
}
