package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"thrift-rizz/models"
)

func TestWhatsAppLink(t *testing.T) {
	order := models.Order{
		ID:           "AB12CD34",
		CustomerName: "Ahsan K.",
		TotalAmount:  9300,
	}

	link := WhatsAppLink("923458607832", order)
	require.True(t, len(link) > 0)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	require.Equal(t, "wa.me", parsed.Host)
	require.Equal(t, "/923458607832", parsed.Path)

	text := parsed.Query().Get("text")
	require.Contains(t, text, "order #AB12CD34")
	require.Contains(t, text, "Ahsan K.")
	require.Contains(t, text, "Rs. 9300")
}

func TestWhatsAppNumberDefault(t *testing.T) {
	t.Setenv("WHATSAPP_NUMBER", "")
	require.Equal(t, DefaultWhatsAppNumber, WhatsAppNumber())

	t.Setenv("WHATSAPP_NUMBER", "920000000000")
	require.Equal(t, "920000000000", WhatsAppNumber())
}
