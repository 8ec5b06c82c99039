package utils

import (
	"fmt"
	"net/url"
	"os"

	"thrift-rizz/models"
)

// DefaultWhatsAppNumber is the shop's order-confirmation number.
const DefaultWhatsAppNumber = "923458607832"

// WhatsAppNumber returns the configured confirmation number, falling back
// to the shop default.
func WhatsAppNumber() string {
	if n := os.Getenv("WHATSAPP_NUMBER"); n != "" {
		return n
	}
	return DefaultWhatsAppNumber
}

// WhatsAppLink builds the wa.me deep link the customer opens to confirm an
// order. Payment confirmation is manual and human-mediated; this link is
// the only external touchpoint.
func WhatsAppLink(number string, order models.Order) string {
	msg := fmt.Sprintf("Hi Thrift Rizz, I just placed order #%s. Name: %s, Amount: Rs. %d.",
		order.ID, order.CustomerName, order.TotalAmount)
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(msg)
}
