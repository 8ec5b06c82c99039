// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"

	"thrift-rizz/models"
)

// EmailService sends order notifications to the shop inbox using Postmark.
// It is optional: without a POSTMARK_API_TOKEN the constructor returns nil
// and callers skip notification.
type EmailService struct {
	client *postmark.Client
	sender string
	inbox  string
}

// NewEmailService initializes the service from the environment, or returns
// nil when no API token is configured.
func NewEmailService() *EmailService {
	apiToken := os.Getenv("POSTMARK_API_TOKEN")
	if apiToken == "" {
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: os.Getenv("EMAIL_SENDER"),
		inbox:  os.Getenv("ADMIN_EMAIL"),
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderNotification tells the shop inbox about a freshly placed order so
// someone can pack it.
func (es *EmailService) SendOrderNotification(order models.Order) error {
	subject := fmt.Sprintf("New order %s - Thrift Rizz", order.ID)
	htmlContent := fmt.Sprintf(
		"<strong>New order placed.</strong><br><br>Order ID: <strong>%s</strong><br>Customer: %s (%s)<br>Deliver to: %s, %s<br>Items: %d<br>Total: <strong>Rs. %d</strong> (shipping Rs. %d)<br>Payment: %s",
		order.ID,
		order.CustomerName,
		order.Phone,
		order.Address,
		order.City,
		len(order.Items),
		order.TotalAmount,
		order.ShippingFee,
		order.PaymentMethod,
	)
	return es.SendEmail(es.inbox, subject, htmlContent)
}
