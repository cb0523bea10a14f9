package sendgrid

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"

	"github.com/navarrastar/newsletter-widget/pkg/models"
	"github.com/navarrastar/newsletter-widget/pkg/utils"
	"github.com/navarrastar/newsletter-widget/pkg/views"
)

const confirmationSubject = "Please confirm your subscription"

// Client defines the interface for sending confirmation emails
type Client interface {
	SendConfirmation(ctx context.Context, sub models.Subscriber, link string) error
}

type clientImpl struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

// NewClient creates a new SendGrid client
func NewClient(apiKey, fromName, fromEmail string) Client {
	return &clientImpl{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  fromName,
		fromEmail: fromEmail,
	}
}

func (c *clientImpl) SendConfirmation(ctx context.Context, sub models.Subscriber, link string) error {
	htmlContent, err := views.RenderString(ctx, views.ConfirmationEmail(sub.FirstName, link))
	if err != nil {
		return fmt.Errorf("error rendering confirmation email: %w", err)
	}

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(sub.FirstName, sub.Email)
	plainTextContent := fmt.Sprintf("Hi %s,\n\nPlease confirm your subscription: %s\n", sub.FirstName, link)

	msg := mail.NewSingleEmail(from, confirmationSubject, to, plainTextContent, htmlContent)
	resp, err := c.client.SendWithContext(ctx, msg)
	if err != nil {
		return fmt.Errorf("error sending confirmation email: %w", err)
	}

	if resp.StatusCode >= 300 {
		return fmt.Errorf("error from SendGrid API: %d %s", resp.StatusCode, resp.Body)
	}

	utils.Logger.WithField("email_hash", sub.EmailHash).Info("Sent confirmation email")
	return nil
}

type logClient struct{}

// NewLogClient returns a Client that only logs the confirmation link. It is
// used when no SendGrid API key is configured.
func NewLogClient() Client {
	return logClient{}
}

func (logClient) SendConfirmation(_ context.Context, sub models.Subscriber, link string) error {
	utils.Logger.WithFields(logrus.Fields{
		"email_hash": sub.EmailHash,
		"link":       link,
	}).Warn("SendGrid not configured, confirmation email not sent")
	return nil
}
