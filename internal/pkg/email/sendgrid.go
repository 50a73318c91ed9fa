package email

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

var ErrEmailRejected = errors.New("email provider rejected the message")

// SendgridClient sends transactional mail through Sendgrid with a fixed
// sender identity.
type SendgridClient struct {
	client   *sendgrid.Client
	fromName string
	fromMail string
	timeout  time.Duration
}

func NewSendgridClient(apiKey, fromName, fromMail string, timeout time.Duration) *SendgridClient {
	return &SendgridClient{
		client:   sendgrid.NewSendClient(apiKey),
		fromName: fromName,
		fromMail: fromMail,
		timeout:  timeout,
	}
}

func (c *SendgridClient) SendEmail(ctx context.Context, toEmail, toName, subject, body string) error {
	message := mail.NewV3Mail()
	message.SetFrom(mail.NewEmail(c.fromName, c.fromMail))
	message.Subject = subject

	personalization := mail.NewPersonalization()
	personalization.AddTos(mail.NewEmail(toName, toEmail))
	message.AddPersonalizations(personalization)
	message.AddContent(mail.NewContent("text/plain", body))

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	response, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("%w: sendgrid responded %d: %s", ErrEmailRejected, response.StatusCode, response.Body)
	}
	return nil
}
