package sms

import (
	"context"
	"fmt"
	"time"

	"github.com/twilio/twilio-go"
	api "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioClient sends SMS through the Twilio REST API from a fixed
// sender number. The Twilio SDK carries its own HTTP timeout, so the
// context is accepted only to satisfy the provider contract.
type TwilioClient struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioClient(accountSID, authToken, fromNumber string, timeout time.Duration) *TwilioClient {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	client.SetTimeout(timeout)

	return &TwilioClient{
		client: client,
		from:   fromNumber,
	}
}

func (c *TwilioClient) SendSMS(_ context.Context, phone, body string) error {
	params := &api.CreateMessageParams{}
	params.SetBody(body)
	params.SetFrom(c.from)
	params.SetTo(phone)

	if _, err := c.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("twilio create message: %w", err)
	}
	return nil
}
