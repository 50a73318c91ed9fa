package push

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	notificationservice "dispatch/internal/service/notification"
)

var ErrPushRejected = errors.New("push provider rejected the message")

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Sound string `json:"sound,omitempty"`
}

type fcmRequest struct {
	To           string            `json:"to"`
	Priority     string            `json:"priority,omitempty"`
	Notification fcmNotification   `json:"notification"`
	Data         map[string]string `json:"data,omitempty"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Results []struct {
		Error string `json:"error"`
	} `json:"results"`
}

// FCMClient delivers push messages through the FCM HTTP API. Retries
// are the caller's concern, the client makes exactly one attempt.
type FCMClient struct {
	client *resty.Client
}

func NewFCMClient(endpoint, serverKey string, timeout time.Duration) *FCMClient {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Authorization", "key="+serverKey)

	return &FCMClient{client: client}
}

func (c *FCMClient) SendPush(ctx context.Context, token string, message notificationservice.PushMessage) error {
	var result fcmResponse
	response, err := c.client.R().
		SetContext(ctx).
		SetBody(fcmRequest{
			To:       token,
			Priority: message.Priority,
			Notification: fcmNotification{
				Title: message.Title,
				Body:  message.Body,
				Sound: message.Sound,
			},
			Data: message.Data,
		}).
		SetResult(&result).
		Post("")
	if err != nil {
		return fmt.Errorf("fcm request: %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("%w: fcm responded %s", ErrPushRejected, response.Status())
	}
	if result.Failure > 0 {
		reason := "unknown"
		if len(result.Results) > 0 && result.Results[0].Error != "" {
			reason = result.Results[0].Error
		}
		return fmt.Errorf("%w: fcm reported %s", ErrPushRejected, reason)
	}
	return nil
}
