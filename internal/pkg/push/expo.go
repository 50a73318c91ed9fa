package push

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	notificationservice "dispatch/internal/service/notification"
)

type expoMessage struct {
	To       string            `json:"to"`
	Title    string            `json:"title,omitempty"`
	Body     string            `json:"body,omitempty"`
	Data     map[string]string `json:"data,omitempty"`
	Sound    string            `json:"sound,omitempty"`
	Priority string            `json:"priority,omitempty"`
}

type expoResponse struct {
	Data struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"data"`
}

// ExpoClient delivers push messages through the Expo push service,
// which accepts ExponentPushToken tokens the FCM API knows nothing
// about. One attempt per call, same as FCMClient.
type ExpoClient struct {
	client *resty.Client
}

func NewExpoClient(endpoint string, timeout time.Duration) *ExpoClient {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &ExpoClient{client: client}
}

func (c *ExpoClient) SendPush(ctx context.Context, token string, message notificationservice.PushMessage) error {
	var result expoResponse
	response, err := c.client.R().
		SetContext(ctx).
		SetBody(expoMessage{
			To:       token,
			Title:    message.Title,
			Body:     message.Body,
			Data:     message.Data,
			Sound:    message.Sound,
			Priority: message.Priority,
		}).
		SetResult(&result).
		Post("")
	if err != nil {
		return fmt.Errorf("expo request: %w", err)
	}
	if response.IsError() {
		return fmt.Errorf("%w: expo responded %s", ErrPushRejected, response.Status())
	}
	if result.Data.Status == "error" {
		return fmt.Errorf("%w: expo reported %s", ErrPushRejected, result.Data.Message)
	}
	return nil
}
