package notification

import (
	"encoding/json"
	"fmt"

	"dispatch/internal/entities"
)

func ToDomain(n *NotificationDB, tenant entities.Tenant) (*entities.Notification, error) {
	if n == nil {
		return nil, nil
	}

	var data map[string]string
	if len(n.Data) > 0 {
		if err := json.Unmarshal(n.Data, &data); err != nil {
			return nil, fmt.Errorf("decode notification data: %w", err)
		}
	}

	var channels map[entities.NotificationChannel]entities.ChannelDeliveryStatus
	if len(n.Channels) > 0 {
		if err := json.Unmarshal(n.Channels, &channels); err != nil {
			return nil, fmt.Errorf("decode notification channels: %w", err)
		}
	}

	return &entities.Notification{
		ID:            n.ID,
		RecipientID:   n.RecipientID,
		RecipientKind: entities.RecipientKind(n.RecipientKind),
		Tenant:        tenant,
		Title:         n.Title,
		Body:          n.Body,
		Type:          n.Type,
		Data:          data,
		Read:          n.Read,
		ReadAt:        n.ReadAt,
		CreatedAt:     n.CreatedAt,
		Channels:      channels,
	}, nil
}

func encodeData(data map[string]string) ([]byte, error) {
	if data == nil {
		data = map[string]string{}
	}
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode notification data: %w", err)
	}
	return encoded, nil
}

func encodeChannels(channels map[entities.NotificationChannel]entities.ChannelDeliveryStatus) ([]byte, error) {
	if channels == nil {
		channels = map[entities.NotificationChannel]entities.ChannelDeliveryStatus{}
	}
	encoded, err := json.Marshal(channels)
	if err != nil {
		return nil, fmt.Errorf("encode notification channels: %w", err)
	}
	return encoded, nil
}
