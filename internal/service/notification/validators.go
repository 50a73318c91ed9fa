package notification

import "strings"

func validateSendRequest(request SendRequest) error {
	if !request.Tenant.Valid() {
		return ErrUnknownTenant
	}
	if !request.RecipientKind.Valid() {
		return ErrUnknownRecipientKind
	}
	if request.RecipientID <= 0 {
		return ErrInvalidRecipient
	}
	if len(request.Channels) == 0 {
		return ErrNoChannelsRequested
	}
	for _, channel := range request.Channels {
		if !channel.Valid() {
			return ErrUnknownChannel
		}
	}
	if strings.TrimSpace(request.Title) == "" && strings.TrimSpace(request.Body) == "" {
		return ErrEmptyMessage
	}
	return nil
}
