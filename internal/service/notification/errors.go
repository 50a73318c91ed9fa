package notification

import "errors"

var (
	ErrUnknownTenant        = errors.New("unknown tenant")
	ErrUnknownRecipientKind = errors.New("unknown recipient kind")
	ErrUnknownChannel       = errors.New("unknown notification channel")
	ErrNoChannelsRequested  = errors.New("no channels requested")
	ErrEmptyMessage         = errors.New("notification has no title or body")

	ErrInvalidRecipient     = errors.New("invalid recipient id")
	ErrRecipientNotFound    = errors.New("recipient not found")
	ErrNotificationNotFound = errors.New("notification not found")

	ErrMissingPushToken = errors.New("recipient has no push token")
	ErrMissingEmail     = errors.New("recipient has no email address")
	ErrMissingPhone     = errors.New("recipient has no phone number")
)
