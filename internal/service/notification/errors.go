package notification

import "errors"

var (
	ErrInvalidRecipient      = errors.New("invalid recipient id")
	ErrInvalidNotificationID = errors.New("invalid notification id")

	ErrNotificationNotFound = errors.New("notification not found")
)
