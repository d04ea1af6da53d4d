package notification

import "time"

type NotificationDB struct {
	ID          string
	RecipientID string
	Title       string
	Body        string
	Type        string
	Read        bool
	ErrandID    string
	CreatedAt   time.Time
}

type NotificationModifyDB struct {
	ID          *string
	RecipientID *string
	Title       *string
	Body        *string
	Type        *string
	Read        *bool
	ErrandID    *string
}
