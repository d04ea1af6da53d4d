package entities

import "time"

type Notification struct {
	ID          string
	RecipientID string
	Title       string
	Body        string
	Type        NotificationType
	Read        bool
	ErrandID    string
	CreatedAt   time.Time
}

type NotificationType string

const (
	NotificationErrandUpdate NotificationType = "errand_update"
)

func (t NotificationType) String() string {
	return string(t)
}

type NotificationModify struct {
	ID          *string
	RecipientID *string
	Title       *string
	Body        *string
	Type        *NotificationType
	Read        *bool
	ErrandID    *string
}
