package notification

import (
	"github.com/AlekSi/pointer"
	"service/internal/entities"
)

func ToDomain(n *NotificationDB) *entities.Notification {
	if n == nil {
		return nil
	}
	return &entities.Notification{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Body:        n.Body,
		Type:        entities.NotificationType(n.Type),
		Read:        n.Read,
		ErrandID:    n.ErrandID,
		CreatedAt:   n.CreatedAt,
	}
}

func FromDomainModify(n *entities.NotificationModify) *NotificationModifyDB {
	if n == nil {
		return nil
	}
	notificationModifyDB := &NotificationModifyDB{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Title:       n.Title,
		Body:        n.Body,
		Read:        n.Read,
		ErrandID:    n.ErrandID,
	}

	if n.Type != nil {
		notificationModifyDB.Type = pointer.ToString(n.Type.String())
	}

	return notificationModifyDB
}
