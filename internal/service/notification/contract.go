//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"service/internal/entities"
	"service/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Store interface {
	Append(ctx context.Context, notificationModify entities.NotificationModify) (*entities.Notification, error)
	GetByID(ctx context.Context, id string) (*entities.Notification, error)
	MarkRead(ctx context.Context, id string) error
	List(ctx context.Context, userID string) ([]entities.Notification, error)
	Delete(ctx context.Context, id string) error
}

// PushSender attempts delivery to the recipient's device. One attempt,
// no retry.
type PushSender interface {
	Send(ctx context.Context, notification entities.Notification) error
}
