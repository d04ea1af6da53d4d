package notification

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"service/internal/entities"
	"service/pkg/logger"
)

// Notification persists transition notifications and attempts best-effort
// push delivery. At-most-once, no redelivery, no deduplication: a caller
// dispatching the same transition twice produces two notifications.
type Notification struct {
	log        handlerLogger
	store      Store
	pushSender PushSender
}

func New(log handlerLogger, store Store, pushSender PushSender) *Notification {
	return &Notification{
		log:        log.With(),
		store:      store,
		pushSender: pushSender,
	}
}

// OnTransition runs outside the lifecycle transaction. Failures here are
// logged and swallowed: a lost notification must never block or reverse
// an already-committed status change.
func (n *Notification) OnTransition(ctx context.Context, event entities.TransitionEvent) {
	eventLog := n.log.With(
		logger.NewField("errand", event.ErrandID),
		logger.NewField("from", event.From.String()),
		logger.NewField("to", event.To.String()),
	)

	recipientID := resolveRecipient(event)
	if recipientID == "" {
		// A cancelled pending errand has no runner to notify.
		eventLog.Info("no counterparty for transition, skipping notification")
		return
	}

	template, ok := templateFor(event.To)
	if !ok {
		eventLog.Warn("no notification template for status")
		return
	}

	persisted, err := n.persist(ctx, recipientID, event, template)
	if err != nil {
		eventLog.Error("persist notification", logger.NewField("error", err))
		notificationFailures.WithLabelValues("persist").Inc()
		return
	}

	notificationsDispatched.WithLabelValues(event.To.String()).Inc()

	if err := n.pushSender.Send(ctx, *persisted); err != nil {
		// Best-effort: the persisted record is the source of truth,
		// push is a convenience.
		eventLog.Warn("push delivery failed", logger.NewField("error", err))
		notificationFailures.WithLabelValues("push").Inc()
	}
}

func (n *Notification) List(ctx context.Context, userID string) ([]entities.Notification, error) {
	if userID == "" {
		return nil, ErrInvalidRecipient
	}

	notifications, err := n.store.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return notifications, nil
}

func (n *Notification) MarkRead(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidNotificationID
	}

	if err := n.store.MarkRead(ctx, id); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (n *Notification) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidNotificationID
	}

	if err := n.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}
	return nil
}

// DeliverPush confirms delivery of a queued push event. The worker
// re-reads the record: a notification deleted between publish and
// consume is silently dropped, not an error for the consumer loop.
func (n *Notification) DeliverPush(ctx context.Context, notificationID string) (*entities.Notification, error) {
	if notificationID == "" {
		return nil, ErrInvalidNotificationID
	}

	notification, err := n.store.GetByID(ctx, notificationID)
	if err != nil {
		return nil, fmt.Errorf("get notification for push: %w", err)
	}

	pushesDelivered.WithLabelValues(notification.Type.String()).Inc()
	return notification, nil
}

func (n *Notification) persist(
	ctx context.Context,
	recipientID string,
	event entities.TransitionEvent,
	template messageTemplate,
) (*entities.Notification, error) {
	id := uuid.NewString()
	notificationType := entities.NotificationErrandUpdate
	read := false

	modify := entities.NotificationModify{
		ID:          &id,
		RecipientID: &recipientID,
		Title:       &template.title,
		Body:        &template.body,
		Type:        &notificationType,
		Read:        &read,
		ErrandID:    &event.ErrandID,
	}

	return n.store.Append(ctx, modify)
}

// resolveRecipient picks the counterpart of the initiator.
func resolveRecipient(event entities.TransitionEvent) string {
	switch event.InitiatorRole {
	case entities.RoleRunner:
		return event.RequesterID
	case entities.RoleRequester:
		if event.RunnerID != nil {
			return *event.RunnerID
		}
	}
	return ""
}
