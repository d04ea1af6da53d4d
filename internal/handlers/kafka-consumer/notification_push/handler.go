package notification_push

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	notificationservice "service/internal/service/notification"
	"service/pkg/logger"
)

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("notification.push: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("notification.push: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

type pushEvent struct {
	NotificationID string `json:"notification_ID"`
	RecipientID    string `json:"recipient_ID"`
	Title          string `json:"title"`
	Body           string `json:"body"`
	ErrandID       string `json:"errand_ID"`
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event pushEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("notification.push handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("notification", event.NotificationID),
		logger.NewField("recipient", event.RecipientID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("notification.push processing")

	notification, err := h.notificationService.DeliverPush(ctx, event.NotificationID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.push handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notificationservice.ErrNotificationNotFound):
			// Уведомление удалили до доставки — пропускаем
			msgLog.Warn("notification.push handler notification no longer exists")

		case errors.Is(err, notificationservice.ErrInvalidNotificationID):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.push handler event without notification id")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("notification.push handler failed to deliver push")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("notification", notification.ID),
		logger.NewField("recipient", notification.RecipientID),
		logger.NewField("title", notification.Title),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("notification.push: delivered")

	sess.MarkMessage(message, "")
	return false
}
