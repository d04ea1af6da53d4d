package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"service/internal/entities"
)

const topicLabel = "push"

// PushGateway publishes notification-push events to Kafka for the push
// delivery worker. Exactly one produce attempt per notification: the
// at-most-once contract forbids retry queues here.
type PushGateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *PushGateway {
	return &PushGateway{
		producer: producer,
		topic:    topic,
	}
}

type pushEvent struct {
	NotificationID string    `json:"notification_ID"`
	RecipientID    string    `json:"recipient_ID"`
	Title          string    `json:"title"`
	Body           string    `json:"body"`
	ErrandID       string    `json:"errand_ID"`
	CreatedAt      time.Time `json:"created_at"`
}

func (g *PushGateway) Send(ctx context.Context, notification entities.Notification) error {
	event := pushEvent{
		NotificationID: notification.ID,
		RecipientID:    notification.RecipientID,
		Title:          notification.Title,
		Body:           notification.Body,
		ErrandID:       notification.ErrandID,
		CreatedAt:      notification.CreatedAt,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway push, marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: g.topic,
		// Keyed by recipient so one user's pushes stay ordered.
		Key:   sarama.StringEncoder(notification.RecipientID),
		Value: sarama.ByteEncoder(payload),
	}

	start := time.Now()
	_, _, err = g.producer.SendMessage(message)

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	PushProduceDuration.WithLabelValues(topicLabel, outcome).Observe(time.Since(start).Seconds())

	if err != nil {
		PushProduceFailures.WithLabelValues(topicLabel).Inc()
		return fmt.Errorf("gateway push, send message: %w", err)
	}

	return nil
}
