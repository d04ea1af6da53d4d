package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	notificationsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_dispatched_total",
			Help: "Notifications persisted per target status",
		},
		[]string{"status"},
	)

	pushesDelivered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pushes_delivered_total",
			Help: "Push events handed to the delivery channel per notification type",
		},
		[]string{"type"},
	)

	notificationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Notification persist and push failures",
		},
		[]string{"stage"},
	)
)
