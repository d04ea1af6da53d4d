// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"service/internal/gateway/kafka/push"
	"service/internal/handlers/rest/errand_claim_post"
	"service/internal/handlers/rest/errand_get"
	"service/internal/handlers/rest/errand_post"
	"service/internal/handlers/rest/errand_transition_post"
	"service/internal/handlers/rest/errands_get"
	"service/internal/handlers/rest/location_put"
	"service/internal/handlers/rest/notification_delete"
	"service/internal/handlers/rest/notification_read_post"
	"service/internal/handlers/rest/notifications_get"
	"service/internal/handlers/rest/tracking_get"
	"service/internal/handlers/tasks/tracking_sweep"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/price_estimate"
	"service/internal/repository/errand"
	"service/internal/repository/location"
	notification2 "service/internal/repository/notification"
	"service/internal/service/claim"
	errand2 "service/internal/service/errand"
	"service/internal/service/notification"
	"service/internal/service/tracking"
	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"
	"time"
)

// Injectors from wire.go:

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, redisClient *redis.Client, producer sarama.SyncProducer, cfg *config.Config) (*Application, error) {
	querier := provideQuerier(pool, getter)
	repository := provideErrandRepository(querier)
	manager := provideTxManager(pool)
	claim := provideServiceClaim(repository, manager)
	notificationRepository := provideNotificationRepository(querier)
	pushGateway := providePushGateway(producer, cfg)
	notification := provideServiceNotification(log, notificationRepository, pushGateway)
	store := provideLocationStore(redisClient, cfg)
	tracking := provideServiceTracking(ctx, log, store, repository, cfg)
	priceFactory := price_estimate.New()
	errand := provideServiceErrand(repository, claim, claim, notification, tracking, priceFactory, manager)
	sweepInterval := provideSweepInterval(cfg)
	trackingSweep := provideTrackingSweepTask(log, tracking, sweepInterval)
	v := provideTaskList(trackingSweep)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	application := &Application{
		ServiceErrand:       errand,
		ServiceTracking:     tracking,
		ServiceNotification: notification,
		BackgroundWorkers:   worker,
	}
	return application, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-notification-push)
func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer sarama.SyncProducer, cfg *config.Config) (*KafkaWorkerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideNotificationRepository(querier)
	pushGateway := providePushGateway(producer, cfg)
	notification := provideServiceNotification(log, repository, pushGateway)
	kafkaWorkerApp := &KafkaWorkerApp{
		NotificationService: notification,
	}
	return kafkaWorkerApp, nil
}

// wire.go:

type (
	SweepInterval time.Duration
)

type Application struct {
	ServiceErrand       ServiceErrand
	ServiceTracking     ServiceTracking
	ServiceNotification ServiceNotification
	BackgroundWorkers   *background.Worker
}

type ServiceErrand interface {
	errand_post.Service
	errand_get.Service
	errands_get.Service
	errand_claim_post.Service
	errand_transition_post.Service
}

type ServiceTracking interface {
	tracking_get.Service
	location_put.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_read_post.Service
	notification_delete.Service
}

type KafkaWorkerApp struct {
	NotificationService *notification.Notification
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideErrandRepository(querier2 *querier.Querier) *errand.Repository {
	return errand.New(querier2)
}

func provideNotificationRepository(querier2 *querier.Querier) *notification2.Repository {
	return notification2.New(querier2)
}

func provideLocationStore(redisClient *redis.Client, cfg *config.Config) *location.Store {
	return location.New(redisClient, cfg.Tracking.LocationTTL)
}

func providePushGateway(producer sarama.SyncProducer, cfg *config.Config) *push.PushGateway {
	return push.New(producer, cfg.Kafka.Topic)
}

func provideServiceClaim(
	repository claim.Repository,
	txManager claim.TxManager,
) *claim.Claim {
	return claim.New(repository, txManager)
}

func provideServiceNotification(
	log logger.Logger,
	store notification.Store,
	pushSender notification.PushSender,
) *notification.Notification {
	return notification.New(log, store, pushSender)
}

func provideServiceTracking(
	ctx context.Context,
	log logger.Logger,
	store *location.Store,
	errands *errand.Repository,
	cfg *config.Config,
) *tracking.Tracking {
	return tracking.New(
		ctx,
		log,
		store,
		store,
		errands,
		cfg.Tracking.SampleInterval,
		cfg.Tracking.AvgSpeedKmh,
	)
}

func provideServiceErrand(
	repository errand2.Repository,
	codeGenerator errand2.CodeGenerator,
	codeMatcher errand2.CodeMatcher,
	dispatcher errand2.Dispatcher,
	tracker errand2.TrackerControl,
	priceFactory errand2.PriceFactory,
	txManager errand2.TxManager,
) *errand2.Errand {
	return errand2.New(
		repository,
		codeGenerator,
		codeMatcher,
		dispatcher,
		tracker,
		priceFactory,
		txManager,
	)
}

func provideSweepInterval(cfg *config.Config) SweepInterval {
	return SweepInterval(cfg.Tasks.TrackingSweepInterval)
}

func provideTrackingSweepTask(
	log logger.Logger,
	trackingSvc tracking_sweep.Service,
	interval SweepInterval,
) *tracking_sweep.TrackingSweep {
	return tracking_sweep.NewTrackingSweep(log, trackingSvc, time.Duration(interval))
}

func provideTaskList(
	trackingSweepTask *tracking_sweep.TrackingSweep,
) []background.Task {
	return []background.Task{
		trackingSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
