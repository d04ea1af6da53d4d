//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	pushGateway "service/internal/gateway/kafka/push"
	errand_claim_post "service/internal/handlers/rest/errand_claim_post"
	errand_get "service/internal/handlers/rest/errand_get"
	errand_post "service/internal/handlers/rest/errand_post"
	errand_transition_post "service/internal/handlers/rest/errand_transition_post"
	errands_get "service/internal/handlers/rest/errands_get"
	location_put "service/internal/handlers/rest/location_put"
	notification_delete "service/internal/handlers/rest/notification_delete"
	notification_read_post "service/internal/handlers/rest/notification_read_post"
	notifications_get "service/internal/handlers/rest/notifications_get"
	tracking_get "service/internal/handlers/rest/tracking_get"
	"service/internal/handlers/tasks/tracking_sweep"
	"service/internal/pkg/config"
	"service/internal/pkg/factory/price_estimate"

	errandRepo "service/internal/repository/errand"
	locationRepo "service/internal/repository/location"
	notificationRepo "service/internal/repository/notification"
	claimService "service/internal/service/claim"
	errandService "service/internal/service/errand"
	notificationService "service/internal/service/notification"
	trackingService "service/internal/service/tracking"

	"service/pkg/background"
	"service/pkg/logger"
	"service/pkg/querier"
	"service/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

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

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideSweepInterval,

		provideErrandRepository,
		provideNotificationRepository,
		provideLocationStore,
		providePushGateway,

		price_estimate.New,
		provideServiceClaim,
		provideServiceNotification,
		provideServiceTracking,
		provideServiceErrand,

		provideTrackingSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceErrand), new(*errandService.Errand)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Notification)),

		wire.Bind(new(errandService.Repository), new(*errandRepo.Repository)),
		wire.Bind(new(claimService.Repository), new(*errandRepo.Repository)),
		wire.Bind(new(errandService.CodeGenerator), new(*claimService.Claim)),
		wire.Bind(new(errandService.CodeMatcher), new(*claimService.Claim)),
		wire.Bind(new(errandService.Dispatcher), new(*notificationService.Notification)),
		wire.Bind(new(errandService.TrackerControl), new(*trackingService.Tracking)),
		wire.Bind(new(errandService.PriceFactory), new(*price_estimate.PriceFactory)),

		wire.Bind(new(notificationService.Store), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.PushSender), new(*pushGateway.PushGateway)),

		wire.Bind(new(errandService.TxManager), new(*tx.Manager)),
		wire.Bind(new(claimService.TxManager), new(*tx.Manager)),

		wire.Bind(new(tracking_sweep.Service), new(*trackingService.Tracking)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	NotificationService *notificationService.Notification
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-notification-push)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideNotificationRepository,
		providePushGateway,

		provideServiceNotification,

		wire.Bind(new(notificationService.Store), new(*notificationRepo.Repository)),
		wire.Bind(new(notificationService.PushSender), new(*pushGateway.PushGateway)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideErrandRepository(querier *querier.Querier) *errandRepo.Repository {
	return errandRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideLocationStore(redisClient *goredis.Client, cfg *config.Config) *locationRepo.Store {
	return locationRepo.New(redisClient, cfg.Tracking.LocationTTL)
}

func providePushGateway(producer sarama.SyncProducer, cfg *config.Config) *pushGateway.PushGateway {
	return pushGateway.New(producer, cfg.Kafka.Topic)
}

func provideServiceClaim(
	repository claimService.Repository,
	txManager claimService.TxManager,
) *claimService.Claim {
	return claimService.New(repository, txManager)
}

func provideServiceNotification(
	log logger.Logger,
	store notificationService.Store,
	pushSender notificationService.PushSender,
) *notificationService.Notification {
	return notificationService.New(log, store, pushSender)
}

func provideServiceTracking(
	ctx context.Context,
	log logger.Logger,
	store *locationRepo.Store,
	errands *errandRepo.Repository,
	cfg *config.Config,
) *trackingService.Tracking {
	return trackingService.New(
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
	repository errandService.Repository,
	codeGenerator errandService.CodeGenerator,
	codeMatcher errandService.CodeMatcher,
	dispatcher errandService.Dispatcher,
	tracker errandService.TrackerControl,
	priceFactory errandService.PriceFactory,
	txManager errandService.TxManager,
) *errandService.Errand {
	return errandService.New(
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
