package app

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"dispatch/internal/handlers/tasks/delay_monitor"
	"dispatch/internal/handlers/tasks/presence_sweep"
	"dispatch/internal/pkg/availabilitycache"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/email"
	"dispatch/internal/pkg/factory/delivery_eta"
	"dispatch/internal/pkg/gatewaytoken"
	"dispatch/internal/pkg/kafka"
	"dispatch/internal/pkg/push"
	"dispatch/internal/pkg/sms"
	"dispatch/internal/realtime/redisfabric"
	"dispatch/internal/realtime/registry"
	"dispatch/internal/realtime/router"
	driverRepo "dispatch/internal/repository/driver"
	geoRepo "dispatch/internal/repository/geo"
	notificationRepo "dispatch/internal/repository/notification"
	orderRepo "dispatch/internal/repository/order"
	recipientRepo "dispatch/internal/repository/recipient"
	assignmentService "dispatch/internal/service/assignment"
	bookingService "dispatch/internal/service/booking"
	geomatcherService "dispatch/internal/service/geomatcher"
	notificationService "dispatch/internal/service/notification"
	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/querier"
	"dispatch/pkg/redislock"
	"dispatch/pkg/retrier/backoff_adapter"
	"dispatch/pkg/tx"
)

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideDriverRepository(querier *querier.Querier) *driverRepo.Repository {
	return driverRepo.New(querier)
}

func provideGeoRepository(querier *querier.Querier) *geoRepo.Repository {
	return geoRepo.New(querier)
}

func provideNotificationRepository(querier *querier.Querier) *notificationRepo.Repository {
	return notificationRepo.New(querier)
}

func provideRecipientRepository(querier *querier.Querier) *recipientRepo.Repository {
	return recipientRepo.New(querier)
}

func provideRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // tie-breaking and booking codes, not crypto
}

func provideGeoMatcher(repository *geoRepo.Repository) *geomatcherService.Matcher {
	return geomatcherService.New(repository)
}

func provideAssignmentEngine(
	matcher *geomatcherService.Matcher,
	drivers *driverRepo.Repository,
	orders *orderRepo.Repository,
	random *rand.Rand,
) *assignmentService.Engine {
	return assignmentService.New(matcher, drivers, orders, random)
}

func provideETAFactory() *delivery_eta.ETAFactory {
	return delivery_eta.New()
}

func deadAfter(cfg *config.Config) time.Duration {
	return cfg.Realtime.HeartbeatInterval * time.Duration(cfg.Realtime.DeadMultiplier)
}

func provideFabric(client *redis.Client, cfg *config.Config) *redisfabric.Fabric {
	return redisfabric.New(client, deadAfter(cfg), cfg.Realtime.OfflineQueueTTL)
}

func provideRegistry(fabric *redisfabric.Fabric, log logger.Logger, cfg *config.Config) *registry.Registry {
	return registry.New(
		fabric,
		clockwork.NewRealClock(),
		log,
		cfg.Realtime.ProcessID,
		cfg.Realtime.MaxConnsPerUser,
		deadAfter(cfg),
	)
}

func provideRouter(
	connRegistry *registry.Registry,
	fabric *redisfabric.Fabric,
	log logger.Logger,
	cfg *config.Config,
) *router.Router {
	return router.New(connRegistry, fabric, cfg.Realtime.ProcessID, log)
}

// Push delivery retries at a fixed interval; growing the wait would
// push late attempts past the point where the notification is useful.
func provideRetrier(cfg *config.Config) *backoff_adapter.Retrier {
	return backoff_adapter.NewConstant(cfg.Notification.PushRetryInterval, cfg.Notification.PushAttempts, nil)
}

func provideServiceNotification(
	repository *notificationRepo.Repository,
	recipients *recipientRepo.Repository,
	realtimeRouter *router.Router,
	retry *backoff_adapter.Retrier,
	log logger.Logger,
	cfg *config.Config,
) *notificationService.Service {
	return notificationService.New(
		repository,
		recipients,
		&realtimeSenderAdapter{router: realtimeRouter},
		push.NewFCMClient(cfg.Notification.FCMEndpoint, cfg.Notification.FCMServerKey, cfg.Notification.ProviderCallTimeout),
		push.NewExpoClient(cfg.Notification.ExpoEndpoint, cfg.Notification.ProviderCallTimeout),
		email.NewSendgridClient(
			cfg.Notification.SendgridAPIKey,
			cfg.Notification.SendgridFromName,
			cfg.Notification.SendgridFromMail,
			cfg.Notification.ProviderCallTimeout,
		),
		sms.NewTwilioClient(
			cfg.Notification.TwilioAccountSID,
			cfg.Notification.TwilioAuthToken,
			cfg.Notification.TwilioFromNumber,
			cfg.Notification.ProviderCallTimeout,
		),
		retry,
		log,
	)
}

func provideProducer(log logger.Logger, cfg *config.Config) (*kafka.Producer, error) {
	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return kafka.NewProducer(log, cfg.Kafka.Sarama.Version, brokers, cfg.Kafka.Topic)
}

func provideDispatcher(
	service *notificationService.Service,
	producer *kafka.Producer,
	log logger.Logger,
) *bookingService.Dispatcher {
	return bookingService.NewDispatcher(
		&notificationSenderAdapter{service: service},
		&eventProducerAdapter{producer: producer},
		log,
	)
}

func provideServiceBooking(
	orders *orderRepo.Repository,
	drivers *driverRepo.Repository,
	engine *assignmentService.Engine,
	etaFactory *delivery_eta.ETAFactory,
	txManager *tx.Manager,
	dispatcher *bookingService.Dispatcher,
	random *rand.Rand,
) *bookingService.Booking {
	return bookingService.New(orders, drivers, engine, etaFactory, txManager, dispatcher, random)
}

func provideAuthenticator(cfg *config.Config) *gatewaytoken.Authenticator {
	return gatewaytoken.New(cfg.Realtime.GatewayToken)
}

func provideRedisLock(client *redis.Client) *redislock.Lock {
	return redislock.New(client)
}

func providePresenceSweepTask(connRegistry *registry.Registry, cfg *config.Config) *presence_sweep.PresenceSweep {
	return presence_sweep.NewPresenceSweep(connRegistry, cfg.Tasks.PresenceSweepInterval)
}

func provideDelayMonitorTask(
	orders *orderRepo.Repository,
	service *notificationService.Service,
	lock *redislock.Lock,
	log logger.Logger,
	cfg *config.Config,
) *delay_monitor.DelayMonitor {
	return delay_monitor.NewDelayMonitor(
		orders,
		service,
		lock,
		log,
		cfg.Tasks.DelayMonitorInterval,
		cfg.Tasks.DelayMonitorLockTTL,
	)
}

func provideTaskList(
	presenceSweepTask *presence_sweep.PresenceSweep,
	delayMonitorTask *delay_monitor.DelayMonitor,
) []background.Task {
	return []background.Task{
		presenceSweepTask,
		delayMonitorTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func provideAvailabilityCache(client *redis.Client) *availabilitycache.Cache {
	return availabilitycache.New(client)
}
