//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"dispatch/internal/handlers/rest/driver_location_put"
	"dispatch/internal/handlers/ws/connect"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/gatewaytoken"
	driverRepo "dispatch/internal/repository/driver"
	bookingService "dispatch/internal/service/booking"
	notificationService "dispatch/internal/service/notification"
	"dispatch/pkg/logger"
)

// InitializeApplication builds the HTTP service object graph (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideDriverRepository,
		provideGeoRepository,
		provideNotificationRepository,
		provideRecipientRepository,

		provideRand,
		provideGeoMatcher,
		provideAssignmentEngine,
		provideETAFactory,

		provideFabric,
		provideRegistry,
		provideRouter,

		provideRetrier,
		provideServiceNotification,
		provideProducer,
		provideDispatcher,
		provideServiceBooking,
		provideAuthenticator,

		provideRedisLock,
		providePresenceSweepTask,
		provideDelayMonitorTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceBooking), new(*bookingService.Booking)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Service)),
		wire.Bind(new(driver_location_put.DriverStore), new(*driverRepo.Repository)),
		wire.Bind(new(connect.Authenticator), new(*gatewaytoken.Authenticator)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp builds the Kafka worker object graph (cmd/worker-order-events).
func InitializeKafkaWorkerApp(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,
		provideNotificationRepository,
		provideRecipientRepository,

		provideFabric,
		provideRegistry,
		provideRouter,

		provideRetrier,
		provideServiceNotification,
		provideAvailabilityCache,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
